package game

import "errors"

// Caller-correctable failures. They are always returned wrapped in a ValidationError
// and never leave a partial write behind.
var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrBlankName          = errors.New("username is required")
	ErrDuplicateName      = errors.New("a user with this name already exists in this room")
	ErrRoomFull           = errors.New("the number of users is the maximum allowed - 6")
	ErrNotOwner           = errors.New("only the owner of the room can do this")
	ErrInvalidPlayerCount = errors.New("the number of players must be between 3 and 6")
	ErrGameStarted        = errors.New("game has already started")
	ErrGameNotStarted     = errors.New("game has not started yet")
	ErrGameEnded          = errors.New("game has ended")
	ErrInvalidGameType    = errors.New("game type must be 1-8-1 or 8-1-8")
	ErrGameTypeLocked     = errors.New("game type cannot be changed once the game has started")
	ErrAlreadyBid         = errors.New("you have already voted")
	ErrBidOutOfRange      = errors.New("vote must be between 0 and the number of cards in hand")
	ErrIllegalBid         = errors.New("this vote is not valid")
	ErrBiddingNotFinished = errors.New("every player must vote before cards are played")
	ErrNotYourTurn        = errors.New("it is not your turn")
	ErrAlreadyPlayed      = errors.New("you have already played a card this hand")
	ErrUnknownCommand     = errors.New("unknown command")
)

// Failures that correct engine operation never produces.
var (
	ErrPlayerNotInRoom = errors.New("this user does not exist in the room")
	ErrNoWinner        = errors.New("no winner")
	ErrNoRoomCode      = errors.New("could not allocate a free room code")
)

// ValidationError marks an error as the caller's fault.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(err error) error {
	return &ValidationError{Err: err}
}

// IsValidation reports whether err was caused by a rejected command.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
