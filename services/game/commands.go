package game

import redis_models "Whist/models/redis"

// Command is one player action applied to a room through Engine.Handle.
type Command interface {
	command() string
}

// Join seats a new player. The player id passed to Handle is ignored; the new
// player's id is redis_models.PlayerID(roomID, Name).
type Join struct {
	Name string
}

// StartGame deals the first round. Owner only.
type StartGame struct{}

// SetGameType switches the hand size progression. Owner only.
type SetGameType struct {
	Type redis_models.GameType
}

// PlaceBid records how many tricks the player expects to win this round.
type PlaceBid struct {
	Bid int
}

// PlayCard puts a card from the player's hand on the current trick.
type PlayCard struct {
	Card string
}

func (Join) command() string        { return "join" }
func (StartGame) command() string   { return "startGame" }
func (SetGameType) command() string { return "setGameType" }
func (PlaceBid) command() string    { return "vote" }
func (PlayCard) command() string    { return "playCard" }
