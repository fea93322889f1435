package whist

import "errors"

var (
	ErrEmptyHand      = errors.New("you have no cards")
	ErrCardNotInHand  = errors.New("card not found in your hand")
	ErrMustFollowSuit = errors.New("you must play a card of the same suit as the first card played")
	ErrMustPlayTrump  = errors.New("you must play a trump card")
	ErrEmptyTrick     = errors.New("cannot determine the winner of an empty trick")
)

// CheckPlay validates card against the player's hand and the current trick. lead is
// NoSuit while the trick is still empty; trump is NoSuit on rounds without trump.
// The player follows the lead suit when possible, otherwise trumps when possible,
// otherwise may play anything.
func CheckPlay(hand []Card, card Card, lead, trump Suit) error {
	if len(hand) == 0 {
		return ErrEmptyHand
	}
	if !containsCard(hand, card) {
		return ErrCardNotInHand
	}
	if lead == NoSuit || card.Suit == lead {
		return nil
	}
	if containsSuit(hand, lead) {
		return ErrMustFollowSuit
	}
	if trump != NoSuit && card.Suit != trump && containsSuit(hand, trump) {
		return ErrMustPlayTrump
	}
	return nil
}

func containsCard(hand []Card, card Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}

func containsSuit(hand []Card, suit Suit) bool {
	for _, c := range hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// Play is one card put on a trick.
type Play struct {
	PlayerID string
	Card     Card
}

// TrickWinner returns the index in plays of the winning card. plays must be in play
// order, plays[0] being the lead. Only trump cards compete when any was played,
// otherwise only cards of the lead suit do.
func TrickWinner(plays []Play, trump Suit) (int, error) {
	if len(plays) == 0 {
		return -1, ErrEmptyTrick
	}
	lead := plays[0].Card.Suit

	eligible := lead
	if trump != NoSuit {
		for _, p := range plays {
			if p.Card.Suit == trump {
				eligible = trump
				break
			}
		}
	}

	winner := -1
	for i, p := range plays {
		if p.Card.Suit != eligible {
			continue
		}
		if winner == -1 || Compare(p.Card, plays[winner].Card, lead, trump) > 0 {
			winner = i
		}
	}
	if winner == -1 {
		return -1, ErrEmptyTrick
	}
	return winner, nil
}

// RotateTurn maps a turn index so that winnerTurn becomes 0 while the relative order
// of the n players is preserved.
func RotateTurn(turn, winnerTurn, n int) int {
	return ((turn-winnerTurn)%n + n) % n
}
