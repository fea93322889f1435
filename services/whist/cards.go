package whist

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Suit is the suit character of a card code.
type Suit byte

const (
	NoSuit   Suit = 0
	Hearts   Suit = 'H'
	Spades   Suit = 'S'
	Clubs    Suit = 'C'
	Diamonds Suit = 'D'
)

// Suits in deck construction order.
var Suits = []Suit{Hearts, Spades, Clubs, Diamonds}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	}
	return "None"
}

// Rank is the rank character of a card code. Ten is written as 'T'.
type Rank byte

// Ranks from lowest to highest.
var Ranks = []Rank{'2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K', 'A'}

// Value orders ranks: 2 is the lowest (2), Ace the highest (14). Unknown ranks are 0.
func (r Rank) Value() int {
	for i, rank := range Ranks {
		if rank == r {
			return i + 2
		}
	}
	return 0
}

var ErrInvalidCard = errors.New("invalid card")

// Card is an immutable rank and suit pair, identified by its two character code.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the card code, e.g. "TH" for the ten of hearts.
func (c Card) String() string {
	return string([]byte{byte(c.Rank), byte(c.Suit)})
}

// ParseCard reads a two character card code.
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, code)
	}
	c := Card{Rank: Rank(code[0]), Suit: Suit(code[1])}
	if c.Rank.Value() == 0 || !validSuit(c.Suit) {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, code)
	}
	return c, nil
}

// ParseCards reads a list of card codes, failing on the first invalid one.
func ParseCards(codes []string) ([]Card, error) {
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Codes converts cards back to their codes.
func Codes(cards []Card) []string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.String()
	}
	return codes
}

func validSuit(s Suit) bool {
	for _, suit := range Suits {
		if suit == s {
			return true
		}
	}
	return false
}

// BuildDeck returns the 52 cards ordered by ascending rank, so the highest cards sit
// at the end of the slice.
func BuildDeck() []Card {
	deck := make([]Card, 0, len(Ranks)*len(Suits))
	for _, r := range Ranks {
		for _, s := range Suits {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle permutes the deck in place.
func Shuffle(deck []Card) {
	rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}

// Compare orders two cards of a trick. It returns a positive number when a beats b,
// negative when b beats a and zero for the same card. Trump beats everything else,
// then the lead suit; inside the deciding suit the higher rank wins. Two cards that
// are neither trump nor lead suit compare equal: they can never win a trick.
func Compare(a, b Card, lead, trump Suit) int {
	if trump != NoSuit {
		if a.Suit == trump && b.Suit != trump {
			return 1
		}
		if a.Suit != trump && b.Suit == trump {
			return -1
		}
	}
	if a.Suit == lead && b.Suit != lead {
		return 1
	}
	if a.Suit != lead && b.Suit == lead {
		return -1
	}
	if a.Suit != b.Suit {
		return 0
	}
	return a.Rank.Value() - b.Rank.Value()
}
