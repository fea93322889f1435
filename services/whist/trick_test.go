package whist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hand(t *testing.T, codes ...string) []Card {
	t.Helper()
	cards, err := ParseCards(codes)
	require.NoError(t, err)
	return cards
}

func TestCheckPlay(t *testing.T) {
	tests := []struct {
		name  string
		hand  []string
		card  string
		lead  Suit
		trump Suit
		want  error
	}{
		{name: "lead may play anything", hand: []string{"AD", "KD"}, card: "AD", want: nil},
		{name: "card not in hand", hand: []string{"AD"}, card: "KD", want: ErrCardNotInHand},
		{name: "empty hand", hand: nil, card: "KD", want: ErrEmptyHand},
		{name: "follows suit", hand: []string{"QD", "KH"}, card: "QD", lead: Diamonds, trump: Hearts, want: nil},
		{name: "must follow suit", hand: []string{"QD", "KH"}, card: "KH", lead: Diamonds, trump: Hearts, want: ErrMustFollowSuit},
		{name: "must trump when void", hand: []string{"JH", "9C"}, card: "9C", lead: Diamonds, trump: Hearts, want: ErrMustPlayTrump},
		{name: "trumps when void", hand: []string{"JH", "9C"}, card: "JH", lead: Diamonds, trump: Hearts, want: nil},
		{name: "void of both plays anything", hand: []string{"9C", "2S"}, card: "2S", lead: Diamonds, trump: Hearts, want: nil},
		{name: "no trump round, void plays anything", hand: []string{"JH", "9C"}, card: "9C", lead: Diamonds, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cards []Card
			if tt.hand != nil {
				cards = hand(t, tt.hand...)
			}
			err := CheckPlay(cards, card(t, tt.card), tt.lead, tt.trump)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func plays(t *testing.T, codes ...string) []Play {
	t.Helper()
	out := make([]Play, len(codes))
	for i, code := range codes {
		out[i] = Play{PlayerID: string(rune('a' + i)), Card: card(t, code)}
	}
	return out
}

func TestTrickWinner(t *testing.T) {
	tests := []struct {
		name  string
		cards []string
		trump Suit
		want  int
	}{
		{name: "trump beats higher lead", cards: []string{"AH", "2S", "KH"}, trump: Spades, want: 1},
		{name: "highest lead without trump", cards: []string{"TH", "AH", "KH"}, want: 1},
		{name: "off suit ace never wins", cards: []string{"2H", "AC", "3H"}, trump: Spades, want: 2},
		{name: "lead wins alone", cards: []string{"2H", "AC", "AD"}, trump: Spades, want: 0},
		{name: "highest of several trumps", cards: []string{"AH", "3S", "QS", "4S"}, trump: Spades, want: 2},
		{name: "trump led", cards: []string{"2S", "AS", "AH"}, trump: Spades, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TrickWinner(plays(t, tt.cards...), tt.trump)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrickWinnerEmpty(t *testing.T) {
	_, err := TrickWinner(nil, Hearts)
	assert.ErrorIs(t, err, ErrEmptyTrick)
}

func TestRotateTurn(t *testing.T) {
	// winner sat at turn 2 of 4: 2->0, 3->1, 0->2, 1->3
	assert.Equal(t, 0, RotateTurn(2, 2, 4))
	assert.Equal(t, 1, RotateTurn(3, 2, 4))
	assert.Equal(t, 2, RotateTurn(0, 2, 4))
	assert.Equal(t, 3, RotateTurn(1, 2, 4))

	for n := 3; n <= 6; n++ {
		for w := 0; w < n; w++ {
			seen := map[int]bool{}
			for turn := 0; turn < n; turn++ {
				seen[RotateTurn(turn, w, n)] = true
			}
			assert.Len(t, seen, n)
		}
	}
}
