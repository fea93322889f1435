package whist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(t *testing.T, code string) Card {
	t.Helper()
	c, err := ParseCard(code)
	require.NoError(t, err)
	return c
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		code    string
		want    Card
		wantErr bool
	}{
		{code: "AH", want: Card{Rank: 'A', Suit: Hearts}},
		{code: "TS", want: Card{Rank: 'T', Suit: Spades}},
		{code: "2D", want: Card{Rank: '2', Suit: Diamonds}},
		{code: "9C", want: Card{Rank: '9', Suit: Clubs}},
		{code: "1H", wantErr: true},
		{code: "AX", wantErr: true},
		{code: "10H", wantErr: true},
		{code: "", wantErr: true},
		{code: "blank", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseCard(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.code, got.String())
		})
	}
}

func TestBuildDeck(t *testing.T) {
	deck := BuildDeck()
	require.Len(t, deck, 52)

	seen := map[Card]bool{}
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Equal(t, "2H", deck[0].String())
	assert.Equal(t, "AD", deck[51].String())

	// ascending rank order
	for i := 1; i < len(deck); i++ {
		assert.LessOrEqual(t, deck[i-1].Rank.Value(), deck[i].Rank.Value())
	}
}

func TestShuffleKeepsCards(t *testing.T) {
	deck := BuildDeck()
	Shuffle(deck)
	assert.ElementsMatch(t, BuildDeck(), deck)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		lead  Suit
		trump Suit
		want  int // sign only
	}{
		{name: "higher lead wins", a: "KH", b: "QH", lead: Hearts, want: 1},
		{name: "ace beats ten", a: "TH", b: "AH", lead: Hearts, want: -1},
		{name: "ten beats nine", a: "TH", b: "9H", lead: Hearts, want: 1},
		{name: "lead beats off suit", a: "2H", b: "AS", lead: Hearts, want: 1},
		{name: "trump beats lead", a: "AH", b: "2S", lead: Hearts, trump: Spades, want: -1},
		{name: "higher trump", a: "3S", b: "2S", lead: Hearts, trump: Spades, want: 1},
		{name: "two off suit cards tie", a: "AC", b: "2D", lead: Hearts, trump: Spades, want: 0},
		{name: "same card", a: "5C", b: "5C", lead: Clubs, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(card(t, tt.a), card(t, tt.b), tt.lead, tt.trump)
			switch {
			case tt.want > 0:
				assert.Positive(t, got)
			case tt.want < 0:
				assert.Negative(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestCodesRoundTrip(t *testing.T) {
	codes := []string{"AH", "2S", "TD"}
	cards, err := ParseCards(codes)
	require.NoError(t, err)
	assert.Equal(t, codes, Codes(cards))

	_, err = ParseCards([]string{"AH", "ZZ"})
	assert.Error(t, err)
}
