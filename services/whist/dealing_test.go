package whist

import (
	redis_models "Whist/models/redis"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaximumRoundNumber(t *testing.T) {
	assert.Equal(t, 21, MaximumRoundNumber(3))
	assert.Equal(t, 30, MaximumRoundNumber(6))
}

func TestDealSizeOneEightOne(t *testing.T) {
	// 3 players: 1,1,1, 2..7, 8,8,8, 7..2, 1,1,1
	want := []int{1, 1, 1, 2, 3, 4, 5, 6, 7, 8, 8, 8, 7, 6, 5, 4, 3, 2, 1, 1, 1}
	got := make([]int, 0, len(want))
	for round := 1; round <= MaximumRoundNumber(3); round++ {
		got = append(got, DealSizeForRound(round, redis_models.GameTypeOneEightOne, 3))
	}
	assert.Equal(t, want, got)
}

func TestDealSizeEightOneEight(t *testing.T) {
	want := []int{8, 8, 8, 8, 7, 6, 5, 4, 3, 2, 1, 1, 1, 1, 2, 3, 4, 5, 6, 7, 8, 8, 8, 8}
	got := make([]int, 0, len(want))
	for round := 1; round <= MaximumRoundNumber(4); round++ {
		got = append(got, DealSizeForRound(round, redis_models.GameTypeEightOneEight, 4))
	}
	assert.Equal(t, want, got)
}

func TestDealSizeProgressionsMirror(t *testing.T) {
	for n := 3; n <= 6; n++ {
		for round := 1; round <= MaximumRoundNumber(n); round++ {
			up := DealSizeForRound(round, redis_models.GameTypeOneEightOne, n)
			down := DealSizeForRound(round, redis_models.GameTypeEightOneEight, n)
			assert.Equal(t, 9, up+down, "n=%d round=%d", n, round)
			assert.GreaterOrEqual(t, up, 1)
			assert.LessOrEqual(t, up, 8)
		}
	}
}

func TestShuffleCards(t *testing.T) {
	for _, gameType := range []redis_models.GameType{redis_models.GameTypeOneEightOne, redis_models.GameTypeEightOneEight} {
		for n := 3; n <= 6; n++ {
			for round := 1; round <= MaximumRoundNumber(n); round++ {
				t.Run(fmt.Sprintf("%s/%d/%d", gameType, n, round), func(t *testing.T) {
					deal, err := ShuffleCards(round, gameType, n, nil)
					require.NoError(t, err)

					size := DealSizeForRound(round, gameType, n)
					assert.Equal(t, size, deal.HandSize)
					require.Len(t, deal.Hands, n)

					seen := map[Card]bool{}
					lowest := BuildDeck()[52-n*8].Rank.Value()
					for _, hand := range deal.Hands {
						assert.Len(t, hand, size)
						for _, c := range hand {
							assert.False(t, seen[c])
							seen[c] = true
							assert.GreaterOrEqual(t, c.Rank.Value(), lowest)
						}
					}

					assert.Equal(t, size != 8, deal.HasTrump)
					if deal.HasTrump {
						assert.False(t, seen[deal.Trump], "trump card was also dealt")
					}
				})
			}
		}
	}
}

func TestShuffleCardsDeterministic(t *testing.T) {
	identity := func([]Card) {}
	deal, err := ShuffleCards(4, redis_models.GameTypeOneEightOne, 3, identity)
	require.NoError(t, err)

	// 3 players keep the 24 highest cards: nines and up.
	assert.Equal(t, []string{"9H", "9S"}, Codes(deal.Hands[0]))
	assert.Equal(t, []string{"9C", "9D"}, Codes(deal.Hands[1]))
	assert.Equal(t, []string{"TH", "TS"}, Codes(deal.Hands[2]))
	require.True(t, deal.HasTrump)
	assert.Equal(t, "TC", deal.Trump.String())
}

func TestShuffleCardsRejectsBadPlayerCount(t *testing.T) {
	_, err := ShuffleCards(1, redis_models.GameTypeOneEightOne, 7, nil)
	assert.Error(t, err)
	_, err = ShuffleCards(1, redis_models.GameTypeOneEightOne, 0, nil)
	assert.Error(t, err)
}
