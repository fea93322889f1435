package whist

import (
	game_constants "Whist/constants/game"
	redis_models "Whist/models/redis"
	"fmt"
)

// MaximumRoundNumber is the number of rounds of a game with n players.
func MaximumRoundNumber(n int) int {
	return 3*n + 12
}

// DealSizeForRound returns how many cards each player gets in the given round.
//
// For "1-8-1" with n players: rounds 1..n deal one card, the next six ramp from 2 to 7,
// rounds n+7..2n+6 deal eight, the next six ramp back from 7 to 2, and every remaining
// round deals one. "8-1-8" is the mirror image: 9 minus the "1-8-1" size.
func DealSizeForRound(round int, gameType redis_models.GameType, n int) int {
	size := oneEightOne(round, n)
	if gameType == redis_models.GameTypeEightOneEight {
		return game_constants.FullHandSize + 1 - size
	}
	return size
}

func oneEightOne(round, n int) int {
	switch {
	case round <= n:
		return 1
	case round <= n+6:
		return round - n + 1
	case round <= 2*n+6:
		return game_constants.FullHandSize
	case round <= 2*n+12:
		return 2*n + 14 - round
	default:
		return 1
	}
}

// Deal is the outcome of shuffling for one round.
type Deal struct {
	HandSize int
	Hands    [][]Card // indexed by seat
	Trump    Card
	HasTrump bool
}

// ShuffleCards deals a round. The deck is cut to the n*8 highest cards, shuffled with
// shuffle (Shuffle when nil) and dealt seat by seat. When the hand size is below eight
// the next card is turned up as trump.
func ShuffleCards(round int, gameType redis_models.GameType, n int, shuffle func([]Card)) (Deal, error) {
	if n < 1 || n > game_constants.MaxPlayers {
		return Deal{}, fmt.Errorf("cannot deal to %d players", n)
	}
	if shuffle == nil {
		shuffle = Shuffle
	}

	full := BuildDeck()
	deck := make([]Card, n*game_constants.CardsPerPlayer)
	copy(deck, full[len(full)-len(deck):])
	shuffle(deck)

	size := DealSizeForRound(round, gameType, n)
	deal := Deal{HandSize: size, Hands: make([][]Card, n)}
	next := 0
	for seat := 0; seat < n; seat++ {
		deal.Hands[seat] = append([]Card(nil), deck[next:next+size]...)
		next += size
	}

	if size != game_constants.FullHandSize && next < len(deck) {
		deal.Trump = deck[next]
		deal.HasTrump = true
	}
	return deal, nil
}
