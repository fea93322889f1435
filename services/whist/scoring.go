package whist

import game_constants "Whist/constants/game"

// RoundDelta is the score change of a player at the end of a round: the bid plus a
// bonus on an exact hit, minus the size of the miss otherwise.
func RoundDelta(bid, tricksWon int) int {
	if bid == tricksWon {
		return bid + game_constants.ExactBidBonus
	}
	return -abs(bid - tricksWon)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
