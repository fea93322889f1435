package whist

// IsBidLegal applies the hook rule: the last player to bid may not bring the total of
// bids to exactly the hand size. Everybody else may bid freely.
func IsBidLegal(isLastBidder bool, handSize, sumOfPriorBids, bid int) bool {
	if !isLastBidder {
		return true
	}
	return sumOfPriorBids+bid != handSize
}

// BidInRange reports whether bid is a possible number of tricks for the hand size.
func BidInRange(handSize, bid int) bool {
	return bid >= 0 && bid <= handSize
}

// LegalBids lists every bid the player may still make.
func LegalBids(isLastBidder bool, handSize, sumOfPriorBids int) []int {
	bids := make([]int, 0, handSize+1)
	for bid := 0; bid <= handSize; bid++ {
		if IsBidLegal(isLastBidder, handSize, sumOfPriorBids, bid) {
			bids = append(bids, bid)
		}
	}
	return bids
}
