package bot

import (
	"github.com/sjcbulldog/birdgame-sub000/internal/domain"
)

// EstimateBid scores a nine-card hand, plus the face-up centerpile card the
// bidder would collect, on the bid scale. The result is a multiple of the
// bid step; 0 means the hand is not worth an opening bid.
func EstimateBid(hand []domain.Card, faceUp *domain.Card, tune Tuning) int {
	cards := append([]domain.Card(nil), hand...)
	if faceUp != nil {
		cards = append(cards, *faceUp)
	}

	hasRedOne, hasBird := false, false
	for _, c := range cards {
		if c.IsRedOne() {
			hasRedOne = true
		}
		if c.IsBird() {
			hasBird = true
		}
	}

	est := tune.BidBase
	if !hasRedOne {
		est -= tune.NoRedOnePenalty
	}
	if !hasBird {
		est -= tune.NoBirdPenalty
	}

	best := bestTrumpSuit(cards)
	strength := 0
	for _, c := range cards {
		if c.Suit == best && !c.IsRedOne() {
			strength++
		}
	}
	if hasRedOne {
		strength++
	}
	if hasBird {
		strength++
	}
	if strength < 5 {
		est -= (5 - strength) * tune.ShortSuitPenalty
	}

	for _, c := range cards {
		if c.Suit != best && c.Rank == 14 {
			est += tune.OffSuitFourteenBonus
		}
	}

	// A hand holding both specials is uncapped; each missing one lowers
	// the ceiling.
	if !hasRedOne && est > tune.MaxBidNoRedOne {
		est = tune.MaxBidNoRedOne
	}
	if !hasBird && est > tune.MaxBidNoBird {
		est = tune.MaxBidNoBird
	}
	est -= est % domain.BidStep
	if est < domain.MinBid {
		return 0
	}
	return est
}

func (b *smartBrain) ChooseBid(k *Knowledge) BidDecision {
	a := k.Auction
	est := EstimateBid(k.Hand, k.FaceUp, b.tune)
	// Settle behind the partner's high bid unless the hand itself is
	// worth raising past it.
	if a.HighBidder == k.Seat.Partner() && a.HighBid+domain.BidStep > est {
		return BidDecision{Action: domain.BidActionCheck}
	}

	switch {
	case est == 0:
		return BidDecision{Action: domain.BidActionPass}
	case a.HighBidder == domain.SeatNone:
		return BidDecision{Action: domain.BidActionBid, Value: domain.MinBid}
	case a.HighBid+domain.BidStep <= est:
		// Always the minimum raise: never jump past what the hand is worth.
		return BidDecision{Action: domain.BidActionBid, Value: a.HighBid + domain.BidStep}
	}
	return BidDecision{Action: domain.BidActionPass}
}

func (b *basicBrain) ChooseBid(k *Knowledge) BidDecision {
	a := k.Auction
	if a.HighBidder == k.Seat.Partner() {
		return BidDecision{Action: domain.BidActionCheck}
	}
	// Opens at the minimum with a clearly strong hand, never competes.
	if a.HighBidder == domain.SeatNone {
		if EstimateBid(k.Hand, k.FaceUp, b.tune) >= domain.MinBid+b.tune.OpeningMargin {
			return BidDecision{Action: domain.BidActionBid, Value: domain.MinBid}
		}
	}
	return BidDecision{Action: domain.BidActionPass}
}
