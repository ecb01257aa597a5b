package bot

// Tuning collects the weights behind the bid estimate and the play
// heuristics. Bid weights are expressed on the bid scale itself.
type Tuning struct {
	BidBase              int // starting estimate for a full-strength hand
	NoRedOnePenalty      int
	NoBirdPenalty        int
	ShortSuitPenalty     int // per card the strongest color falls short of five
	OffSuitFourteenBonus int
	MaxBidNoRedOne       int // ceiling when the red one is missing
	MaxBidNoBird         int // ceiling when the bird is missing

	// OpeningMargin is the extra estimate a cautious brain demands before
	// opening the auction at all.
	OpeningMargin int

	// SignalTrickLimit is the last trick on which the bidder's partner
	// leads a held special to announce it.
	SignalTrickLimit int

	// FeedTrickLimit is how many early tricks the bidder's partner keeps
	// feeding counters into the bidder's trump leads.
	FeedTrickLimit int

	// DuckTrickLimit is how many early tricks an opponent refuses to spend
	// a high trump under the bidder's trump pull.
	DuckTrickLimit int
}

// DefaultTuning balances auction aggression against the risk of being set.
var DefaultTuning = Tuning{
	BidBase:              150,
	NoRedOnePenalty:      40,
	NoBirdPenalty:        30,
	ShortSuitPenalty:     10,
	OffSuitFourteenBonus: 10,
	MaxBidNoRedOne:       120,
	MaxBidNoBird:         110,
	OpeningMargin:        10,
	SignalTrickLimit:     2,
	FeedTrickLimit:       2,
	DuckTrickLimit:       3,
}
