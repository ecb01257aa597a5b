package domain

import "time"

const (
	// MinBid is the lowest legal numeric bid.
	MinBid = 60
	// BidStep is the bid granularity; numeric bids are multiples of this.
	BidStep = 5
)

// BidAction is the kind of a bidding-history entry.
type BidAction string

const (
	BidActionBid   BidAction = "bid"
	BidActionPass  BidAction = "pass"
	BidActionCheck BidAction = "check"
)

// BidEntry is one append-only entry in the hand's bidding history.
type BidEntry struct {
	Seat   Seat      `json:"seat"`
	Action BidAction `json:"action"`
	Value  int       `json:"value,omitempty"`
	At     time.Time `json:"at"`
}

// Auction tracks the bidding for a single hand.
type Auction struct {
	Entries    []BidEntry `json:"entries"`
	Turn       Seat       `json:"turn"`
	HighBid    int        `json:"high_bid"`
	HighBidder Seat       `json:"high_bidder"`
}

// NewAuction starts bidding with the seat following the dealer.
func NewAuction(dealer Seat) *Auction {
	return &Auction{Turn: dealer.Next()}
}

func (a *Auction) lastAction(seat Seat) (BidAction, bool) {
	for i := len(a.Entries) - 1; i >= 0; i-- {
		if a.Entries[i].Seat == seat {
			return a.Entries[i].Action, true
		}
	}
	return "", false
}

// active reports whether a seat is still competing: it has not settled with
// a pass or a check. A check signals contentment with the partner's high
// bid and leaves the auction like a pass does, but is recorded distinctly.
func (a *Auction) active(seat Seat) bool {
	act, ok := a.lastAction(seat)
	if !ok {
		return true
	}
	return act == BidActionBid
}

// ActiveCount returns the number of seats still competing.
func (a *Auction) ActiveCount() int {
	n := 0
	for _, s := range SeatOrder {
		if a.active(s) {
			n++
		}
	}
	return n
}

// Complete reports whether bidding has ended with a winner.
func (a *Auction) Complete() bool {
	return a.HighBidder != SeatNone && a.ActiveCount() <= 1
}

// AllPassed reports whether every seat passed without a numeric bid, which
// tears up the hand for a redeal.
func (a *Auction) AllPassed() bool {
	return a.HighBidder == SeatNone && a.ActiveCount() == 0
}

// Place validates and records a bidding action for the seat on turn.
func (a *Auction) Place(seat Seat, action BidAction, value int, at time.Time) error {
	if seat != a.Turn {
		return ruleErrorf(ErrInvalidTurn, "it is %s's turn to bid, not %s's", a.Turn, seat)
	}

	switch action {
	case BidActionBid:
		if value < MinBid {
			return ruleErrorf(ErrIllegalBid, "bid %d is below the minimum %d", value, MinBid)
		}
		if value%BidStep != 0 {
			return ruleErrorf(ErrIllegalBid, "bid %d is not a multiple of %d", value, BidStep)
		}
		if value <= a.HighBid {
			return ruleErrorf(ErrIllegalBid, "bid %d does not beat the high bid %d", value, a.HighBid)
		}
		a.HighBid = value
		a.HighBidder = seat
	case BidActionPass:
		// Always legal.
	case BidActionCheck:
		if a.HighBidder == SeatNone || a.HighBidder != seat.Partner() {
			return ruleErrorf(ErrIllegalBid, "%s may only check while partner holds the high bid", seat)
		}
	default:
		return ruleErrorf(ErrIllegalBid, "unknown bid action %q", action)
	}

	a.Entries = append(a.Entries, BidEntry{Seat: seat, Action: action, Value: value, At: at})
	a.advanceTurn()
	return nil
}

// advanceTurn moves to the next seat still competing, skipping the current
// high bidder unless the auction has collapsed to them alone.
func (a *Auction) advanceTurn() {
	if a.Complete() || a.AllPassed() {
		return
	}
	s := a.Turn
	for i := 0; i < 4; i++ {
		s = s.Next()
		if a.active(s) && s != a.HighBidder {
			a.Turn = s
			return
		}
	}
	a.Turn = a.HighBidder
}
