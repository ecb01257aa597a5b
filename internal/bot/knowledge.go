package bot

import (
	"github.com/sjcbulldog/birdgame-sub000/internal/domain"
)

// Role is a seat's relation to the high bidder during play.
type Role int

const (
	RoleOpponent Role = iota
	RoleBidder
	RolePartner
)

// Knowledge is a bot's private view of the table: its own cards, everything
// publicly played, and what the bidding and discard let it infer. It never
// contains another seat's hand.
type Knowledge struct {
	Seat   domain.Seat
	Hand   []domain.Card
	Trump  domain.Suit
	FaceUp *domain.Card

	HighBid    int
	HighBidder domain.Seat
	Auction    *domain.Auction

	// Discard holds this seat's own set-aside cards when it is the high
	// bidder, and is nil otherwise.
	Discard []domain.Card

	CurrentTrick *domain.Trick
	TrickNumber  int // 1-based once play starts, 0 before

	// BidderOffSuits marks colors the high bidder has shown a void in by
	// not following a lead.
	BidderOffSuits map[domain.Suit]bool

	// BidderShownSuits marks plain colors the high bidder has been seen
	// playing, a sign of length there. Defenders avoid discarding into
	// them.
	BidderShownSuits map[domain.Suit]bool

	// outstanding tracks cards this seat cannot place: neither in its own
	// hand or discard nor already played to a trick.
	outstanding map[int]domain.Card
}

// Observe snapshots everything the given seat may legitimately know about
// the game.
func Observe(g *domain.Game, seat domain.Seat) *Knowledge {
	k := &Knowledge{
		Seat:             seat,
		Hand:             append([]domain.Card(nil), g.Hands[seat]...),
		Trump:            g.Trump,
		FaceUp:           g.FaceUp,
		HighBid:          g.HighBid,
		HighBidder:       g.HighBidder,
		Auction:          g.Auction,
		CurrentTrick:     g.CurrentTrick,
		BidderOffSuits:   map[domain.Suit]bool{},
		BidderShownSuits: map[domain.Suit]bool{},
		outstanding:      map[int]domain.Card{},
	}
	if seat == g.HighBidder {
		k.Discard = append([]domain.Card(nil), g.Discard...)
	}
	if g.Phase == domain.PhasePlaying {
		k.TrickNumber = len(g.CompletedTricks) + 1
	}

	for _, c := range domain.NewDeck() {
		k.outstanding[c.ID] = c
	}
	for _, c := range k.Hand {
		delete(k.outstanding, c.ID)
	}
	for _, c := range k.Discard {
		delete(k.outstanding, c.ID)
	}
	if !g.Awarded && g.FaceUp != nil {
		// Still in the centerpile: visible but in nobody's hand.
		delete(k.outstanding, g.FaceUp.ID)
	}

	for _, ct := range g.CompletedTricks {
		k.absorbPlays(ct.Plays, g)
	}
	if g.CurrentTrick != nil {
		k.absorbPlays(g.CurrentTrick.Plays, g)
	}
	return k
}

func (k *Knowledge) absorbPlays(plays []domain.Play, g *domain.Game) {
	if len(plays) == 0 {
		return
	}
	leadSuit := plays[0].Card.Suit
	leadIsSpecial := plays[0].Card.IsBird() || plays[0].Card.IsRedOne()
	for _, p := range plays {
		delete(k.outstanding, p.Card.ID)
		if p.Seat != g.HighBidder {
			continue
		}
		if !p.Card.IsTrumpClass(g.Trump) {
			k.BidderShownSuits[p.Card.Suit] = true
		}
		if p.Seat == plays[0].Seat {
			continue
		}
		if !leadIsSpecial && p.Card.Suit != leadSuit && !p.Card.IsTrumpClass(g.Trump) {
			// Could not follow and did not trump: void in the lead color.
			k.BidderOffSuits[leadSuit] = true
		}
	}
}

// Role returns the seat's relation to the high bidder.
func (k *Knowledge) Role() Role {
	switch {
	case k.Seat == k.HighBidder:
		return RoleBidder
	case k.Seat.Partner() == k.HighBidder:
		return RolePartner
	default:
		return RoleOpponent
	}
}

// trumpClassStrength mirrors trick resolution: red one over bird over the
// trump color by rank.
func trumpClassStrength(c domain.Card) int {
	switch {
	case c.IsRedOne():
		return 200
	case c.IsBird():
		return 100
	default:
		return c.Rank
	}
}

// OutstandingTrumpClass counts trump-class cards that some other seat may
// still hold.
func (k *Knowledge) OutstandingTrumpClass() int {
	n := 0
	for _, c := range k.outstanding {
		if c.IsTrumpClass(k.Trump) {
			n++
		}
	}
	return n
}

// TopOutstandingTrumpClass returns the strength of the best unseen
// trump-class card, or 0 when none remain.
func (k *Knowledge) TopOutstandingTrumpClass() int {
	top := 0
	for _, c := range k.outstanding {
		if c.IsTrumpClass(k.Trump) && trumpClassStrength(c) > top {
			top = trumpClassStrength(c)
		}
	}
	return top
}

// IsBoss reports whether no unseen card can outrank the given card within
// its own class. A boss non-trump card can still lose to a trump.
func (k *Knowledge) IsBoss(c domain.Card) bool {
	if c.IsTrumpClass(k.Trump) {
		s := trumpClassStrength(c)
		for _, o := range k.outstanding {
			if o.IsTrumpClass(k.Trump) && trumpClassStrength(o) > s {
				return false
			}
		}
		return true
	}
	for _, o := range k.outstanding {
		if !o.IsTrumpClass(k.Trump) && o.Suit == c.Suit && o.Rank > c.Rank {
			return false
		}
	}
	return true
}

// HighestOutstanding returns the top unseen rank in a color, or 0 when the
// color is exhausted. Trump-class cards are excluded.
func (k *Knowledge) HighestOutstanding(s domain.Suit) int {
	top := 0
	for _, o := range k.outstanding {
		if !o.IsTrumpClass(k.Trump) && o.Suit == s && o.Rank > top {
			top = o.Rank
		}
	}
	return top
}
