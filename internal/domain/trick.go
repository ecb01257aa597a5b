package domain

// Play is a single card played by a seat within a trick.
type Play struct {
	Seat Seat `json:"seat"`
	Card Card `json:"card"`
}

// Trick is an in-progress trick: an ordered list of up to four plays.
type Trick struct {
	Lead  Seat   `json:"lead"`
	Plays []Play `json:"plays"`
}

// CompletedTrick records a resolved trick with its winner and point total.
type CompletedTrick struct {
	Winner Seat   `json:"winner"`
	Plays  []Play `json:"plays"`
	Points int    `json:"points"`
}

// LeadSuit returns the suit established by the first non-bird card played.
// A bird lead establishes no suit.
func (t *Trick) LeadSuit() (Suit, bool) {
	for _, p := range t.Plays {
		if !p.Card.IsBird() {
			return p.Card.Suit, true
		}
	}
	return SuitNone, false
}

// IsComplete reports whether all four seats have played.
func (t *Trick) IsComplete() bool { return len(t.Plays) == 4 }

// NextSeat returns the seat due to play next.
func (t *Trick) NextSeat() Seat {
	s := t.Lead
	for i := 0; i < len(t.Plays); i++ {
		s = s.Next()
	}
	return s
}

// Points sums the counting value of the cards played so far.
func (t *Trick) Points() int {
	total := 0
	for _, p := range t.Plays {
		total += p.Card.Points()
	}
	return total
}

// trumpStrength orders trump-class cards: red one above bird above the
// trump color by rank.
func trumpStrength(c Card) int {
	switch {
	case c.IsRedOne():
		return 200
	case c.IsBird():
		return 100
	default:
		return c.Rank
	}
}

// Beats reports whether the challenger card, played after the incumbent,
// takes the trick from it. leadOK is false when no lead suit exists (a bird
// was led).
func Beats(challenger, incumbent Card, leadSuit Suit, leadOK bool, trump Suit) bool {
	cTrump := challenger.IsTrumpClass(trump)
	iTrump := incumbent.IsTrumpClass(trump)
	switch {
	case cTrump && !iTrump:
		return true
	case !cTrump && iTrump:
		return false
	case cTrump && iTrump:
		return trumpStrength(challenger) > trumpStrength(incumbent)
	}
	if !leadOK {
		return false
	}
	cLead := challenger.Suit == leadSuit
	iLead := incumbent.Suit == leadSuit
	switch {
	case cLead && !iLead:
		return true
	case !cLead && iLead:
		return false
	case cLead && iLead:
		return challenger.Rank > incumbent.Rank
	}
	// Neither follows the lead: the earlier play stands.
	return false
}

// Winner folds over the plays and returns the seat holding the trick.
func (t *Trick) Winner(trump Suit) Seat {
	if len(t.Plays) == 0 {
		return SeatNone
	}
	leadSuit, leadOK := t.LeadSuit()
	best := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if Beats(p.Card, best.Card, leadSuit, leadOK, trump) {
			best = p
		}
	}
	return best.Seat
}

// Resolve finalizes a complete trick.
func (t *Trick) Resolve(trump Suit) CompletedTrick {
	return CompletedTrick{
		Winner: t.Winner(trump),
		Plays:  append([]Play(nil), t.Plays...),
		Points: t.Points(),
	}
}

// LegalPlays returns the subset of the hand that may legally be played into
// the trick. The result is never empty for a non-empty hand.
func LegalPlays(hand []Card, t *Trick, trump Suit) []Card {
	if t == nil || len(t.Plays) == 0 {
		return append([]Card(nil), hand...)
	}

	ledCard := t.Plays[0].Card
	mustTrump := false
	if trump != SuitNone && (ledCard.IsBird() || ledCard.IsRedOne()) {
		// A led special forces trump-class play.
		mustTrump = true
	}
	leadSuit, leadOK := t.LeadSuit()
	if !mustTrump && leadOK && leadSuit == trump {
		mustTrump = true
	}

	if mustTrump {
		var trumps []Card
		for _, c := range hand {
			if c.IsTrumpClass(trump) {
				trumps = append(trumps, c)
			}
		}
		if len(trumps) > 0 {
			return trumps
		}
		return append([]Card(nil), hand...)
	}

	if leadOK {
		var follow []Card
		for _, c := range hand {
			if c.Suit == leadSuit {
				follow = append(follow, c)
			}
		}
		if len(follow) > 0 {
			return follow
		}
	}
	return append([]Card(nil), hand...)
}
