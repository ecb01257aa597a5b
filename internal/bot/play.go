package bot

import (
	"github.com/sjcbulldog/birdgame-sub000/internal/domain"
)

// playKey gives every card a total order for "lowest" and "highest" picks:
// plain cards by rank, the trump color above all plain cards, the bird and
// red one on top.
func playKey(c domain.Card, trump domain.Suit) int {
	switch {
	case c.IsRedOne():
		return 300
	case c.IsBird():
		return 200
	case c.Suit == trump:
		return 100 + c.Rank
	default:
		return c.Rank
	}
}

func lowestBy(cards []domain.Card, key func(domain.Card) int) domain.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if key(c) < key(best) || (key(c) == key(best) && c.ID < best.ID) {
			best = c
		}
	}
	return best
}

func highestBy(cards []domain.Card, key func(domain.Card) int) domain.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if key(c) > key(best) || (key(c) == key(best) && c.ID < best.ID) {
			best = c
		}
	}
	return best
}

// winningPlay folds the trick so far and returns the play currently holding
// it.
func winningPlay(t *domain.Trick, trump domain.Suit) (domain.Play, bool) {
	if t == nil || len(t.Plays) == 0 {
		return domain.Play{}, false
	}
	leadSuit, leadOK := t.LeadSuit()
	best := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if domain.Beats(p.Card, best.Card, leadSuit, leadOK, trump) {
			best = p
		}
	}
	return best, true
}

// lowestWinner finds the cheapest legal card that takes the trick from its
// current holder.
func lowestWinner(legal []domain.Card, t *domain.Trick, trump domain.Suit) (domain.Card, bool) {
	best, ok := winningPlay(t, trump)
	if !ok {
		return domain.Card{}, false
	}
	leadSuit, leadOK := t.LeadSuit()
	var winners []domain.Card
	for _, c := range legal {
		if domain.Beats(c, best.Card, leadSuit, leadOK, trump) {
			winners = append(winners, c)
		}
	}
	if len(winners) == 0 {
		return domain.Card{}, false
	}
	return lowestBy(winners, func(c domain.Card) int { return playKey(c, trump) }), true
}

// throwaway picks the card to lose with: zero-point before counters, plain
// before trump, shortest color first so a void opens up, lowest rank last.
func throwaway(legal []domain.Card, trump domain.Suit, suitLen map[domain.Suit]int) domain.Card {
	return lowestBy(legal, func(c domain.Card) int {
		key := playKey(c, trump)
		key += c.Points() * 1000
		if !c.IsTrumpClass(trump) {
			key += suitLen[c.Suit] * 400
		}
		return key
	})
}

// dumpCounters picks the most valuable card to feed a winning partner, or
// falls back to a throwaway when the legal set carries no points.
func dumpCounters(legal []domain.Card, trump domain.Suit, suitLen map[domain.Suit]int) domain.Card {
	var counters []domain.Card
	for _, c := range legal {
		if c.Points() > 0 {
			counters = append(counters, c)
		}
	}
	if len(counters) == 0 {
		return throwaway(legal, trump, suitLen)
	}
	best := counters[0]
	for _, c := range counters[1:] {
		if c.Points() > best.Points() || (c.Points() == best.Points() && playKey(c, trump) < playKey(best, trump)) {
			best = c
		}
	}
	return best
}

// opponentShed discards like throwaway but also steers away from colors
// the bidder has shown length in, so the void that opens is one the
// defense can use.
func (k *Knowledge) opponentShed(legal []domain.Card) domain.Card {
	suitLen := k.suitLengths()
	return lowestBy(legal, func(c domain.Card) int {
		key := playKey(c, k.Trump) + c.Points()*1000
		if !c.IsTrumpClass(k.Trump) {
			key += suitLen[c.Suit] * 400
			if k.BidderShownSuits[c.Suit] {
				key += 200
			}
		}
		return key
	})
}

func (k *Knowledge) suitLengths() map[domain.Suit]int {
	lens := map[domain.Suit]int{}
	for _, c := range k.Hand {
		if !c.IsTrumpClass(k.Trump) {
			lens[c.Suit]++
		}
	}
	return lens
}

func (k *Knowledge) trumpClass() []domain.Card {
	var out []domain.Card
	for _, c := range k.Hand {
		if c.IsTrumpClass(k.Trump) {
			out = append(out, c)
		}
	}
	return out
}

// safeForPartner reports whether the play currently winning the trick can
// no longer be taken away by an unseen card.
func (k *Knowledge) safeForPartner(best domain.Play) bool {
	if !k.IsBoss(best.Card) {
		return false
	}
	if best.Card.IsTrumpClass(k.Trump) {
		return true
	}
	return k.OutstandingTrumpClass() == 0
}

func (b *smartBrain) ChooseCard(k *Knowledge) int {
	legal := domain.LegalPlays(k.Hand, k.CurrentTrick, k.Trump)
	if len(legal) == 0 {
		return -1
	}
	if len(k.CurrentTrick.Plays) == 0 {
		return b.chooseLead(k).ID
	}
	return b.chooseFollow(k, legal).ID
}

// chooseLead runs on a full hand: the leader may play anything.
func (b *smartBrain) chooseLead(k *Knowledge) domain.Card {
	switch k.Role() {
	case RoleBidder:
		return b.bidderLead(k)
	case RolePartner:
		return b.partnerLead(k)
	default:
		return b.opponentLead(k)
	}
}

// bidderLead pulls trump while the opposition can still ruff, then cashes
// boss cards. A lone trump is held back for the final trick when the
// discard carries points, since the discard rides with whoever takes that
// trick.
func (b *smartBrain) bidderLead(k *Knowledge) domain.Card {
	trumps := k.trumpClass()
	outstanding := k.OutstandingTrumpClass()

	if outstanding > 0 {
		var boss []domain.Card
		for _, c := range trumps {
			if k.IsBoss(c) {
				boss = append(boss, c)
			}
		}
		if len(boss) > 0 {
			// Lead from the top so the pull stays unbeatable.
			return highestBy(boss, trumpClassStrength)
		}
		reserveLast := domain.CardPoints(k.Discard) > 0 && len(trumps) == 1 &&
			k.TrickNumber < domain.TricksPerHand
		if len(trumps) > 0 && !reserveLast {
			var cheap []domain.Card
			for _, c := range trumps {
				if c.Points() == 0 {
					cheap = append(cheap, c)
				}
			}
			if len(cheap) > 0 {
				return lowestBy(cheap, func(c domain.Card) int { return playKey(c, k.Trump) })
			}
		}
	}

	if c, ok := k.bossLead(); ok {
		return c
	}
	return throwaway(k.Hand, k.Trump, k.suitLengths())
}

// bossLead finds the strongest sure winner outside the trump class. Callers
// decide whether an unseen trump makes cashing it too risky.
func (k *Knowledge) bossLead() (domain.Card, bool) {
	var best domain.Card
	found := false
	for _, c := range k.Hand {
		if c.IsTrumpClass(k.Trump) || !k.IsBoss(c) {
			continue
		}
		if !found || c.Points() > best.Points() || (c.Points() == best.Points() && c.Rank > best.Rank) {
			best, found = c, true
		}
	}
	return best, found
}

// partnerLead announces a held special while the signal window is open,
// then cashes sure winners, then puts its best plain card on the table.
func (b *smartBrain) partnerLead(k *Knowledge) domain.Card {
	if k.TrickNumber <= b.tune.SignalTrickLimit {
		var specials []domain.Card
		for _, c := range k.Hand {
			if c.IsRedOne() || c.IsBird() {
				specials = append(specials, c)
			}
		}
		if len(specials) > 0 {
			return highestBy(specials, trumpClassStrength)
		}
	}
	if k.OutstandingTrumpClass() == 0 {
		if c, ok := k.bossLead(); ok {
			return c
		}
	}
	// Lead a color the bidder can ruff cheaply.
	for _, s := range domain.Suits {
		if !k.BidderOffSuits[s] {
			continue
		}
		var ruffable []domain.Card
		for _, c := range k.Hand {
			if !c.IsTrumpClass(k.Trump) && c.Suit == s && c.Points() == 0 {
				ruffable = append(ruffable, c)
			}
		}
		if len(ruffable) > 0 {
			return lowestBy(ruffable, func(c domain.Card) int { return playKey(c, k.Trump) })
		}
	}
	var plain []domain.Card
	for _, c := range k.Hand {
		if !c.IsTrumpClass(k.Trump) {
			plain = append(plain, c)
		}
	}
	if len(plain) > 0 {
		return highestBy(plain, func(c domain.Card) int { return c.Rank })
	}
	return throwaway(k.Hand, k.Trump, k.suitLengths())
}

func (b *smartBrain) opponentLead(k *Knowledge) domain.Card {
	if k.OutstandingTrumpClass() == 0 {
		if c, ok := k.bossLead(); ok {
			return c
		}
	}
	// Stay out of colors the bidder is known to ruff.
	var safe []domain.Card
	for _, c := range k.Hand {
		if !c.IsTrumpClass(k.Trump) && !k.BidderOffSuits[c.Suit] {
			safe = append(safe, c)
		}
	}
	if len(safe) > 0 {
		return throwaway(safe, k.Trump, k.suitLengths())
	}
	return throwaway(k.Hand, k.Trump, k.suitLengths())
}

func (b *smartBrain) chooseFollow(k *Knowledge, legal []domain.Card) domain.Card {
	t := k.CurrentTrick
	best, _ := winningPlay(t, k.Trump)
	lastToPlay := len(t.Plays) == len(domain.SeatOrder)-1
	partnerWinning := best.Seat == k.Seat.Partner()
	partnerPlayed := false
	for _, p := range t.Plays {
		if p.Seat == k.Seat.Partner() {
			partnerPlayed = true
		}
	}
	suitLen := k.suitLengths()

	// The bidder's partner feeds counters into the bidder's early trump
	// pull instead of hoarding them for tricks the defense will take.
	if k.Role() == RolePartner && best.Seat == k.HighBidder &&
		k.TrickNumber <= b.tune.FeedTrickLimit && trickLedWithTrump(t, k.Trump) {
		return dumpCounters(legal, k.Trump, suitLen)
	}

	if partnerWinning && (lastToPlay || k.safeForPartner(best)) {
		return dumpCounters(legal, k.Trump, suitLen)
	}

	// A defender with no winner of its own feeds counters into the
	// bidder's early trump pull while a bigger trump is still unseen and
	// the partner is yet to play behind it.
	if k.Role() == RoleOpponent && best.Seat == k.HighBidder && !partnerPlayed &&
		k.TrickNumber <= b.tune.DuckTrickLimit && trickLedWithTrump(t, k.Trump) &&
		k.TopOutstandingTrumpClass() > trumpClassStrength(best.Card) {
		if _, ok := lowestWinner(legal, t, k.Trump); !ok {
			return dumpCounters(legal, k.Trump, suitLen)
		}
	}

	// Defenders duck the bidder's early trump pull rather than spend a
	// high trump that can win a real trick later.
	if k.Role() == RoleOpponent && best.Seat == k.HighBidder && !lastToPlay &&
		k.TrickNumber <= b.tune.DuckTrickLimit && trickLedWithTrump(t, k.Trump) &&
		trickPoints(t) == 0 {
		return k.opponentShed(legal)
	}

	if w, ok := lowestWinner(legal, t, k.Trump); ok {
		return w
	}
	if k.Role() == RoleOpponent {
		return k.opponentShed(legal)
	}
	return throwaway(legal, k.Trump, suitLen)
}

func trickLedWithTrump(t *domain.Trick, trump domain.Suit) bool {
	return len(t.Plays) > 0 && t.Plays[0].Card.IsTrumpClass(trump)
}

func trickPoints(t *domain.Trick) int {
	total := 0
	for _, p := range t.Plays {
		total += p.Card.Points()
	}
	return total
}

// basicBrain plays the cheapest legal card every time.
func (b *basicBrain) ChooseCard(k *Knowledge) int {
	legal := domain.LegalPlays(k.Hand, k.CurrentTrick, k.Trump)
	if len(legal) == 0 {
		return -1
	}
	return lowestBy(legal, func(c domain.Card) int { return playKey(c, k.Trump) }).ID
}
