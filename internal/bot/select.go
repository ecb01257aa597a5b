package bot

import (
	"sort"

	"github.com/sjcbulldog/birdgame-sub000/internal/domain"
)

// suitPotential scores a candidate trump color over a set of cards. The
// bird and red one count toward every color since they join the trump
// class regardless of the declaration.
func suitPotential(cards []domain.Card, s domain.Suit) int {
	score := 0
	for _, c := range cards {
		switch {
		case c.IsRedOne():
			score += 50
		case c.IsBird():
			score += 40
		case c.Suit == s:
			score += 10
			if c.Rank == 14 {
				score += 40
			} else if c.Rank >= 12 {
				score += 15
			}
		}
	}
	return score
}

// bestTrumpSuit picks the color with the most winning potential; ties break
// toward the canonical color order so the choice is stable.
func bestTrumpSuit(cards []domain.Card) domain.Suit {
	best := domain.Suits[0]
	bestScore := -1
	for _, s := range domain.Suits {
		if score := suitPotential(cards, s); score > bestScore {
			best, bestScore = s, score
		}
	}
	return best
}

// keepKey orders the fifteen cards by how much they serve the chosen trump:
// the specials first, then the trump color, then off-suit fourteens, then
// long colors kept whole so the discard creates voids. Inside a split
// color, plain cards stay over counters; discarded counters ride the
// last trick.
func keepKey(c domain.Card, trump domain.Suit, suitLen map[domain.Suit]int) int {
	switch {
	case c.IsRedOne():
		return 1000
	case c.IsBird():
		return 900
	case c.Suit == trump:
		return 500 + c.Rank
	case c.Rank == 14:
		return 300 + suitLen[c.Suit]
	default:
		return suitLen[c.Suit]*40 + c.Rank - 2*c.Points()
	}
}

func (b *smartBrain) SelectNine(k *Knowledge) []int {
	trump := bestTrumpSuit(k.Hand)
	suitLen := map[domain.Suit]int{}
	for _, c := range k.Hand {
		if !c.IsTrumpClass(trump) {
			suitLen[c.Suit]++
		}
	}

	hand := append([]domain.Card(nil), k.Hand...)
	sort.SliceStable(hand, func(i, j int) bool {
		ki, kj := keepKey(hand[i], trump, suitLen), keepKey(hand[j], trump, suitLen)
		if ki != kj {
			return ki > kj
		}
		return hand[i].ID < hand[j].ID
	})

	ids := make([]int, 0, domain.HandSize)
	for _, c := range hand[:domain.HandSize] {
		ids = append(ids, c.ID)
	}
	return ids
}

// DeclareTrump recomputes the color choice over the kept nine. Selection
// never splits the chosen color, so this lands on the same suit that drove
// the keep decision.
func (b *smartBrain) DeclareTrump(k *Knowledge) domain.Suit {
	return bestTrumpSuit(k.Hand)
}

func (b *basicBrain) SelectNine(k *Knowledge) []int {
	return (&smartBrain{tune: b.tune}).SelectNine(k)
}

func (b *basicBrain) DeclareTrump(k *Knowledge) domain.Suit {
	return bestTrumpSuit(k.Hand)
}
