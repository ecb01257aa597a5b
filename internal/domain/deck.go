package domain

import "math/rand"

// DeckSize is the number of cards in play: four colors of ten ranks plus
// the bird and the red one.
const DeckSize = 42

const (
	// HandSize is the number of cards each seat holds after the deal.
	HandSize = 9
	// CenterpileDown is the number of face-down centerpile cards.
	CenterpileDown = 5
	// TricksPerHand is the number of tricks in a complete hand.
	TricksPerHand = 9
)

// NewDeck returns the full 42-card deck in a fixed order with stable ids.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	id := 0
	for _, s := range Suits {
		for r := 5; r <= 14; r++ {
			deck = append(deck, Card{ID: id, Suit: s, Rank: r})
			id++
		}
	}
	deck = append(deck, Card{ID: id, Suit: SuitRed, Rank: 1})
	id++
	deck = append(deck, Card{ID: id, Suit: SuitBird, Rank: 0})
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(rng *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// DealResult is the partition of a shuffled deck into hands and centerpile.
type DealResult struct {
	Hands    map[Seat][]Card
	FaceDown []Card
	FaceUp   Card
}

// DealCards partitions a 42-card deck. The first five rounds give each seat
// one card and bury one face down; the next four rounds give each seat one
// more card; the final card is turned face up on the centerpile. Dealing
// starts at the seat following the dealer.
func DealCards(deck []Card, dealer Seat) DealResult {
	res := DealResult{
		Hands:    make(map[Seat][]Card, 4),
		FaceDown: make([]Card, 0, CenterpileDown),
	}
	for _, s := range SeatOrder {
		res.Hands[s] = make([]Card, 0, HandSize)
	}

	idx := 0
	next := func() Card {
		c := deck[idx]
		idx++
		return c
	}

	seat := dealer.Next()
	for round := 0; round < CenterpileDown; round++ {
		for i := 0; i < 4; i++ {
			res.Hands[seat] = append(res.Hands[seat], next())
			seat = seat.Next()
		}
		res.FaceDown = append(res.FaceDown, next())
	}
	for round := 0; round < HandSize-CenterpileDown; round++ {
		for i := 0; i < 4; i++ {
			res.Hands[seat] = append(res.Hands[seat], next())
			seat = seat.Next()
		}
	}
	res.FaceUp = next()
	return res
}
