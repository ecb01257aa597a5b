package domain

import (
	"math/rand"
	"testing"
)

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck size = %d, want %d", len(deck), DeckSize)
	}

	ids := make(map[int]bool, DeckSize)
	perSuit := make(map[Suit]int)
	birds, redOnes := 0, 0
	for _, c := range deck {
		if ids[c.ID] {
			t.Fatalf("duplicate card id %d", c.ID)
		}
		ids[c.ID] = true
		switch {
		case c.IsBird():
			birds++
		case c.IsRedOne():
			redOnes++
		default:
			if c.Rank < 5 || c.Rank > 14 {
				t.Fatalf("unexpected rank %d for %s", c.Rank, c.Suit)
			}
			perSuit[c.Suit]++
		}
	}
	if birds != 1 || redOnes != 1 {
		t.Fatalf("birds = %d, red ones = %d, want 1 and 1", birds, redOnes)
	}
	for _, s := range Suits {
		if perSuit[s] != 10 {
			t.Fatalf("suit %s has %d ranked cards, want 10", s, perSuit[s])
		}
	}
}

// Scenario: dealer north, fixed seed. Every seat ends with nine cards and
// the centerpile holds five face down plus one face up, with no card in two
// places.
func TestDealPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	deck := ShuffleDeck(rng, NewDeck())
	res := DealCards(deck, SeatNorth)

	seen := make(map[int]bool, DeckSize)
	track := func(c Card) {
		if seen[c.ID] {
			t.Fatalf("card %s dealt twice", c)
		}
		seen[c.ID] = true
	}

	for _, s := range SeatOrder {
		if len(res.Hands[s]) != HandSize {
			t.Fatalf("seat %s holds %d cards, want %d", s, len(res.Hands[s]), HandSize)
		}
		for _, c := range res.Hands[s] {
			track(c)
		}
	}
	if len(res.FaceDown) != CenterpileDown {
		t.Fatalf("face-down pile = %d cards, want %d", len(res.FaceDown), CenterpileDown)
	}
	for _, c := range res.FaceDown {
		track(c)
	}
	track(res.FaceUp)
	if len(seen) != DeckSize {
		t.Fatalf("dealt %d distinct cards, want %d", len(seen), DeckSize)
	}
}

func TestDealStartsLeftOfDealer(t *testing.T) {
	deck := NewDeck() // unshuffled: first card is red 5 (id 0)
	res := DealCards(deck, SeatNorth)
	first := res.Hands[SeatEast][0]
	if first.ID != 0 {
		t.Fatalf("first card went to the wrong seat: %s got id %d", SeatEast, first.ID)
	}
}

func TestShuffleDeterministicForSeed(t *testing.T) {
	a := ShuffleDeck(rand.New(rand.NewSource(11)), NewDeck())
	b := ShuffleDeck(rand.New(rand.NewSource(11)), NewDeck())
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different decks at %d", i)
		}
	}
}
