package domain

import "fmt"

// Suit is one of the four card colors, or the bird marker.
type Suit string

const (
	SuitRed    Suit = "red"
	SuitBlack  Suit = "black"
	SuitGreen  Suit = "green"
	SuitYellow Suit = "yellow"
	// SuitBird marks the single bird card, which belongs to no color.
	SuitBird Suit = "bird"
	// SuitNone is the zero value used where no trump has been declared.
	SuitNone Suit = ""
)

// Suits lists the four colors in canonical order. The bird is not a color.
var Suits = [4]Suit{SuitRed, SuitBlack, SuitGreen, SuitYellow}

// Card is a single card in the 42-card deck. Ranks 5..14 exist in every
// color; the red one and the bird are the two specials.
type Card struct {
	ID   int  `json:"id"`
	Suit Suit `json:"suit"`
	Rank int  `json:"rank"` // 5..14, 1 for the red one, 0 for the bird
}

// IsBird reports whether the card is the bird.
func (c Card) IsBird() bool { return c.Suit == SuitBird }

// IsRedOne reports whether the card is the red one.
func (c Card) IsRedOne() bool { return c.Suit == SuitRed && c.Rank == 1 }

// Points returns the card's counting value. The full deck is worth 180.
func (c Card) Points() int {
	switch {
	case c.IsBird():
		return 20
	case c.IsRedOne():
		return 30
	case c.Rank == 5:
		return 5
	case c.Rank == 10 || c.Rank == 14:
		return 10
	default:
		return 0
	}
}

// IsTrumpClass reports whether the card counts as trump under the given
// trump suit. The bird and the red one are trump-class regardless of the
// declared color.
func (c Card) IsTrumpClass(trump Suit) bool {
	if c.IsBird() || c.IsRedOne() {
		return true
	}
	return trump != SuitNone && c.Suit == trump
}

func (c Card) String() string {
	switch {
	case c.IsBird():
		return "bird"
	case c.IsRedOne():
		return "red-1"
	default:
		return fmt.Sprintf("%s-%d", c.Suit, c.Rank)
	}
}

// Seat identifies one of the four fixed positions at the table.
type Seat string

const (
	SeatNorth Seat = "north"
	SeatEast  Seat = "east"
	SeatSouth Seat = "south"
	SeatWest  Seat = "west"
)

// SeatOrder is the fixed deal and turn rotation. It is independent of
// partnership: play alternates between the two teams.
var SeatOrder = [4]Seat{SeatSouth, SeatWest, SeatNorth, SeatEast}

// Next returns the seat that follows s in rotation order.
func (s Seat) Next() Seat {
	for i, seat := range SeatOrder {
		if seat == s {
			return SeatOrder[(i+1)%len(SeatOrder)]
		}
	}
	return SeatOrder[0]
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	switch s {
	case SeatNorth:
		return SeatSouth
	case SeatSouth:
		return SeatNorth
	case SeatEast:
		return SeatWest
	case SeatWest:
		return SeatEast
	}
	return SeatNone
}

// SeatNone is the zero seat value.
const SeatNone Seat = ""

// Team identifies one of the two fixed partnerships.
type Team string

const (
	TeamNorthSouth Team = "north_south"
	TeamEastWest   Team = "east_west"
	TeamNone       Team = ""
)

// Teams lists both partnerships.
var Teams = [2]Team{TeamNorthSouth, TeamEastWest}

// Team returns the partnership a seat belongs to.
func (s Seat) Team() Team {
	switch s {
	case SeatNorth, SeatSouth:
		return TeamNorthSouth
	case SeatEast, SeatWest:
		return TeamEastWest
	}
	return TeamNone
}

// SameTeam reports whether two seats are partners.
func SameTeam(a, b Seat) bool { return a.Team() == b.Team() && a.Team() != TeamNone }

// Opposing returns the other partnership.
func (t Team) Opposing() Team {
	if t == TeamNorthSouth {
		return TeamEastWest
	}
	return TeamNorthSouth
}

// FindCard returns the index of the card with the given id, or -1.
func FindCard(cards []Card, id int) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// RemoveCard removes the card with the given id and returns the updated
// slice. The input slice is not reused.
func RemoveCard(cards []Card, id int) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// CardPoints sums the counting value of a set of cards.
func CardPoints(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Points()
	}
	return total
}
