package bot

import (
	"testing"

	"github.com/sjcbulldog/birdgame-sub000/internal/domain"
)

func playingGame(bidder domain.Seat, trump domain.Suit) *domain.Game {
	return &domain.Game{
		Phase:      domain.PhasePlaying,
		HighBid:    80,
		HighBidder: bidder,
		Trump:      trump,
		Awarded:    true,
		Hands:      map[domain.Seat][]domain.Card{},
	}
}

func emptyTricks(n int) []domain.CompletedTrick {
	return make([]domain.CompletedTrick, n)
}

func TestBidderLeadsBossTrump(t *testing.T) {
	g := playingGame(domain.SeatSouth, domain.SuitGreen)
	g.Hands[domain.SeatSouth] = handOf(t,
		cardSpec{domain.SuitRed, 1}, cardSpec{domain.SuitGreen, 5}, cardSpec{domain.SuitBlack, 9})
	g.CurrentTrick = &domain.Trick{Lead: domain.SeatSouth}

	b := &smartBrain{tune: DefaultTuning}
	got := b.ChooseCard(Observe(g, domain.SeatSouth))
	if want := deckCard(t, domain.SuitRed, 1).ID; got != want {
		t.Fatalf("lead card id = %d, want the red one to pull trump", got)
	}
}

func TestBidderReservesLoneTrumpForLastTrick(t *testing.T) {
	g := playingGame(domain.SeatSouth, domain.SuitGreen)
	g.Hands[domain.SeatSouth] = handOf(t,
		cardSpec{domain.SuitGreen, 9}, cardSpec{domain.SuitBlack, 14})
	g.Discard = handOf(t, cardSpec{domain.SuitRed, 5}) // counters ride the last trick
	g.CurrentTrick = &domain.Trick{Lead: domain.SeatSouth}
	b := &smartBrain{tune: DefaultTuning}

	t.Run("mid hand the trump is held back", func(t *testing.T) {
		g.CompletedTricks = emptyTricks(5)
		got := b.ChooseCard(Observe(g, domain.SeatSouth))
		if want := deckCard(t, domain.SuitBlack, 14).ID; got != want {
			t.Fatalf("lead card id = %d, want the boss black 14", got)
		}
	})
	t.Run("the last trick spends it", func(t *testing.T) {
		g.CompletedTricks = emptyTricks(8)
		got := b.ChooseCard(Observe(g, domain.SeatSouth))
		if want := deckCard(t, domain.SuitGreen, 9).ID; got != want {
			t.Fatalf("lead card id = %d, want the trump nine", got)
		}
	})
}

func TestFollowWithLowestWinner(t *testing.T) {
	g := playingGame(domain.SeatSouth, domain.SuitGreen)
	g.Hands[domain.SeatNorth] = handOf(t,
		cardSpec{domain.SuitRed, 5}, cardSpec{domain.SuitRed, 9}, cardSpec{domain.SuitRed, 13})
	g.CurrentTrick = &domain.Trick{Lead: domain.SeatWest, Plays: []domain.Play{
		{Seat: domain.SeatWest, Card: deckCard(t, domain.SuitRed, 8)},
	}}

	b := &smartBrain{tune: DefaultTuning}
	got := b.ChooseCard(Observe(g, domain.SeatNorth))
	if want := deckCard(t, domain.SuitRed, 9).ID; got != want {
		t.Fatalf("follow card id = %d, want the cheapest winner red 9", got)
	}
}

func TestDumpCountersToWinningPartner(t *testing.T) {
	g := playingGame(domain.SeatEast, domain.SuitGreen)
	g.Hands[domain.SeatSouth] = handOf(t,
		cardSpec{domain.SuitBlack, 10}, cardSpec{domain.SuitBlack, 5}, cardSpec{domain.SuitRed, 7})
	g.CurrentTrick = &domain.Trick{Lead: domain.SeatWest, Plays: []domain.Play{
		{Seat: domain.SeatWest, Card: deckCard(t, domain.SuitBlack, 9)},
		{Seat: domain.SeatNorth, Card: deckCard(t, domain.SuitBlack, 13)},
		{Seat: domain.SeatEast, Card: deckCard(t, domain.SuitBlack, 6)},
	}}

	b := &smartBrain{tune: DefaultTuning}
	got := b.ChooseCard(Observe(g, domain.SeatSouth))
	if want := deckCard(t, domain.SuitBlack, 10).ID; got != want {
		t.Fatalf("follow card id = %d, want the black 10 fed to the partner", got)
	}
}

func TestPartnerFeedsCountersIntoTrumpPull(t *testing.T) {
	g := playingGame(domain.SeatSouth, domain.SuitGreen)
	g.Hands[domain.SeatNorth] = handOf(t,
		cardSpec{domain.SuitRed, 1}, cardSpec{domain.SuitGreen, 7})
	g.CurrentTrick = &domain.Trick{Lead: domain.SeatSouth, Plays: []domain.Play{
		{Seat: domain.SeatSouth, Card: deckCard(t, domain.SuitGreen, 14)},
		{Seat: domain.SeatWest, Card: deckCard(t, domain.SuitGreen, 5)},
	}}

	b := &smartBrain{tune: DefaultTuning}
	got := b.ChooseCard(Observe(g, domain.SeatNorth))
	if want := deckCard(t, domain.SuitRed, 1).ID; got != want {
		t.Fatalf("follow card id = %d, want the red one fed to the bidder", got)
	}
}

func TestOpponentDucksEarlyTrumpPull(t *testing.T) {
	g := playingGame(domain.SeatSouth, domain.SuitGreen)
	g.Hands[domain.SeatWest] = handOf(t,
		cardSpec{domain.SuitGreen, 14}, cardSpec{domain.SuitGreen, 6})
	g.CurrentTrick = &domain.Trick{Lead: domain.SeatSouth, Plays: []domain.Play{
		{Seat: domain.SeatSouth, Card: deckCard(t, domain.SuitGreen, 13)},
	}}

	b := &smartBrain{tune: DefaultTuning}
	got := b.ChooseCard(Observe(g, domain.SeatWest))
	if want := deckCard(t, domain.SuitGreen, 6).ID; got != want {
		t.Fatalf("follow card id = %d, want the duck with green 6", got)
	}
}

func TestBidderLeadsHighestBossTrump(t *testing.T) {
	g := playingGame(domain.SeatSouth, domain.SuitGreen)
	g.Hands[domain.SeatSouth] = handOf(t,
		cardSpec{domain.SuitBird, 0}, cardSpec{domain.SuitRed, 1}, cardSpec{domain.SuitBlack, 9})
	g.CurrentTrick = &domain.Trick{Lead: domain.SeatSouth}

	b := &smartBrain{tune: DefaultTuning}
	got := b.ChooseCard(Observe(g, domain.SeatSouth))
	if want := deckCard(t, domain.SuitRed, 1).ID; got != want {
		t.Fatalf("lead card id = %d, want the red one ahead of the bird", got)
	}
}

func TestPartnerSignalsSpecialEarly(t *testing.T) {
	g := playingGame(domain.SeatNorth, domain.SuitGreen)
	g.Hands[domain.SeatSouth] = handOf(t,
		cardSpec{domain.SuitBird, 0}, cardSpec{domain.SuitYellow, 7}, cardSpec{domain.SuitRed, 9})
	g.CompletedTricks = emptyTricks(1)
	g.CurrentTrick = &domain.Trick{Lead: domain.SeatSouth}

	b := &smartBrain{tune: DefaultTuning}
	got := b.ChooseCard(Observe(g, domain.SeatSouth))
	if want := deckCard(t, domain.SuitBird, 0).ID; got != want {
		t.Fatalf("lead card id = %d, want the bird led to announce it", got)
	}
}

func TestPartnerLeadsHighestPlainAfterSignalWindow(t *testing.T) {
	g := playingGame(domain.SeatNorth, domain.SuitGreen)
	g.Hands[domain.SeatSouth] = handOf(t,
		cardSpec{domain.SuitYellow, 7}, cardSpec{domain.SuitBlack, 12}, cardSpec{domain.SuitRed, 9})
	g.CompletedTricks = emptyTricks(2)
	g.CurrentTrick = &domain.Trick{Lead: domain.SeatSouth}

	b := &smartBrain{tune: DefaultTuning}
	got := b.ChooseCard(Observe(g, domain.SeatSouth))
	if want := deckCard(t, domain.SuitBlack, 12).ID; got != want {
		t.Fatalf("lead card id = %d, want the highest plain card", got)
	}
}

func TestOpponentFeedsPartnerOverTrumpPull(t *testing.T) {
	g := playingGame(domain.SeatSouth, domain.SuitGreen)
	g.Hands[domain.SeatWest] = handOf(t,
		cardSpec{domain.SuitBlack, 10}, cardSpec{domain.SuitBlack, 5}, cardSpec{domain.SuitRed, 7})
	g.CurrentTrick = &domain.Trick{Lead: domain.SeatSouth, Plays: []domain.Play{
		{Seat: domain.SeatSouth, Card: deckCard(t, domain.SuitGreen, 13)},
	}}

	// West cannot win and the red one is still out behind the bidder, so
	// the counters go in on the partner's expected over-trump.
	b := &smartBrain{tune: DefaultTuning}
	got := b.ChooseCard(Observe(g, domain.SeatWest))
	if want := deckCard(t, domain.SuitBlack, 10).ID; got != want {
		t.Fatalf("follow card id = %d, want the black 10 fed forward", got)
	}
}

func TestOpponentShedAvoidsBidderColors(t *testing.T) {
	g := playingGame(domain.SeatSouth, domain.SuitGreen)
	g.Hands[domain.SeatWest] = handOf(t,
		cardSpec{domain.SuitBlack, 6}, cardSpec{domain.SuitYellow, 7})
	g.CompletedTricks = []domain.CompletedTrick{{
		Winner: domain.SeatSouth,
		Plays: []domain.Play{
			{Seat: domain.SeatSouth, Card: deckCard(t, domain.SuitBlack, 13)},
			{Seat: domain.SeatWest, Card: deckCard(t, domain.SuitBlack, 12)},
			{Seat: domain.SeatNorth, Card: deckCard(t, domain.SuitBlack, 11)},
			{Seat: domain.SeatEast, Card: deckCard(t, domain.SuitBlack, 8)},
		},
	}}
	g.CurrentTrick = &domain.Trick{Lead: domain.SeatEast, Plays: []domain.Play{
		{Seat: domain.SeatEast, Card: deckCard(t, domain.SuitGreen, 5)},
		{Seat: domain.SeatSouth, Card: deckCard(t, domain.SuitGreen, 13)},
	}}

	// The bidder showed black length on the first trick, so the duck comes
	// out of yellow even though the black 6 is the cheaper rank.
	b := &smartBrain{tune: DefaultTuning}
	got := b.ChooseCard(Observe(g, domain.SeatWest))
	if want := deckCard(t, domain.SuitYellow, 7).ID; got != want {
		t.Fatalf("follow card id = %d, want the yellow 7 kept out of the bidder's color", got)
	}
}

func TestBasicPlaysCheapestLegal(t *testing.T) {
	g := playingGame(domain.SeatSouth, domain.SuitGreen)
	g.Hands[domain.SeatNorth] = handOf(t,
		cardSpec{domain.SuitRed, 13}, cardSpec{domain.SuitRed, 9})
	g.CurrentTrick = &domain.Trick{Lead: domain.SeatWest, Plays: []domain.Play{
		{Seat: domain.SeatWest, Card: deckCard(t, domain.SuitRed, 10)},
	}}

	b := &basicBrain{tune: DefaultTuning}
	got := b.ChooseCard(Observe(g, domain.SeatNorth))
	if want := deckCard(t, domain.SuitRed, 9).ID; got != want {
		t.Fatalf("card id = %d, want the lowest legal red 9", got)
	}
}
