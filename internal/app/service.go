package app

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/sjcbulldog/birdgame-sub000/internal/domain"
)

// Service contains the table use-cases operating on domain state. It owns
// the only source of randomness, so a match replays identically under a
// fixed seed. Callers must serialize access per game.
type Service struct {
	rng *rand.Rand
	now func() time.Time
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, now: time.Now}
}

// NewGame creates a game record with a fresh id. The dealer starts at the
// first seat in rotation order.
func (s *Service) NewGame(winScore int) (*domain.Game, []Event) {
	g := domain.NewGame(uuid.NewString(), domain.SeatOrder[0], winScore)
	ev := Event{Kind: EventGameCreated, Payload: GameCreatedPayload{
		GameID:   g.ID,
		Dealer:   g.Dealer,
		WinScore: g.WinScore,
	}}
	return g, []Event{ev}
}

// DealHand shuffles, deals, and opens the auction. Each seat's cards go out
// as a seat-private event; the face-up centerpile card is broadcast with
// the bidding start.
func (s *Service) DealHand(g *domain.Game) ([]Event, error) {
	deck := domain.ShuffleDeck(s.rng, domain.NewDeck())
	if err := g.DealHand(deck); err != nil {
		return nil, err
	}
	if err := g.StartBidding(); err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(domain.SeatOrder)+1)
	for _, seat := range domain.SeatOrder {
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, Hand: g.Hands[seat]},
			Recipients: []domain.Seat{seat},
		})
	}
	events = append(events, Event{
		Kind: EventBiddingStarted,
		Payload: BiddingStartedPayload{
			Dealer: g.Dealer,
			FaceUp: *g.FaceUp,
			Turn:   g.Auction.Turn,
		},
	})
	return events, nil
}

// PlaceBid records an auction action. A completed auction awards the
// centerpile to the winner; a walked auction tears up the hand for a
// redeal.
func (s *Service) PlaceBid(g *domain.Game, seat domain.Seat, action domain.BidAction, value int) ([]Event, error) {
	if err := g.PlaceBid(seat, action, value, s.now()); err != nil {
		return nil, err
	}

	events := []Event{{Kind: EventBidPlaced, Payload: BidPlacedPayload{
		Seat:       seat,
		Action:     action,
		Value:      value,
		HighBid:    g.HighBid,
		HighBidder: g.HighBidder,
		Turn:       g.TurnSeat(),
	}}}

	switch g.Phase {
	case domain.PhaseNew:
		events = append(events, Event{
			Kind:    EventHandTornUp,
			Payload: HandTornUpPayload{Dealer: g.Dealer},
		})
	case domain.PhaseSelecting:
		events = append(events,
			Event{
				Kind:    EventBiddingWon,
				Payload: BiddingWonPayload{Seat: g.HighBidder, Bid: g.HighBid},
			},
			Event{
				Kind:       EventCenterpileAwarded,
				Payload:    CenterpileAwardedPayload{Seat: g.HighBidder, Hand: g.Hands[g.HighBidder]},
				Recipients: []domain.Seat{g.HighBidder},
			})
	}
	return events, nil
}

// SelectNine applies the bidder's keep decision. The discard itself stays
// hidden from the table.
func (s *Service) SelectNine(g *domain.Game, seat domain.Seat, cardIDs []int) ([]Event, error) {
	if err := g.SelectNine(seat, cardIDs); err != nil {
		return nil, err
	}
	return []Event{{
		Kind:    EventCardsSelected,
		Payload: CardsSelectedPayload{Seat: seat},
	}}, nil
}

// DeclareTrump sets the trump color and opens play.
func (s *Service) DeclareTrump(g *domain.Game, seat domain.Seat, trump domain.Suit) ([]Event, error) {
	if err := g.DeclareTrump(seat, trump); err != nil {
		return nil, err
	}
	return []Event{{
		Kind:    EventTrumpDeclared,
		Payload: TrumpDeclaredPayload{Seat: seat, Trump: g.Trump, Lead: g.CurrentTrick.Lead},
	}}, nil
}

// PlayCard plays a card, announcing trick results and, on the ninth trick,
// the hand score.
func (s *Service) PlayCard(g *domain.Game, seat domain.Seat, cardID int) ([]Event, error) {
	var card domain.Card
	if i := domain.FindCard(g.Hands[seat], cardID); i >= 0 {
		card = g.Hands[seat][i]
	}
	before := len(g.CompletedTricks)
	if err := g.PlayCard(seat, cardID); err != nil {
		return nil, err
	}

	events := []Event{{Kind: EventCardPlayed, Payload: CardPlayedPayload{
		Seat: seat,
		Card: card,
		Turn: g.TurnSeat(),
	}}}
	if len(g.CompletedTricks) > before {
		ct := g.CompletedTricks[len(g.CompletedTricks)-1]
		events = append(events, Event{Kind: EventTrickWon, Payload: TrickWonPayload{
			Winner:      ct.Winner,
			Points:      ct.Points,
			TrickNumber: len(g.CompletedTricks),
		}})
	}
	return s.appendScore(g, events)
}

// ClaimRest resolves the remaining tricks for the high bidder and scores
// the hand.
func (s *Service) ClaimRest(g *domain.Game, seat domain.Seat) ([]Event, error) {
	before := len(g.CompletedTricks)
	if err := g.ClaimRest(seat); err != nil {
		return nil, err
	}
	events := []Event{{Kind: EventRestClaimed, Payload: RestClaimedPayload{
		Seat:   seat,
		Tricks: g.CompletedTricks[before:],
	}}}
	return s.appendScore(g, events)
}

// appendScore settles the hand once the ninth trick is in, and announces
// the end of the game when a team crosses the winning score.
func (s *Service) appendScore(g *domain.Game, events []Event) ([]Event, error) {
	if g.Phase != domain.PhaseScoring {
		return events, nil
	}
	handPoints := g.HandPoints()
	bidder := g.HighBidder
	bid := g.HighBid
	if err := g.ScoreHand(); err != nil {
		return events, err
	}

	events = append(events, Event{Kind: EventHandScored, Payload: HandScoredPayload{
		HandPoints: handPoints,
		Scores:     g.Scores,
		Bid:        bid,
		Bidder:     bidder,
		BidMade:    handPoints[bidder.Team()] >= bid,
	}})
	if g.Phase == domain.PhaseComplete {
		events = append(events, Event{Kind: EventGameEnded, Payload: GameEndedPayload{
			WinningTeam: g.WinningTeam,
			Scores:      g.Scores,
		}})
	}
	return events, nil
}
