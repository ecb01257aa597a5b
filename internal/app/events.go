package app

import "github.com/sjcbulldog/birdgame-sub000/internal/domain"

// EventKind identifies emitted domain events for transport dispatch.
type EventKind string

const (
	EventGameCreated       EventKind = "game_created"
	EventHandDealt         EventKind = "hand_dealt"
	EventBiddingStarted    EventKind = "bidding_started"
	EventBidPlaced         EventKind = "bid_placed"
	EventHandTornUp        EventKind = "hand_torn_up"
	EventBiddingWon        EventKind = "bidding_won"
	EventCenterpileAwarded EventKind = "centerpile_awarded"
	EventCardsSelected     EventKind = "cards_selected"
	EventTrumpDeclared     EventKind = "trump_declared"
	EventCardPlayed        EventKind = "card_played"
	EventTrickWon          EventKind = "trick_won"
	EventRestClaimed       EventKind = "rest_claimed"
	EventHandScored        EventKind = "hand_scored"
	EventGameEnded         EventKind = "game_ended"
)

// Event is an app event with optional targeted recipients. Recipients name
// seats rather than connections; the transport resolves who sits where.
// An empty recipient list means broadcast.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []domain.Seat
}

type GameCreatedPayload struct {
	GameID   string      `json:"game_id"`
	Dealer   domain.Seat `json:"dealer"`
	WinScore int         `json:"win_score"`
}

type HandDealtPayload struct {
	Seat domain.Seat   `json:"seat"`
	Hand []domain.Card `json:"hand"`
}

type BiddingStartedPayload struct {
	Dealer domain.Seat `json:"dealer"`
	FaceUp domain.Card `json:"face_up"`
	Turn   domain.Seat `json:"turn"`
}

type BidPlacedPayload struct {
	Seat       domain.Seat      `json:"seat"`
	Action     domain.BidAction `json:"action"`
	Value      int              `json:"value,omitempty"`
	HighBid    int              `json:"high_bid"`
	HighBidder domain.Seat      `json:"high_bidder"`
	Turn       domain.Seat      `json:"turn"`
}

type HandTornUpPayload struct {
	Dealer domain.Seat `json:"dealer"`
}

type BiddingWonPayload struct {
	Seat domain.Seat `json:"seat"`
	Bid  int         `json:"bid"`
}

// CenterpileAwardedPayload carries the bidder's enlarged hand and goes only
// to the bidder's seat.
type CenterpileAwardedPayload struct {
	Seat domain.Seat   `json:"seat"`
	Hand []domain.Card `json:"hand"`
}

type CardsSelectedPayload struct {
	Seat domain.Seat `json:"seat"`
}

type TrumpDeclaredPayload struct {
	Seat  domain.Seat `json:"seat"`
	Trump domain.Suit `json:"trump"`
	Lead  domain.Seat `json:"lead"`
}

type CardPlayedPayload struct {
	Seat domain.Seat `json:"seat"`
	Card domain.Card `json:"card"`
	Turn domain.Seat `json:"turn,omitempty"`
}

type TrickWonPayload struct {
	Winner      domain.Seat `json:"winner"`
	Points      int         `json:"points"`
	TrickNumber int         `json:"trick_number"`
}

type RestClaimedPayload struct {
	Seat   domain.Seat             `json:"seat"`
	Tricks []domain.CompletedTrick `json:"tricks"`
}

type HandScoredPayload struct {
	HandPoints map[domain.Team]int `json:"hand_points"`
	Scores     map[domain.Team]int `json:"scores"`
	Bid        int                 `json:"bid"`
	Bidder     domain.Seat         `json:"bidder"`
	BidMade    bool                `json:"bid_made"`
}

type GameEndedPayload struct {
	WinningTeam domain.Team         `json:"winning_team"`
	Scores      map[domain.Team]int `json:"scores"`
}
