package nakama

import (
	"github.com/sjcbulldog/birdgame-sub000/internal/bot"
	"github.com/sjcbulldog/birdgame-sub000/internal/domain"
)

// SeatView is one seat in a match snapshot.
type SeatView struct {
	Seat        domain.Seat `json:"seat"`
	UserID      string      `json:"user_id,omitempty"`
	DisplayName string      `json:"display_name,omitempty"`
	IsOwner     bool        `json:"is_owner"`
	IsBot       bool        `json:"is_bot"`
	CardsLeft   int         `json:"cards_left"`
}

// GameView is a per-seat projection of the game: the viewer's own cards
// plus everything public. Other hands and the face-down centerpile never
// leave the server.
type GameView struct {
	GameID     string              `json:"game_id"`
	Phase      domain.HandPhase    `json:"phase"`
	Dealer     domain.Seat         `json:"dealer"`
	Turn       domain.Seat         `json:"turn,omitempty"`
	Hand       []domain.Card       `json:"hand,omitempty"`
	FaceUp     *domain.Card        `json:"face_up,omitempty"`
	Auction    *domain.Auction     `json:"auction,omitempty"`
	HighBid    int                 `json:"high_bid,omitempty"`
	HighBidder domain.Seat         `json:"high_bidder,omitempty"`
	Trump      domain.Suit         `json:"trump,omitempty"`
	Trick      *domain.Trick       `json:"trick,omitempty"`
	TricksDone int                 `json:"tricks_done"`
	HandPoints map[domain.Team]int `json:"hand_points,omitempty"`
	Scores     map[domain.Team]int `json:"scores"`
	WinScore   int                 `json:"win_score"`
	Winner     domain.Team         `json:"winner,omitempty"`
}

// MatchSnapshot is sent per presence so the embedded game view can be
// personalized.
type MatchSnapshot struct {
	Seats []SeatView `json:"seats"`
	Game  *GameView  `json:"game,omitempty"`
}

// gameViewFor projects the authoritative game for one seat.
func gameViewFor(g *domain.Game, seat domain.Seat) *GameView {
	if g == nil {
		return nil
	}
	v := &GameView{
		GameID:     g.ID,
		Phase:      g.Phase,
		Dealer:     g.Dealer,
		Turn:       g.TurnSeat(),
		Hand:       append([]domain.Card(nil), g.Hands[seat]...),
		FaceUp:     g.FaceUp,
		Auction:    g.Auction,
		HighBid:    g.HighBid,
		HighBidder: g.HighBidder,
		Trump:      g.Trump,
		Trick:      g.CurrentTrick,
		TricksDone: len(g.CompletedTricks),
		Scores:     g.Scores,
		WinScore:   g.WinScore,
		Winner:     g.WinningTeam,
	}
	if len(g.CompletedTricks) > 0 {
		v.HandPoints = g.HandPoints()
	}
	return v
}

func (ms *MatchState) seatViews() []SeatView {
	views := make([]SeatView, 0, len(ms.Seats))
	for i, userID := range ms.Seats {
		view := SeatView{Seat: seatAt(i), UserID: userID, IsOwner: i == ms.OwnerSeat}
		if userID != "" {
			if agent, ok := ms.Bots[userID]; ok {
				view.DisplayName = agent.Name
				view.IsBot = true
			} else if p, ok := ms.Presences[userID]; ok {
				view.DisplayName = p.GetUsername()
			} else if name := bot.GetBotDisplayName(userID); name != "" {
				view.DisplayName = name
				view.IsBot = true
			}
			if ms.Game != nil {
				view.CardsLeft = len(ms.Game.Hands[seatAt(i)])
			}
		}
		views = append(views, view)
	}
	return views
}
