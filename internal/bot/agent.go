package bot

import (
	"github.com/sjcbulldog/birdgame-sub000/internal/domain"
)

// ActionType discriminates the moves an agent can hand back to its caller.
type ActionType string

const (
	ActionBid     ActionType = "bid"
	ActionSelect  ActionType = "select"
	ActionDeclare ActionType = "declare"
	ActionPlay    ActionType = "play"
	ActionClaim   ActionType = "claim"
)

// Action is one decided move, ready to be applied through the game's
// normal entry points.
type Action struct {
	Type    ActionType
	Bid     domain.BidAction
	Value   int
	CardIDs []int
	Trump   domain.Suit
	CardID  int
}

// Agent represents an autonomous bot player occupying one seat.
type Agent struct {
	ID       string
	Name     string
	Seat     domain.Seat
	Strategy Brain
}

// Act asks the agent for its move. It returns false when the agent's seat
// is not on turn, which lets the caller poll every agent each tick.
func (a *Agent) Act(g *domain.Game) (Action, bool) {
	if g.TurnSeat() != a.Seat {
		return Action{}, false
	}
	k := Observe(g, a.Seat)

	switch g.Phase {
	case domain.PhaseBidding:
		d := a.Strategy.ChooseBid(k)
		return Action{Type: ActionBid, Bid: d.Action, Value: d.Value}, true
	case domain.PhaseSelecting:
		return Action{Type: ActionSelect, CardIDs: a.Strategy.SelectNine(k)}, true
	case domain.PhaseDeclaring:
		return Action{Type: ActionDeclare, Trump: a.Strategy.DeclareTrump(k)}, true
	case domain.PhasePlaying:
		if k.Role() == RoleBidder && len(g.CurrentTrick.Plays) == 0 && provableClaim(k) {
			return Action{Type: ActionClaim}, true
		}
		return Action{Type: ActionPlay, CardID: a.Strategy.ChooseCard(k)}, true
	}
	return Action{}, false
}

// provableClaim holds when the claim is certain to be accepted from the
// agent's own knowledge: no trump-class card is unseen and every remaining
// card in hand is the boss of its color. Opponent holdings are a subset of
// the unseen cards, so the engine's stricter check cannot fail.
func provableClaim(k *Knowledge) bool {
	if len(k.Hand) == 0 || k.OutstandingTrumpClass() > 0 {
		return false
	}
	for _, c := range k.Hand {
		if !k.IsBoss(c) {
			return false
		}
	}
	return true
}
