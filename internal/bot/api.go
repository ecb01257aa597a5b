package bot

import (
	"github.com/sjcbulldog/birdgame-sub000/internal/domain"
)

// BidDecision is the auction move chosen by a brain.
type BidDecision struct {
	Action domain.BidAction
	Value  int
}

// Brain is the interface that all bot strategies must implement. Each
// method covers one decision point of a hand and is called only when the
// bot's seat is on turn for that phase. Decisions must be deterministic
// for a given Knowledge snapshot.
type Brain interface {
	ChooseBid(k *Knowledge) BidDecision
	SelectNine(k *Knowledge) []int
	DeclareTrump(k *Knowledge) domain.Suit
	ChooseCard(k *Knowledge) int
}
