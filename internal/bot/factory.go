package bot

import (
	"fmt"
)

// BotLevel selects a strategy tier.
type BotLevel int

const (
	BotLevelBasic BotLevel = iota + 1
	BotLevelSmart
)

// basicBrain opens the auction only with a clearly strong hand and always
// plays its cheapest legal card.
type basicBrain struct {
	tune Tuning
}

// smartBrain runs the full heuristic: bid estimation, trump-driven hand
// selection, and role-aware trick play.
type smartBrain struct {
	tune Tuning
}

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	return NewBrainWithTuning(level, DefaultTuning)
}

// NewBrainWithTuning creates a brain with custom heuristic weights.
func NewBrainWithTuning(level BotLevel, tune Tuning) (Brain, error) {
	switch level {
	case BotLevelBasic:
		return &basicBrain{tune: tune}, nil
	case BotLevelSmart:
		return &smartBrain{tune: tune}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// LevelFromDifficulty maps an identity difficulty label to a level,
// defaulting to smart for unknown labels.
func LevelFromDifficulty(difficulty string) BotLevel {
	switch difficulty {
	case "easy", "basic":
		return BotLevelBasic
	default:
		return BotLevelSmart
	}
}
