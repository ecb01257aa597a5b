package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type GameConfig struct {
	// WinScore is the cumulative team score that ends a game.
	WinScore int `json:"win_score"`
	// TurnDurationSeconds bounds how long a human seat may sit on a
	// decision before the match nudges it.
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before
	// filling the empty seats of a solo human lobby with bots.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// BotMinThinkMillis and BotMaxThinkMillis bound the artificial delay
	// before a bot move is applied.
	BotMinThinkMillis int `json:"bot_min_think_millis"`
	BotMaxThinkMillis int `json:"bot_max_think_millis"`
	// BotTuning overrides individual bot heuristic weights. Zero fields
	// keep their built-in defaults.
	BotTuning BotTuning `json:"bot_tuning"`
}

// BotTuning mirrors the bot package's tunable weights so they can be
// adjusted per deployment without a rebuild.
type BotTuning struct {
	BidBase              int `json:"bid_base"`
	NoRedOnePenalty      int `json:"no_red_one_penalty"`
	NoBirdPenalty        int `json:"no_bird_penalty"`
	ShortSuitPenalty     int `json:"short_suit_penalty"`
	OffSuitFourteenBonus int `json:"off_suit_fourteen_bonus"`
	MaxBidNoRedOne       int `json:"max_bid_no_red_one"`
	MaxBidNoBird         int `json:"max_bid_no_bird"`
	OpeningMargin        int `json:"opening_margin"`
	SignalTrickLimit     int `json:"signal_trick_limit"`
	FeedTrickLimit       int `json:"feed_trick_limit"`
	DuckTrickLimit       int `json:"duck_trick_limit"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration with safe defaults
// for anything the file left unset or failed to provide.
func GetGameConfig() GameConfig {
	c := GameConfig{
		WinScore:                500,
		TurnDurationSeconds:     30,
		BotAutoFillDelaySeconds: 10,
		BotMinThinkMillis:       600,
		BotMaxThinkMillis:       1800,
	}
	if cfg == nil {
		return c
	}
	if cfg.WinScore > 0 {
		c.WinScore = cfg.WinScore
	}
	if cfg.TurnDurationSeconds > 0 {
		c.TurnDurationSeconds = cfg.TurnDurationSeconds
	}
	if cfg.BotAutoFillDelaySeconds > 0 {
		c.BotAutoFillDelaySeconds = cfg.BotAutoFillDelaySeconds
	}
	if cfg.BotMinThinkMillis > 0 {
		c.BotMinThinkMillis = cfg.BotMinThinkMillis
	}
	if cfg.BotMaxThinkMillis >= c.BotMinThinkMillis {
		c.BotMaxThinkMillis = cfg.BotMaxThinkMillis
	}
	c.BotTuning = cfg.BotTuning
	return c
}
