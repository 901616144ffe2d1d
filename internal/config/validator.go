package config

import (
	"fmt"
	"strings"

	apperrors "github.com/vovakirdan/pixelquest/internal/errors"
	"github.com/vovakirdan/pixelquest/internal/progression"
	"github.com/vovakirdan/pixelquest/internal/quest"
)

// Validator checks a configuration before the engine starts.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns an error describing the first problem found.
func (v *Validator) Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Storage.Slot) == "" {
		return apperrors.ErrConfigInvalid("storage.slot must not be empty")
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "error", "fatal":
	default:
		return apperrors.ErrConfigInvalid(fmt.Sprintf("log.level %q is not a known level", cfg.Log.Level))
	}

	if cfg.Game.AverageQuestXP <= 0 {
		return apperrors.ErrConfigInvalid("game.average_quest_xp must be positive")
	}
	if cfg.Game.LevelMultiplierStep < 0 {
		return apperrors.ErrConfigInvalid("game.level_multiplier_step must not be negative")
	}

	for name, xp := range cfg.Game.Difficulties {
		d, err := quest.ParseDifficulty(name)
		if err != nil || name == "" {
			return apperrors.ErrConfigInvalid(fmt.Sprintf("game.difficulties: unknown difficulty %q", name))
		}
		if xp <= 0 {
			return apperrors.ErrConfigInvalid(fmt.Sprintf("game.difficulties.%s must be positive", d))
		}
	}

	if len(cfg.Game.Levels) > 0 {
		if err := progression.ValidateLevels(cfg.Game.LevelTable()); err != nil {
			return apperrors.ErrConfigInvalid(fmt.Sprintf("game.levels: %v", err))
		}
	}
	return nil
}
