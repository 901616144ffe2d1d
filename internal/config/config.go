// Package config provides YAML-based configuration loading for pixelquest.
package config

import (
	"github.com/vovakirdan/pixelquest/internal/progression"
	"github.com/vovakirdan/pixelquest/internal/quest"
)

// Config contains all pixelquest settings.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Game    GameConfig    `yaml:"game"`
}

// StorageConfig defines where progress is saved.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
	Slot   string `yaml:"slot"`
}

// LogConfig defines logging behaviour.
type LogConfig struct {
	Level string `yaml:"level"`
	// File receives logs while the board is running. Empty disables them.
	File string `yaml:"file"`
}

// GameConfig tunes progression.
type GameConfig struct {
	AverageQuestXP      float64        `yaml:"average_quest_xp"`
	LevelMultiplierStep float64        `yaml:"level_multiplier_step"`
	Difficulties        map[string]int `yaml:"difficulties"`
	Levels              []LevelConfig  `yaml:"levels,omitempty"`
	CatalogPath         string         `yaml:"catalog_path,omitempty"`
}

// LevelConfig overrides one row of the level table.
type LevelConfig struct {
	Level            int    `yaml:"level"`
	QuestsPerArtwork int    `yaml:"quests_per_artwork"`
	ArtworksNeeded   int    `yaml:"artworks_needed"`
	Title            string `yaml:"title"`
	Description      string `yaml:"description,omitempty"`
}

// Rewards converts the difficulty table to quest rewards. Unknown names are
// ignored.
func (g GameConfig) Rewards() quest.Rewards {
	r := quest.DefaultRewards()
	for name, xp := range g.Difficulties {
		d, err := quest.ParseDifficulty(name)
		if err != nil || name == "" {
			continue
		}
		r[d] = xp
	}
	return r
}

// CurveParams returns the experience curve parameters.
func (g GameConfig) CurveParams() progression.Params {
	return progression.Params{
		AverageQuestXP: g.AverageQuestXP,
		MultiplierStep: g.LevelMultiplierStep,
	}
}

// LevelTable returns the configured levels, or the built-in table when none
// are set.
func (g GameConfig) LevelTable() []progression.Level {
	if len(g.Levels) == 0 {
		return progression.DefaultLevels()
	}
	levels := make([]progression.Level, len(g.Levels))
	for i, l := range g.Levels {
		levels[i] = progression.Level{
			Number:           l.Level,
			QuestsPerArtwork: l.QuestsPerArtwork,
			ArtworksNeeded:   l.ArtworksNeeded,
			Title:            l.Title,
			Description:      l.Description,
		}
	}
	return levels
}

// Curve builds the experience curve described by g.
func (g GameConfig) Curve() (*progression.Curve, error) {
	return progression.NewCurve(g.LevelTable(), g.CurveParams())
}
