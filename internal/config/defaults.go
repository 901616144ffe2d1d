package config

import (
	_ "embed"
)

//go:embed defaults/pixelquest.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			DBPath: "~/.pixelquest/pixelquest.db",
			Slot:   "default",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.pixelquest/pixelquest.log",
		},
		Game: GameConfig{
			AverageQuestXP:      37.5,
			LevelMultiplierStep: 0.1,
			Difficulties: map[string]int{
				"easy":   25,
				"medium": 50,
				"hard":   100,
			},
		},
	}
}
