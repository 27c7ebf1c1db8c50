package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Surface: SurfaceConfig{
			Width:  1536,
			Height: 754,
		},
		Player: PlayerConfig{
			Radius: 20,
			Step:   5,
			Margin: 20,
		},
		Obstacles: ObstacleConfig{
			MinRadius:  20,
			MaxRadius:  50,
			Step:       10,
			MinX:       0,
			MaxX:       1300,
			EntryAbove: -100,
			EntryBelow: 850,
			CullTop:    -150,
			CullBottom: 900,
		},
		Spawner: SpawnerConfig{
			PeriodMS:  500,
			MinPoints: 10,
			MaxPoints: 30,
		},
		Gameplay: GameplayConfig{
			WinScore: 1000,
		},
		Input: InputConfig{
			HoldMS: 200,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
