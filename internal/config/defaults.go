package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default Javi Run configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Theme: Theme{
			Primary:    "#0d47a1",
			Accent:     "#1976d2",
			Background: "#ffffff",
		},
		Sprites: Sprites{
			Character:  "assets/character.png",
			Obstacle:   "assets/obstacle.png",
			Background: "assets/bg.png",
		},
		Gameplay: Gameplay{
			Gravity:       1800,
			JumpVelocity:  -700,
			GroundOffset:  100,
			Speed:         420,
			SpawnInterval: Range{Min: 0.9, Max: 1.5},
			ObstacleSize:  Range{Min: 48, Max: 96},
			SpawnRoll:     SpawnRollPerSpawn,
		},
		Player: Player{
			X:           120,
			Width:       56,
			Height:      64,
			HitboxInset: 6,
		},
		Viewport: Viewport{
			Width:         960,
			Height:        540,
			SpawnMargin:   40,
			DespawnMargin: 100,
		},
		Clock: Clock{
			MaxStep: 1.0 / 30.0,
		},
	}
}

// DefaultYAML returns the embedded default document.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
