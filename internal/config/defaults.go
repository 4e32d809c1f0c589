package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration.
// It mirrors defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:  120,
			Height: 15,
		},
		Ball: BallConfig{
			Radius:    10,
			SpeedX:    5,
			SpeedY:    -5,
			SpawnGap:  5,
			AnchorGap: 1,
		},
		Bricks: BricksConfig{
			Columns:    9,
			Rows:       5,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  40,
			OffsetLeft: 30,
			Points:     10,
			Colors:     []string{"#FF3366", "#FF9933", "#FFFF33", "#33FF66", "#3399FF"},
		},
		PowerUps: PowerUpsConfig{
			SpawnChance:  0.2,
			Size:         25,
			FallSpeed:    2,
			WideFactor:   2,
			WideDuration: 10,
		},
		Physics: PhysicsConfig{
			Steering: 0.35,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}
