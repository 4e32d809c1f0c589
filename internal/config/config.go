// Package config provides YAML-based game configuration loading for brickbreaker.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// BreakoutConfig contains all tunable parameters of the simulation.
// Dimensions are play-field pixels, speeds are pixels per tick.
type BreakoutConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BricksConfig   `yaml:"bricks"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// FieldConfig defines the play-field size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the paddle geometry.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball size and launch velocity.
type BallConfig struct {
	Radius    float64 `yaml:"radius"`
	SpeedX    float64 `yaml:"speed_x"`
	SpeedY    float64 `yaml:"speed_y"`
	SpawnGap  float64 `yaml:"spawn_gap"`  // Gap above the paddle for a freshly spawned ball
	AnchorGap float64 `yaml:"anchor_gap"` // Gap above the paddle while a ball rides it
}

// BricksConfig defines the brick grid geometry.
type BricksConfig struct {
	Columns    int      `yaml:"columns"`
	Rows       int      `yaml:"rows"`
	Width      float64  `yaml:"width"`
	Height     float64  `yaml:"height"`
	Padding    float64  `yaml:"padding"`
	OffsetTop  float64  `yaml:"offset_top"`
	OffsetLeft float64  `yaml:"offset_left"`
	Points     int      `yaml:"points"`
	Colors     []string `yaml:"colors"` // One per row, cycled
}

// PowerUpsConfig defines power-up spawning and effects.
type PowerUpsConfig struct {
	SpawnChance  float64 `yaml:"spawn_chance"`  // Probability per destroyed brick, 0..1
	Size         float64 `yaml:"size"`          // Side of the falling square
	FallSpeed    float64 `yaml:"fall_speed"`    // Pixels per tick
	WideFactor   float64 `yaml:"wide_factor"`   // Paddle width multiplier
	WideDuration float64 `yaml:"wide_duration"` // Seconds until the paddle reverts
}

// PhysicsConfig defines collision response parameters.
type PhysicsConfig struct {
	Steering float64 `yaml:"steering"` // Horizontal speed per pixel of paddle-hit offset
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// BrickColors parses the configured row colors.
func (c BreakoutConfig) BrickColors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(c.Bricks.Colors))
	for _, s := range c.Bricks.Colors {
		col, err := core.ParseHex(s)
		if err != nil {
			return nil, err
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// Validate reports every problem that makes the config unplayable, joined
// into one error.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle width %v exceeds field width %v", c.Paddle.Width, c.Field.Width))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %v", c.Ball.Radius))
	}
	if c.Bricks.Columns <= 0 || c.Bricks.Rows <= 0 {
		errs = append(errs, fmt.Errorf("brick grid must be at least 1x1, got %dx%d", c.Bricks.Columns, c.Bricks.Rows))
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		errs = append(errs, fmt.Errorf("brick size must be positive, got %vx%v", c.Bricks.Width, c.Bricks.Height))
	}
	gridRight := c.Bricks.OffsetLeft + float64(c.Bricks.Columns)*(c.Bricks.Width+c.Bricks.Padding) - c.Bricks.Padding
	if gridRight > c.Field.Width {
		errs = append(errs, fmt.Errorf("brick grid (right edge %v) does not fit field width %v", gridRight, c.Field.Width))
	}
	if len(c.Bricks.Colors) == 0 {
		errs = append(errs, errors.New("at least one brick color is required"))
	} else if _, err := c.BrickColors(); err != nil {
		errs = append(errs, err)
	}
	if c.PowerUps.SpawnChance < 0 || c.PowerUps.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("powerups.spawn_chance must be within [0, 1], got %v", c.PowerUps.SpawnChance))
	}
	if c.PowerUps.Size <= 0 || c.PowerUps.FallSpeed <= 0 {
		errs = append(errs, errors.New("powerups.size and powerups.fall_speed must be positive"))
	}
	if c.PowerUps.WideFactor < 1 {
		errs = append(errs, fmt.Errorf("powerups.wide_factor must be >= 1, got %v", c.PowerUps.WideFactor))
	}
	if wide := c.Paddle.Width * c.PowerUps.WideFactor; wide > c.Field.Width {
		errs = append(errs, fmt.Errorf("wide paddle width %v exceeds field width %v", wide, c.Field.Width))
	}
	if c.PowerUps.WideDuration <= 0 {
		errs = append(errs, fmt.Errorf("powerups.wide_duration must be positive, got %v", c.PowerUps.WideDuration))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}
