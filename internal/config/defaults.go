package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// DefaultBricksConfig returns the default brick breaker tuning. Kept in sync
// with defaults/bricks.yaml as the fallback of last resort.
func DefaultBricksConfig() BricksConfig {
	return BricksConfig{
		Paddle: BricksPaddle{
			Width:    48,
			Height:   6,
			Y:        222,
			Accel:    0.8,
			Friction: 0.85,
			MaxSpeed: 6.0,
		},
		Ball: BricksBall{
			Size:        6,
			ServeSpeedX: 2.0,
			MaxSpeedX:   4.0,
			English:     0.6,
			LaunchBase:  2.8,
			LaunchRamp:  0.05,
			LaunchCap:   96,
		},
		Bricks: BricksField{
			Width:  38,
			Height: 10,
			Left:   1,
			Gap:    2,
			Top:    30,
			RowGap: 2,
		},
		Frame: BricksFrame{
			TickRate: 60,
		},
	}
}
