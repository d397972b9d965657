// Package config provides YAML-based tuning for the arcade games, loaded
// with the same search order for every game: explicit path, user config
// directory, local configs directory, embedded default.
package config

import "fmt"

// BricksConfig contains all tuning for the brick breaker.
// The playfield shape itself (two rows of eight bricks on a 320x240 grid)
// is fixed in the game; this file carries geometry and physics numbers only.
type BricksConfig struct {
	Paddle BricksPaddle `yaml:"paddle"`
	Ball   BricksBall   `yaml:"ball"`
	Bricks BricksField  `yaml:"bricks"`
	Frame  BricksFrame  `yaml:"frame"`
}

// BricksPaddle defines paddle geometry and handling.
type BricksPaddle struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Y        int     `yaml:"y"`         // Fixed vertical position (top edge)
	Accel    float64 `yaml:"accel"`     // Per-frame acceleration while held
	Friction float64 `yaml:"friction"`  // Per-frame velocity decay when idle
	MaxSpeed float64 `yaml:"max_speed"` // Velocity clamp, px per frame
}

// BricksBall defines ball geometry and serve/bounce speeds.
type BricksBall struct {
	Size        int     `yaml:"size"`
	ServeSpeedX float64 `yaml:"serve_speed_x"` // Horizontal magnitude at launch
	MaxSpeedX   float64 `yaml:"max_speed_x"`   // |vx| clamp, px per frame
	English     float64 `yaml:"english"`       // vx nudge on a steered paddle hit
	LaunchBase  float64 `yaml:"launch_base"`   // |vy| at launch with score 0
	LaunchRamp  float64 `yaml:"launch_ramp"`   // |vy| added per point of score
	LaunchCap   int     `yaml:"launch_cap"`    // Score beyond which the ramp stops
}

// BricksField defines the brick grid geometry. Row count and bricks per row
// are fixed by the game; only pixel placement is tunable.
type BricksField struct {
	Width  int `yaml:"width"`   // Brick width in px
	Height int `yaml:"height"`  // Brick height in px
	Left   int `yaml:"left"`    // X of the first column
	Gap    int `yaml:"gap"`     // Horizontal gap between bricks
	Top    int `yaml:"top"`     // Y of row 0
	RowGap int `yaml:"row_gap"` // Vertical gap between the two rows
}

// BricksFrame defines loop pacing.
type BricksFrame struct {
	TickRate int `yaml:"tick_rate"`
}

// Validate reports the first implausible tuning value, if any.
func (c BricksConfig) Validate() error {
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return fmt.Errorf("config: paddle dimensions must be positive")
	}
	if c.Paddle.Friction <= 0 || c.Paddle.Friction >= 1 {
		return fmt.Errorf("config: paddle friction must be in (0, 1), got %v", c.Paddle.Friction)
	}
	if c.Ball.Size <= 0 {
		return fmt.Errorf("config: ball size must be positive")
	}
	if c.Ball.MaxSpeedX <= 0 {
		return fmt.Errorf("config: ball max_speed_x must be positive")
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		return fmt.Errorf("config: brick dimensions must be positive")
	}
	if c.Frame.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive")
	}
	return nil
}
