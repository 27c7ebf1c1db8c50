// Package config provides YAML-based configuration loading for the dodge game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DodgeConfig contains every gameplay constant of a run.
type DodgeConfig struct {
	Surface   SurfaceConfig  `yaml:"surface"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Spawner   SpawnerConfig  `yaml:"spawner"`
	Gameplay  GameplayConfig `yaml:"gameplay"`
	Input     InputConfig    `yaml:"input"`
}

// SurfaceConfig defines the logical drawing area in pixels.
// The terminal canvas scales this area onto the available cells.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player disc.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Step   float64 `yaml:"step"`   // Distance moved per frame per held key
	Margin float64 `yaml:"margin"` // Inset from each edge where the wall pushes back
}

// ObstacleConfig defines obstacle discs and their lanes.
type ObstacleConfig struct {
	MinRadius  int     `yaml:"min_radius"`
	MaxRadius  int     `yaml:"max_radius"`
	Step       float64 `yaml:"step"`        // Vertical distance per frame
	MinX       int     `yaml:"min_x"`       // Spawn column range, inclusive
	MaxX       int     `yaml:"max_x"`
	EntryAbove float64 `yaml:"entry_above"` // Start y of obstacles drifting down
	EntryBelow float64 `yaml:"entry_below"` // Start y of obstacles drifting up
	CullTop    float64 `yaml:"cull_top"`    // Removed once y is below this
	CullBottom float64 `yaml:"cull_bottom"` // Removed once y is above this
}

// SpawnerConfig defines the obstacle timer and score accrual.
type SpawnerConfig struct {
	PeriodMS  int `yaml:"period_ms"`
	MinPoints int `yaml:"min_points"`
	MaxPoints int `yaml:"max_points"`
}

// Period returns the spawn interval.
func (s SpawnerConfig) Period() time.Duration {
	return time.Duration(s.PeriodMS) * time.Millisecond
}

// GameplayConfig defines win conditions.
type GameplayConfig struct {
	WinScore int `yaml:"win_score"`
}

// InputConfig defines key handling on terminals without key release events.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // A key counts as held this long after its last press
}

// Hold returns the key hold duration.
func (i InputConfig) Hold() time.Duration {
	return time.Duration(i.HoldMS) * time.Millisecond
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the configuration for values the game cannot run with.
func (c DodgeConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Surface.Width > 0 && c.Surface.Height > 0,
		"surface must have a positive size, got %gx%g", c.Surface.Width, c.Surface.Height)
	check(c.Player.Radius > 0, "player.radius must be positive, got %g", c.Player.Radius)
	check(c.Player.Step > 0, "player.step must be positive, got %g", c.Player.Step)
	check(c.Player.Margin >= 0, "player.margin must not be negative, got %g", c.Player.Margin)
	check(2*c.Player.Margin < c.Surface.Width && 2*c.Player.Margin < c.Surface.Height,
		"player.margin %g leaves no room on a %gx%g surface", c.Player.Margin, c.Surface.Width, c.Surface.Height)
	check(c.Obstacles.MinRadius > 0, "obstacles.min_radius must be positive, got %d", c.Obstacles.MinRadius)
	check(c.Obstacles.MinRadius <= c.Obstacles.MaxRadius,
		"obstacles.min_radius %d exceeds max_radius %d", c.Obstacles.MinRadius, c.Obstacles.MaxRadius)
	check(c.Obstacles.Step > 0, "obstacles.step must be positive, got %g", c.Obstacles.Step)
	check(c.Obstacles.MinX <= c.Obstacles.MaxX,
		"obstacles.min_x %d exceeds max_x %d", c.Obstacles.MinX, c.Obstacles.MaxX)
	check(c.Obstacles.CullTop < c.Obstacles.CullBottom,
		"obstacles.cull_top %g must be above cull_bottom %g", c.Obstacles.CullTop, c.Obstacles.CullBottom)
	check(c.Obstacles.EntryAbove >= c.Obstacles.CullTop && c.Obstacles.EntryBelow <= c.Obstacles.CullBottom,
		"obstacle entry rows must lie inside the cull band")
	check(c.Spawner.PeriodMS > 0, "spawner.period_ms must be positive, got %d", c.Spawner.PeriodMS)
	check(c.Spawner.MinPoints >= 0, "spawner.min_points must not be negative, got %d", c.Spawner.MinPoints)
	check(c.Spawner.MinPoints <= c.Spawner.MaxPoints,
		"spawner.min_points %d exceeds max_points %d", c.Spawner.MinPoints, c.Spawner.MaxPoints)
	check(c.Gameplay.WinScore > 0, "gameplay.win_score must be positive, got %d", c.Gameplay.WinScore)
	check(c.Input.HoldMS >= 0, "input.hold_ms must not be negative, got %d", c.Input.HoldMS)

	return errors.Join(errs...)
}
