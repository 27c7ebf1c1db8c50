package dodge

import (
	"github.com/vovakirdan/disc-dodge/internal/config"
	"github.com/vovakirdan/disc-dodge/internal/core"
	"github.com/vovakirdan/disc-dodge/internal/engine"
)

// Direction tags an obstacle's lane.
//
// The names describe where the obstacle enters, not where it goes: Up
// obstacles start above the surface and drift toward increasing y, Down
// obstacles start below it and drift toward decreasing y.
type Direction int

const (
	Up Direction = iota
	Down
)

// String returns the tag name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// ObstacleColor is the fill of obstacle discs.
const ObstacleColor = core.ColorGreen

// Obstacle is a disc drifting vertically across the surface.
type Obstacle struct {
	engine.Base
	dir Direction
	cfg config.ObstacleConfig
}

// NewObstacle creates an obstacle.
func NewObstacle(id string, dir Direction, x, y, radius float64, cfg config.ObstacleConfig) *Obstacle {
	return &Obstacle{
		Base: engine.NewBase(id, x, y, radius),
		dir:  dir,
		cfg:  cfg,
	}
}

// Direction returns the lane tag.
func (o *Obstacle) Direction() Direction {
	return o.dir
}

// Update drifts the obstacle, removing it once it is well past the surface.
func (o *Obstacle) Update() {
	if o.Y > o.cfg.CullBottom || o.Y < o.cfg.CullTop {
		o.Kill()
		return
	}

	if o.dir == Up {
		o.Y += o.cfg.Step
	} else {
		o.Y -= o.cfg.Step
	}
}

// Render draws the obstacle disc.
func (o *Obstacle) Render(s engine.Surface) {
	s.SetFillColor(ObstacleColor)
	s.DrawCircle(o.X, o.Y, o.R)
	s.Fill()
}
