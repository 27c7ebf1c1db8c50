package dodge

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/disc-dodge/internal/config"
	"github.com/vovakirdan/disc-dodge/internal/core"
	"github.com/vovakirdan/disc-dodge/internal/engine"
)

// Spawner injects a new obstacle and awards points on every timer tick.
// It runs independently of the frame rate and goes inert once the
// scheduler stops.
type Spawner struct {
	sched     *engine.Scheduler
	state     *GameState
	rng       *rand.Rand
	obstacles config.ObstacleConfig
	points    config.SpawnerConfig
	display   ScoreDisplay
	notify    Notifier
	logger    *log.Logger
	counter   int
}

// NewSpawner creates a spawner feeding sched and scoring into state.
func NewSpawner(sched *engine.Scheduler, state *GameState, rng *rand.Rand, cfg config.DodgeConfig, display ScoreDisplay, notify Notifier, logger *log.Logger) *Spawner {
	if display == nil {
		display = nopScoreDisplay
	}
	if notify == nil {
		notify = nopNotifier
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Spawner{
		sched:     sched,
		state:     state,
		rng:       rng,
		obstacles: cfg.Obstacles,
		points:    cfg.Spawner,
		display:   display,
		notify:    notify,
		logger:    logger,
	}
}

// Spawned returns how many obstacles this spawner has created.
func (s *Spawner) Spawned() int {
	return s.counter
}

// Tick spawns one obstacle and adds points. When the score reaches the
// threshold the user is told and the scheduler stops. Ticks after the
// scheduler has stopped change nothing.
func (s *Spawner) Tick() {
	if !s.sched.Active() {
		return
	}

	dir := Down
	if core.IntRand(s.rng, 0, 1) == 1 {
		dir = Up
	}

	y := s.obstacles.EntryBelow
	if dir == Up {
		y = s.obstacles.EntryAbove
	}

	s.counter++
	o := NewObstacle(
		fmt.Sprintf("obstacle-%d", s.counter),
		dir,
		float64(core.IntRand(s.rng, s.obstacles.MinX, s.obstacles.MaxX)),
		y,
		float64(core.IntRand(s.rng, s.obstacles.MinRadius, s.obstacles.MaxRadius)),
		s.obstacles,
	)
	if err := s.sched.Spawn(o); err != nil {
		s.logger.Error("spawn failed", "id", o.ID(), "error", err)
	} else {
		s.logger.Debug("spawned obstacle", "id", o.ID(), "dir", dir, "x", o.X, "radius", o.R)
	}

	score := s.state.Add(core.IntRand(s.rng, s.points.MinPoints, s.points.MaxPoints))
	s.display.SetScoreText(score)

	if s.state.Won() {
		s.notify.Notify(MsgVictory)
		s.sched.Stop()
	}
}
