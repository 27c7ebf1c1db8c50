// Package dodge implements the disc dodging game: a player disc avoids
// obstacle discs that drift across the surface while the score climbs.
package dodge

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/disc-dodge/internal/config"
	"github.com/vovakirdan/disc-dodge/internal/core"
	"github.com/vovakirdan/disc-dodge/internal/engine"
)

// Outcome is the state of a run.
type Outcome int

const (
	Running Outcome = iota
	Lost
	Won
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Options wires a run to its collaborators. Every field is optional.
type Options struct {
	Seed     int64          // 0 means seed from the clock
	Keys     core.KeySet    // Live key state read by the player
	Surface  engine.Surface // Drawing target; nil renders nothing
	Notifier Notifier
	Score    ScoreDisplay
	Logger   *log.Logger
}

// Game is one run: the scheduler with its player, the spawner and the score.
type Game struct {
	cfg     config.DodgeConfig
	sched   *engine.Scheduler
	spawner *Spawner
	state   *GameState
	player  *Player
	runID   string
	logger  *log.Logger
	ended   bool
}

// New creates a run with the player at the centre of the surface.
func New(cfg config.DodgeConfig, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	keys := opts.Keys
	if keys == nil {
		keys = core.NewKeySet()
	}
	score := opts.Score
	if score == nil {
		score = nopScoreDisplay
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}

	runID := uuid.NewString()
	logger = logger.With("run", runID)

	g := &Game{
		cfg:    cfg,
		sched:  engine.NewScheduler(opts.Surface, cfg.Surface.Width, cfg.Surface.Height),
		state:  NewGameState(cfg.Gameplay.WinScore),
		runID:  runID,
		logger: logger,
	}
	g.player = NewPlayer(cfg.Surface.Width/2, cfg.Surface.Height/2, keys, cfg.Player, cfg.Surface, opts.Notifier)
	g.spawner = NewSpawner(g.sched, g.state, rand.New(rand.NewSource(seed)), cfg, score, opts.Notifier, logger)

	if err := g.sched.Spawn(g.player); err != nil {
		return nil, err
	}
	score.SetScoreText(g.state.Score())

	logger.Info("run started", "seed", seed, "win_score", cfg.Gameplay.WinScore)
	return g, nil
}

// RunID returns the unique id of this run.
func (g *Game) RunID() string {
	return g.runID
}

// Config returns the configuration of this run.
func (g *Game) Config() config.DodgeConfig {
	return g.cfg
}

// Scheduler returns the loop driving this run.
func (g *Game) Scheduler() *engine.Scheduler {
	return g.sched
}

// Player returns the player disc.
func (g *Game) Player() *Player {
	return g.player
}

// Spawner returns the obstacle spawner.
func (g *Game) Spawner() *Spawner {
	return g.spawner
}

// Frame runs one update-then-render tick and reports whether another frame
// should be scheduled.
func (g *Game) Frame() bool {
	more := g.sched.Frame()
	g.checkEnd()
	return more
}

// SpawnTick runs one firing of the spawn timer.
func (g *Game) SpawnTick() {
	g.spawner.Tick()
	g.checkEnd()
}

// Active reports whether the run is still in progress.
func (g *Game) Active() bool {
	return g.sched.Active()
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score()
}

// Outcome reports how the run stands.
func (g *Game) Outcome() Outcome {
	switch {
	case g.sched.Active():
		return Running
	case g.player.Hit():
		return Lost
	case g.state.Won():
		return Won
	default:
		return Lost
	}
}

// checkEnd logs the end of the run once.
func (g *Game) checkEnd() {
	if g.ended || g.sched.Active() {
		return
	}
	g.ended = true
	g.logger.Info("run ended",
		"outcome", g.Outcome(),
		"score", g.state.Score(),
		"frames", g.sched.Frames(),
		"obstacles", g.spawner.Spawned(),
	)
}

// discardLogger returns a logger that writes nowhere.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
