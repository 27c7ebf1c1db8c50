package dodge

import (
	"github.com/vovakirdan/disc-dodge/internal/config"
	"github.com/vovakirdan/disc-dodge/internal/core"
	"github.com/vovakirdan/disc-dodge/internal/engine"
)

// PlayerID is the fixed identity of the player disc.
const PlayerID = "player"

// Movement key names read from the key set.
const (
	KeyLeft  = "a"
	KeyRight = "d"
	KeyUp    = "w"
	KeyDown  = "s"
)

// PlayerColor is the fill of the player disc.
const PlayerColor = core.ColorBrightWhite

// Player is the user-controlled disc.
type Player struct {
	engine.Base
	keys    core.KeySet
	cfg     config.PlayerConfig
	surface config.SurfaceConfig
	notify  Notifier
	hit     bool
}

// NewPlayer creates the player at (x, y). keys is read every frame and owned
// by the caller.
func NewPlayer(x, y float64, keys core.KeySet, cfg config.PlayerConfig, surface config.SurfaceConfig, notify Notifier) *Player {
	if notify == nil {
		notify = nopNotifier
	}
	return &Player{
		Base:    engine.NewBase(PlayerID, x, y, cfg.Radius),
		keys:    keys,
		cfg:     cfg,
		surface: surface,
		notify:  notify,
	}
}

// Hit reports whether the player has collided this run.
func (p *Player) Hit() bool {
	return p.hit
}

// Update pushes the player back from the walls and applies held keys.
// Both happen every frame, so holding a key into a wall stalls there.
func (p *Player) Update() {
	step := p.cfg.Step
	margin := p.cfg.Margin

	if p.X <= margin {
		p.X += step
	}
	if p.Y >= p.surface.Height-margin {
		p.Y -= step
	}
	if p.X >= p.surface.Width-margin {
		p.X -= step
	}
	if p.Y <= margin {
		p.Y += step
	}

	if p.keys.Pressed(KeyLeft) {
		p.X -= step
	}
	if p.keys.Pressed(KeyRight) {
		p.X += step
	}
	if p.keys.Pressed(KeyUp) {
		p.Y -= step
	}
	if p.keys.Pressed(KeyDown) {
		p.Y += step
	}
}

// Render draws the player disc.
func (p *Player) Render(s engine.Surface) {
	s.SetFillColor(PlayerColor)
	s.DrawCircle(p.X, p.Y, p.R)
	s.Fill()
}

// OnCollision ends the run: the user is told, the player leaves the field
// and the scheduler stops. Only the first contact reacts.
func (p *Player) OnCollision(engine.Entity) {
	if p.hit {
		return
	}
	p.hit = true

	p.notify.Notify(MsgGameOver)
	p.Kill()
	if h := p.Host(); h != nil {
		h.Stop()
	}
}
