// Package engine implements the entity loop: the capability set every game
// object provides, the circle collision predicate and the Scheduler that owns
// the live collection and drives update-then-render frames.
package engine

import "github.com/vovakirdan/disc-dodge/internal/core"

// Host is the narrow view of the scheduler an entity is given at spawn.
// It never exposes the live collection itself.
type Host interface {
	Kill(id string)
	Stop()
	Active() bool
}

// Entity is a live game object.
// Implementations embed Base, which supplies identity, geometry and the
// scheduler handle.
type Entity interface {
	ID() string
	Position() core.Point
	Radius() float64

	// Update advances the entity by one frame.
	Update()

	// Render draws the entity. The scheduler has already opened a shape
	// and saved the drawing state.
	Render(s Surface)

	// OnCollision is called once per colliding partner per frame.
	OnCollision(other Entity)

	attach(h Host) bool
}

// Base carries the state shared by every entity variant.
type Base struct {
	id   string
	X, Y float64
	R    float64
	host Host
}

// NewBase creates the shared entity state.
func NewBase(id string, x, y, radius float64) Base {
	return Base{id: id, X: x, Y: y, R: radius}
}

// ID returns the entity's identity.
func (b *Base) ID() string {
	return b.id
}

// Position returns the entity's centre.
func (b *Base) Position() core.Point {
	return core.Pt(b.X, b.Y)
}

// Radius returns the entity's collision radius.
func (b *Base) Radius() float64 {
	return b.R
}

// OnCollision is a no-op by default.
func (b *Base) OnCollision(Entity) {}

// Host returns the scheduler handle, or nil before spawn.
func (b *Base) Host() Host {
	return b.host
}

// Kill asks the scheduler to remove this entity.
// Calling it before spawn or after removal does nothing.
func (b *Base) Kill() {
	if b.host != nil {
		b.host.Kill(b.id)
	}
}

// attach sets the scheduler handle. It succeeds only once.
func (b *Base) attach(h Host) bool {
	if b.host != nil {
		return false
	}
	b.host = h
	return true
}
