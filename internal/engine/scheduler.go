package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when spawning an id that is already live.
	ErrDuplicateID = errors.New("engine: duplicate entity id")

	// ErrAlreadySpawned is returned when an entity is spawned a second time.
	ErrAlreadySpawned = errors.New("engine: entity already spawned")
)

// Scheduler owns the live entity collection and the active flag, and runs
// frames of collide, update and render.
//
// It is not safe for concurrent use; the host serialises all calls.
type Scheduler struct {
	entities map[string]Entity
	order    []string // insertion order, used for deterministic iteration
	active   bool
	surface  Surface
	width    float64
	height   float64
	frames   int
}

// NewScheduler creates an active scheduler drawing into surface, whose
// logical size is width x height.
func NewScheduler(surface Surface, width, height float64) *Scheduler {
	return &Scheduler{
		entities: make(map[string]Entity),
		order:    make([]string, 0, 16),
		active:   true,
		surface:  surface,
		width:    width,
		height:   height,
	}
}

// Spawn registers e into the live collection and hands it the scheduler.
func (s *Scheduler) Spawn(e Entity) error {
	id := e.ID()
	if _, exists := s.entities[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	if !e.attach(s) {
		return fmt.Errorf("%w: %q", ErrAlreadySpawned, id)
	}

	s.entities[id] = e
	s.order = append(s.order, id)
	return nil
}

// Kill removes the entity with the given id. Unknown ids are ignored.
func (s *Scheduler) Kill(id string) {
	if _, ok := s.entities[id]; !ok {
		return
	}
	delete(s.entities, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Active reports whether the loop is still running.
func (s *Scheduler) Active() bool {
	return s.active
}

// Stop ends the run. It cannot be undone.
func (s *Scheduler) Stop() {
	s.active = false
}

// Has reports whether an entity with the id is live.
func (s *Scheduler) Has(id string) bool {
	_, ok := s.entities[id]
	return ok
}

// Get returns the live entity with the id.
func (s *Scheduler) Get(id string) (Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Len returns the number of live entities.
func (s *Scheduler) Len() int {
	return len(s.order)
}

// Frames returns how many update passes have run.
func (s *Scheduler) Frames() int {
	return s.frames
}

// Size returns the logical surface size.
func (s *Scheduler) Size() (width, height float64) {
	return s.width, s.height
}

// Entities returns a snapshot of the live collection in spawn order.
// Mutating the collection afterwards does not affect the snapshot.
func (s *Scheduler) Entities() []Entity {
	out := make([]Entity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entities[id])
	}
	return out
}

// Update runs the collision pass and then updates every entity.
// Both passes work on the set that was live when the frame started, so
// entities removing themselves mid-frame never cause another entity to be
// skipped or visited twice.
func (s *Scheduler) Update() {
	snapshot := s.Entities()

	for i, a := range snapshot {
		for _, b := range snapshot[i+1:] {
			if a.ID() == b.ID() {
				continue
			}
			if Collides(a, b) {
				a.OnCollision(b)
				b.OnCollision(a)
			}
		}
	}

	for _, e := range snapshot {
		e.Update()
	}
	s.frames++
}

// Render clears the surface and draws every live entity.
func (s *Scheduler) Render() {
	if s.surface == nil {
		return
	}
	s.surface.ClearRegion(s.width, s.height)

	for _, e := range s.Entities() {
		s.surface.BeginShape()
		s.surface.SaveState()
		e.Render(s.surface)
		s.surface.EndShape()
		s.surface.RestoreState()
	}
}

// Frame runs one update-then-render tick and reports whether another frame
// should be scheduled. A stopped scheduler does nothing.
func (s *Scheduler) Frame() bool {
	if !s.active {
		return false
	}
	s.Update()
	s.Render()
	return s.active
}
