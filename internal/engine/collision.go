package engine

import "github.com/vovakirdan/disc-dodge/internal/core"

// Collides reports whether two discs touch or overlap.
// The boundary is inclusive: centres exactly r1+r2 apart collide.
func Collides(a, b Entity) bool {
	return core.Dist(a.Position(), b.Position()) <= a.Radius()+b.Radius()
}
