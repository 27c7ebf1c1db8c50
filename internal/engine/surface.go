package engine

import "github.com/vovakirdan/disc-dodge/internal/core"

// Surface is the 2D drawing capability the scheduler renders into.
// Its call pattern mirrors an immediate-mode canvas: a shape is opened,
// circles are added to it, and Fill paints them with the current colour.
// SaveState/RestoreState bracket per-entity style changes.
type Surface interface {
	ClearRegion(width, height float64)
	BeginShape()
	SaveState()
	SetFillColor(c core.Color)
	DrawCircle(x, y, r float64)
	Fill()
	RestoreState()
	EndShape()
}
