package tui

import (
	"math"

	"github.com/vovakirdan/disc-dodge/internal/core"
)

// DiscRune is the character filled discs are drawn with.
const DiscRune = '█'

// circle is one disc added to the current shape.
type circle struct {
	x, y, r float64
}

// Canvas is an engine.Surface that rasterises discs into a Screen.
// Logical coordinates are scaled independently on each axis so the whole
// logical surface fits the terminal.
type Canvas struct {
	screen   *core.Screen
	logicalW float64
	logicalH float64
	scaleX   float64 // cells per logical unit, horizontally
	scaleY   float64 // cells per logical unit, vertically

	fill  core.Color
	saved []core.Color
	path  []circle
}

// NewCanvas creates a canvas drawing the logicalW x logicalH surface into screen.
func NewCanvas(screen *core.Screen, logicalW, logicalH float64) *Canvas {
	c := &Canvas{
		screen:   screen,
		logicalW: logicalW,
		logicalH: logicalH,
		fill:     core.ColorBlack,
		path:     make([]circle, 0, 4),
	}
	c.Resize()
	return c
}

// Resize recomputes the scale after the screen changed size.
func (c *Canvas) Resize() {
	c.scaleX = float64(c.screen.Width()) / c.logicalW
	c.scaleY = float64(c.screen.Height()) / c.logicalH
}

// Screen returns the target buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// ClearRegion blanks the cells covering the logical rectangle (0,0)-(w,h).
func (c *Canvas) ClearRegion(w, h float64) {
	cols := core.Clamp(int(math.Ceil(w*c.scaleX)), 0, c.screen.Width())
	rows := core.Clamp(int(math.Ceil(h*c.scaleY)), 0, c.screen.Height())
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.screen.Set(x, y, ' ', core.ColorDefault)
		}
	}
}

// BeginShape starts a new, empty shape.
func (c *Canvas) BeginShape() {
	c.path = c.path[:0]
}

// SaveState pushes the current fill colour.
func (c *Canvas) SaveState() {
	c.saved = append(c.saved, c.fill)
}

// SetFillColor sets the colour used by Fill.
func (c *Canvas) SetFillColor(col core.Color) {
	c.fill = col
}

// FillColor returns the current fill colour.
func (c *Canvas) FillColor() core.Color {
	return c.fill
}

// DrawCircle adds a disc to the current shape.
func (c *Canvas) DrawCircle(x, y, r float64) {
	c.path = append(c.path, circle{x: x, y: y, r: r})
}

// Fill paints every disc of the current shape.
func (c *Canvas) Fill() {
	for _, d := range c.path {
		c.fillCircle(d)
	}
}

// RestoreState pops the fill colour saved by the matching SaveState.
// An unmatched call does nothing.
func (c *Canvas) RestoreState() {
	if len(c.saved) == 0 {
		return
	}
	c.fill = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

// EndShape closes the current shape.
func (c *Canvas) EndShape() {
	c.path = c.path[:0]
}

// fillCircle sets every cell whose centre lies inside the disc. Discs
// smaller than a cell still mark the cell holding their centre.
func (c *Canvas) fillCircle(d circle) {
	if c.scaleX <= 0 || c.scaleY <= 0 {
		return
	}

	minCol := int(math.Floor((d.x - d.r) * c.scaleX))
	maxCol := int(math.Ceil((d.x + d.r) * c.scaleX))
	minRow := int(math.Floor((d.y - d.r) * c.scaleY))
	maxRow := int(math.Ceil((d.y + d.r) * c.scaleY))

	minCol = core.Clamp(minCol, 0, c.screen.Width()-1)
	maxCol = core.Clamp(maxCol, 0, c.screen.Width()-1)
	minRow = core.Clamp(minRow, 0, c.screen.Height()-1)
	maxRow = core.Clamp(maxRow, 0, c.screen.Height()-1)

	centre := core.Pt(d.x, d.y)
	painted := false
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cell := core.Pt((float64(col)+0.5)/c.scaleX, (float64(row)+0.5)/c.scaleY)
			if core.Dist(cell, centre) <= d.r {
				c.screen.Set(col, row, DiscRune, c.fill)
				painted = true
			}
		}
	}

	if !painted {
		// Set ignores centres that are off screen
		c.screen.Set(int(math.Floor(d.x*c.scaleX)), int(math.Floor(d.y*c.scaleY)), DiscRune, c.fill)
	}
}
