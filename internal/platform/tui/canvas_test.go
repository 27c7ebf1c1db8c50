package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/disc-dodge/internal/core"
)

func TestCanvasFillsDisc(t *testing.T) {
	screen := core.NewScreen(100, 50)
	c := NewCanvas(screen, 100, 50)

	c.BeginShape()
	c.SetFillColor(core.ColorGreen)
	c.DrawCircle(50, 25, 5)
	c.Fill()
	c.EndShape()

	if cell := screen.GetCell(50, 25); cell.Rune != DiscRune || cell.Color != core.ColorGreen {
		t.Errorf("centre cell = %+v, expected green disc", cell)
	}
	if screen.Get(53, 25) != DiscRune {
		t.Error("cell inside the radius should be filled")
	}
	if screen.Get(57, 25) != ' ' {
		t.Error("cell outside the radius should stay blank")
	}
	if screen.Get(50, 35) != ' ' {
		t.Error("cell below the disc should stay blank")
	}
}

func TestCanvasScalesLogicalSurface(t *testing.T) {
	screen := core.NewScreen(80, 20)
	c := NewCanvas(screen, 1600, 800) // 20 units per column, 40 per row

	c.BeginShape()
	c.DrawCircle(810, 420, 50)
	c.Fill()

	// (810, 420) falls in column 40, row 10
	if screen.Get(40, 10) != DiscRune {
		t.Errorf("scaled centre should be filled:\n%s", screen.String())
	}
	if screen.Get(10, 10) != ' ' || screen.Get(40, 2) != ' ' {
		t.Error("cells far from the disc should stay blank")
	}
}

func TestCanvasTinyDiscMarksCentre(t *testing.T) {
	screen := core.NewScreen(10, 10)
	c := NewCanvas(screen, 1000, 1000)

	c.BeginShape()
	c.DrawCircle(555, 555, 1)
	c.Fill()

	if screen.Get(5, 5) != DiscRune {
		t.Error("a disc smaller than a cell should still mark its centre cell")
	}
}

func TestCanvasSaveRestore(t *testing.T) {
	screen := core.NewScreen(20, 10)
	c := NewCanvas(screen, 20, 10)
	c.SetFillColor(core.ColorRed)

	c.SaveState()
	c.SetFillColor(core.ColorGreen)
	if c.FillColor() != core.ColorGreen {
		t.Fatal("SetFillColor should change the fill")
	}
	c.RestoreState()

	if c.FillColor() != core.ColorRed {
		t.Errorf("RestoreState should bring back red, got %v", c.FillColor())
	}

	// Unbalanced restore is harmless
	c.RestoreState()
	if c.FillColor() != core.ColorRed {
		t.Error("unmatched RestoreState should not change the fill")
	}
}

func TestCanvasShapesAreIndependent(t *testing.T) {
	screen := core.NewScreen(20, 10)
	c := NewCanvas(screen, 20, 10)

	c.BeginShape()
	c.SetFillColor(core.ColorGreen)
	c.DrawCircle(3, 3, 1)
	c.Fill()
	c.EndShape()

	c.BeginShape()
	c.SetFillColor(core.ColorRed)
	c.DrawCircle(15, 5, 1)
	c.Fill()
	c.EndShape()

	if screen.GetCell(3, 3).Color != core.ColorGreen {
		t.Error("the first shape should not be repainted by the second fill")
	}
	if screen.GetCell(15, 5).Color != core.ColorRed {
		t.Error("the second shape should be red")
	}
}

func TestCanvasClearRegion(t *testing.T) {
	screen := core.NewScreen(10, 10)
	c := NewCanvas(screen, 100, 100)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			screen.Set(x, y, 'X', core.ColorRed)
		}
	}

	c.ClearRegion(50, 100)

	if screen.Get(4, 9) != ' ' {
		t.Error("cells inside the region should be cleared")
	}
	if screen.Get(5, 0) != 'X' {
		t.Error("cells outside the region should be kept")
	}
}

func TestHeldKeysExpire(t *testing.T) {
	keys := core.NewKeySet()
	h := NewHeldKeys(keys, 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press("a", t0)
	h.Expire(t0.Add(50 * time.Millisecond))
	if !keys.Pressed("a") {
		t.Fatal("key should still be held inside the hold window")
	}

	// An auto-repeat extends the hold
	h.Press("a", t0.Add(80*time.Millisecond))
	h.Expire(t0.Add(150 * time.Millisecond))
	if !keys.Pressed("a") {
		t.Fatal("repeat should extend the hold")
	}

	h.Expire(t0.Add(180 * time.Millisecond))
	if keys.Pressed("a") {
		t.Error("key should be released once the hold has passed")
	}
}

func TestHeldKeysReset(t *testing.T) {
	keys := core.NewKeySet()
	h := NewHeldKeys(keys, time.Second)
	h.Press("w", time.Now())
	h.Press("d", time.Now())

	h.Reset()

	if keys.Pressed("w") || keys.Pressed("d") {
		t.Error("Reset should release every key")
	}
}
