package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/disc-dodge/internal/config"
	"github.com/vovakirdan/disc-dodge/internal/core"
	"github.com/vovakirdan/disc-dodge/internal/games/dodge"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.DefaultDodgeConfig(), core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  26,
		TickRate: 60,
		Seed:     1,
	}, nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelFrameRendersPlayer(t *testing.T) {
	m := newTestModel(t)

	m, cmd := step(t, m, FrameMsg(time.Now()))
	if cmd == nil {
		t.Error("an active run should schedule the next frame")
	}

	found := false
	for y := 0; y < m.screen.Height() && !found; y++ {
		for x := 0; x < m.screen.Width(); x++ {
			if c := m.screen.GetCell(x, y); c.Rune == DiscRune && c.Color == dodge.PlayerColor {
				found = true
				break
			}
		}
	}
	if !found {
		t.Errorf("player disc should be drawn:\n%s", m.screen.String())
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("HUD should show the score")
	}
}

func TestModelMovementKeys(t *testing.T) {
	m := newTestModel(t)
	startX := m.Game().Player().Position().X

	m, _ = step(t, m, runeKey('a'))
	if !m.keys.Pressed(dodge.KeyLeft) {
		t.Fatal("a should press the left key")
	}

	m, _ = step(t, m, FrameMsg(time.Now()))
	if got := m.Game().Player().Position().X; got != startX-m.cfg.Player.Step {
		t.Errorf("player x = %g, expected %g", got, startX-m.cfg.Player.Step)
	}

	// Long after the last press the key is released
	m, _ = step(t, m, FrameMsg(time.Now().Add(time.Second)))
	if m.keys.Pressed(dodge.KeyLeft) {
		t.Error("key should be released after the hold window")
	}

	// Arrow keys map to the same movement
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if !m.keys.Pressed(dodge.KeyUp) {
		t.Error("up arrow should press the up key")
	}
}

func TestModelGameOverStopsFrames(t *testing.T) {
	m := newTestModel(t)
	pos := m.Game().Player().Position()
	o := dodge.NewObstacle("obstacle-test", dodge.Up, pos.X, pos.Y, 20, m.cfg.Obstacles)
	if err := m.Game().Scheduler().Spawn(o); err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}

	m, cmd := step(t, m, FrameMsg(time.Now()))
	if cmd != nil {
		t.Error("no frame should be scheduled after game over")
	}
	if m.framing {
		t.Error("frame chain should be marked stopped")
	}
	if !strings.Contains(m.View(), dodge.MsgGameOver) {
		t.Error("the game over notice should be shown")
	}

	// The spawn timer keeps firing but changes nothing
	score := m.Game().Score()
	m, cmd = step(t, m, SpawnMsg(time.Now()))
	if cmd == nil {
		t.Error("spawn timer should keep running")
	}
	if m.Game().Score() != score {
		t.Error("spawn ticks after game over should not score")
	}

	// Restart begins a new run and the frame chain again
	old := m.Game()
	m, cmd = step(t, m, runeKey('r'))
	if cmd == nil {
		t.Error("restart should schedule a frame")
	}
	if m.Game() == old || !m.Game().Active() {
		t.Error("restart should create a fresh active run")
	}
	if m.hud.notice != "" {
		t.Error("restart should clear the notice")
	}
}

func TestModelRestartIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t)
	old := m.Game()

	m, cmd := step(t, m, runeKey('r'))
	if cmd != nil || m.Game() != old {
		t.Error("restart should do nothing while the run is active")
	}
}

func TestModelSpawnScores(t *testing.T) {
	m := newTestModel(t)

	m, cmd := step(t, m, SpawnMsg(time.Now()))
	if cmd == nil {
		t.Error("spawn timer should reschedule itself")
	}
	if m.Game().Score() == 0 || m.hud.score != m.Game().Score() {
		t.Errorf("HUD score %d should follow game score %d", m.hud.score, m.Game().Score())
	}
	if m.Game().Scheduler().Len() != 2 {
		t.Errorf("expected player and one obstacle, got %d entities", m.Game().Scheduler().Len())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := step(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 40-chromeRows {
		t.Errorf("screen = %dx%d, expected 120x%d", m.screen.Width(), m.screen.Height(), 40-chromeRows)
	}
}
