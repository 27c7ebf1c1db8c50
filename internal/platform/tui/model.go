package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/disc-dodge/internal/config"
	"github.com/vovakirdan/disc-dodge/internal/core"
	"github.com/vovakirdan/disc-dodge/internal/games/dodge"
)

// chromeRows is the number of terminal rows used by the HUD and help footer.
const chromeRows = 2

// hud is written by the game's collaborators and read by View.
type hud struct {
	score  int
	notice string
}

// Model is the Bubble Tea model hosting one dodge session.
// A session may hold several runs: R starts a fresh run once one ends.
type Model struct {
	cfg      config.DodgeConfig
	runtime  core.RuntimeConfig
	logger   *log.Logger
	game     *dodge.Game
	screen   *core.Screen
	canvas   *Canvas
	keys     core.KeySet
	held     *HeldKeys
	keyMap   KeyMap
	help     help.Model
	hud      *hud
	framing  bool // Whether a frame message is in flight
	quitting bool
}

// NewModel creates the model and its first run.
func NewModel(cfg config.DodgeConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	screen := core.NewScreen(core.Max(rt.ScreenW, 1), core.Max(rt.ScreenH-chromeRows, 1))
	keys := core.NewKeySet()

	m := Model{
		cfg:     cfg,
		runtime: rt,
		logger:  logger,
		screen:  screen,
		canvas:  NewCanvas(screen, cfg.Surface.Width, cfg.Surface.Height),
		keys:    keys,
		held:    NewHeldKeys(keys, cfg.Input.Hold()),
		keyMap:  DefaultKeyMap(),
		help:    help.New(),
		hud:     &hud{},
		framing: true, // Init starts the frame chain
	}

	if err := m.newRun(rt.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newRun replaces the current run with a fresh one.
func (m *Model) newRun(seed int64) error {
	h := m.hud
	h.notice = ""

	game, err := dodge.New(m.cfg, dodge.Options{
		Seed:     seed,
		Keys:     m.keys,
		Surface:  m.canvas,
		Notifier: dodge.NotifierFunc(func(msg string) { h.notice = msg }),
		Score:    dodge.ScoreDisplayFunc(func(score int) { h.score = score }),
		Logger:   m.logger,
	})
	if err != nil {
		return fmt.Errorf("cannot start run: %w", err)
	}

	m.held.Reset()
	m.game = game
	return nil
}

// Game returns the current run.
func (m Model) Game() *dodge.Game {
	return m.game
}

// Init starts both timers. They run independently: frames stop with the
// run, the spawn timer keeps firing and the spawner ignores it.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.runtime.TickRate),
		spawnCmd(m.cfg.Spawner.Period()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case SpawnMsg:
		m.game.SpawnTick()
		return m, spawnCmd(m.cfg.Spawner.Period())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keyMap.Restart):
		if m.game.Active() {
			return m, nil
		}
		if err := m.newRun(time.Now().UnixNano()); err != nil {
			m.logger.Error("restart failed", "error", err)
			return m, nil
		}
		if !m.framing {
			m.framing = true
			return m, frameCmd(m.runtime.TickRate)
		}
		return m, nil
	}

	if name, ok := m.keyMap.Movement(msg); ok && m.game.Active() {
		m.held.Press(name, time.Now())
	}
	return m, nil
}

// handleResize fits the playfield to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(core.Max(msg.Width, 1), core.Max(msg.Height-chromeRows, 1))
	m.canvas.Resize()
	m.help.Width = msg.Width

	m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleFrame runs one frame. Held keys are expired afterwards so every
// press is seen by at least one frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	more := m.game.Frame()
	m.held.Expire(now)

	if !more {
		m.framing = false
		return m, nil
	}
	return m, frameCmd(m.runtime.TickRate)
}

// View renders the HUD, the playfield and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		hudStyle.Render(fmt.Sprintf("Score: %d", m.hud.score)),
		goalStyle.Render(fmt.Sprintf("goal %d", m.cfg.Gameplay.WinScore)),
	)

	field := RenderScreen(m.screen)
	if m.hud.notice != "" {
		box := noticeStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			m.hud.notice,
			fmt.Sprintf("Score: %d", m.hud.score),
			"",
			noticeHintStyle.Render("r new run • q quit"),
		))
		field = lipgloss.Place(m.screen.Width(), m.screen.Height(), lipgloss.Center, lipgloss.Center, box)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, field, m.help.View(m.keyMap))
}

// Run starts the Bubble Tea program for a dodge session.
func Run(cfg config.DodgeConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
