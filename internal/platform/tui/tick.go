// Package tui provides the Bubble Tea host for the dodge game.
// It drives the frame and spawn timers, maps keys to the live key set and
// rasterises the game surface into the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to run one update-then-render frame.
type FrameMsg time.Time

// SpawnMsg is sent on every firing of the spawn timer.
type SpawnMsg time.Time

// frameCmd returns a Bubble Tea command that sends the next frame message at the specified rate.
func frameCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// spawnCmd returns a Bubble Tea command that fires the spawn timer after period.
func spawnCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return SpawnMsg(t)
	})
}
