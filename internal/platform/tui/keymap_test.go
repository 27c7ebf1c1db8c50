package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/disc-dodge/internal/games/dodge"
)

func TestKeyMapMovement(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   string
		wantOK bool
	}{
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, dodge.KeyLeft, true},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, dodge.KeyRight, true},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, dodge.KeyUp, true},
		{"s", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, dodge.KeyDown, true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, dodge.KeyLeft, true},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, dodge.KeyDown, true},
		{"restart is not movement", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, "", false},
		{"space is not movement", tea.KeyMsg{Type: tea.KeySpace}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Movement(tt.msg)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Movement() = (%q, %v), expected (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
