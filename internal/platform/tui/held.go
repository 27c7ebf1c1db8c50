package tui

import (
	"time"

	"github.com/vovakirdan/disc-dodge/internal/core"
)

// HeldKeys keeps a KeySet up to date from key press events alone.
// Terminals report presses (and auto-repeats) but no releases, so a key
// counts as held until hold has passed since its last press.
type HeldKeys struct {
	keys core.KeySet
	last map[string]time.Time
	hold time.Duration
}

// NewHeldKeys tracks presses into keys.
func NewHeldKeys(keys core.KeySet, hold time.Duration) *HeldKeys {
	return &HeldKeys{
		keys: keys,
		last: make(map[string]time.Time),
		hold: hold,
	}
}

// Press records a press of key at the given time.
func (h *HeldKeys) Press(key string, at time.Time) {
	h.last[key] = at
	h.keys.Press(key)
}

// Expire releases keys whose last press is older than the hold duration.
func (h *HeldKeys) Expire(now time.Time) {
	for key, at := range h.last {
		if now.Sub(at) >= h.hold {
			h.keys.Release(key)
			delete(h.last, key)
		}
	}
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	h.keys.Clear()
	for key := range h.last {
		delete(h.last, key)
	}
}
