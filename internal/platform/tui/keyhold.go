package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Hold windows. The first press must outlast the terminal's auto-repeat
// delay; later repeats arrive much faster.
const (
	initialHold = 500 * time.Millisecond
	repeatHold  = 150 * time.Millisecond
)

// KeyHolds emulates key releases for terminals, which only report presses.
// A held key stays down until no repeat arrives within its window.
type KeyHolds struct {
	deadlines map[core.KeyCode]time.Time
}

// NewKeyHolds creates an empty hold tracker.
func NewKeyHolds() *KeyHolds {
	return &KeyHolds{deadlines: make(map[core.KeyCode]time.Time)}
}

// Press records a press at now. It reports whether the key was newly held.
// Codes whose action is not continuous are not tracked.
func (k *KeyHolds) Press(code core.KeyCode, now time.Time) bool {
	if !core.ActionForKey(code).Held() {
		return false
	}
	_, down := k.deadlines[code]
	if down {
		k.deadlines[code] = now.Add(repeatHold)
	} else {
		k.deadlines[code] = now.Add(initialHold)
	}
	return !down
}

// Held reports whether code is currently held.
func (k *KeyHolds) Held(code core.KeyCode) bool {
	_, ok := k.deadlines[code]
	return ok
}

// Expire releases every key whose deadline has passed and returns them sorted.
func (k *KeyHolds) Expire(now time.Time) []core.KeyCode {
	var released []core.KeyCode
	for code, deadline := range k.deadlines {
		if !now.Before(deadline) {
			released = append(released, code)
		}
	}
	for _, code := range released {
		delete(k.deadlines, code)
	}
	slices.Sort(released)
	return released
}

// ReleaseAll drops every hold and returns the released keys sorted.
func (k *KeyHolds) ReleaseAll() []core.KeyCode {
	released := make([]core.KeyCode, 0, len(k.deadlines))
	for code := range k.deadlines {
		released = append(released, code)
	}
	clear(k.deadlines)
	slices.Sort(released)
	return released
}
