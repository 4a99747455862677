package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// KeyMapper translates Bubble Tea key messages to stage key codes.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// terminalKeys binds terminal key names to the browser-style codes the
// stages understand.
var terminalKeys = map[string]core.KeyCode{
	"up":    core.KeyArrowUp,
	"w":     core.KeyW,
	"left":  core.KeyArrowLeft,
	"a":     core.KeyA,
	"right": core.KeyArrowRight,
	"d":     core.KeyD,
	"p":     core.KeyP,
	" ":     core.KeySpace,
	"r":     core.KeyR,
	"esc":   core.KeyEscape,
	"b":     core.KeyEscape,
	"1":     core.KeyDigit1,
	"2":     core.KeyDigit2,
	"3":     core.KeyDigit3,
	"4":     core.KeyDigit4,
	"5":     core.KeyDigit5,
	"6":     core.KeyDigit6,
}

// MapKey translates a key message to a stage key code.
// Returns an empty code for unbound keys and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (code core.KeyCode, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return "", true
	}

	return terminalKeys[key], false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionFlightLog
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "l":
		return MenuActionFlightLog
	}

	return MenuActionNone
}
