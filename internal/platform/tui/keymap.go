package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"snaketui/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Unrecognized keys map to ActionNone, which callers treat as a no-op.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "up", "w", "k":
		return core.ActionUp
	case "down", "s", "j":
		return core.ActionDown
	case "left", "a", "h":
		return core.ActionLeft
	case "right", "d", "l":
		return core.ActionRight
	case "p", "esc":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	}

	return core.ActionNone
}
