package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sandfall/internal/core"
)

// KeyMapper translates Bubble Tea key messages to simulation actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case "p", " ":
		return core.ActionPause, false
	case "r", "c":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame updates the pointer state of an input frame based on a
// mouse message. Press and drag paint; release ends the stroke so the next
// press starts a fresh, unconnected line.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			frame.Held = true
			frame.PointerX = msg.X
			frame.PointerY = msg.Y
		}
	case tea.MouseActionMotion:
		if frame.Held {
			frame.PointerX = msg.X
			frame.PointerY = msg.Y
		}
	case tea.MouseActionRelease:
		frame.Held = false
		frame.Released = true
	}
}
