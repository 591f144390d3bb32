package core

// Action represents a semantic input action, abstracted from physical key presses.
// Pointer state is carried separately on the InputFrame since painting is
// positional rather than action-based.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause settling
	ActionRestart        // R, C - wipe the canvas and start over
	ActionQuit           // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick:
// the pointer sample plus any actions triggered since the last tick.
type InputFrame struct {
	// Held is true while the primary pointer button is down.
	Held bool

	// Released is true if the button was released since the last tick.
	// The frame driver uses it to break the stroke so the next press
	// starts a fresh, unconnected line.
	Released bool

	// PointerX and PointerY are the latest pointer position in terminal
	// coordinates. Only meaningful while Held is true.
	PointerX int
	PointerY int

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets per-frame state for the next tick. Held and the pointer
// position persist; Released and actions are one-shot.
func (f *InputFrame) Clear() {
	f.Released = false
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := f
	clone.Actions = make(map[Action]bool, len(f.Actions))
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
