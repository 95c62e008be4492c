package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions so game code never sees raw
// key codes.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k
	ActionDown           // S, Down arrow, j
	ActionLeft           // A, Left arrow, h
	ActionRight          // D, Right arrow, l
	ActionPause          // P - pause/unpause the tick schedule
	ActionRestart        // R - reset the game
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
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

// IsDirection reports whether the action is one of the four movement inputs.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
