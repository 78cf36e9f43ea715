package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends map their own key codes onto these.
type Action int

const (
	ActionNone    Action = iota
	ActionForward        // W - travel along +X
	ActionBack           // S - travel along -X
	ActionLeft           // A - travel along -Z
	ActionRight          // D - travel along +Z
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBack:
		return "Back"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the unit vector a movement action steers toward.
// The second result is false for actions that are not movement.
func (a Action) Direction() (Vec3, bool) {
	switch a {
	case ActionForward:
		return Forward, true
	case ActionBack:
		return Back, true
	case ActionLeft:
		return Left, true
	case ActionRight:
		return Right, true
	}
	return Vec3{}, false
}

// InputFrame holds the actions triggered during one frame, in the order they
// were pressed.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// LastDirection returns the direction of the most recent movement action.
// The last key pressed this frame wins.
func (f InputFrame) LastDirection() (Vec3, bool) {
	for i := len(f.Actions) - 1; i >= 0; i-- {
		if dir, ok := f.Actions[i].Direction(); ok {
			return dir, true
		}
	}
	return Vec3{}, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
