package core

// Action is a semantic control intent, abstracted from physical keys.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - steer left
	ActionRight             // D, Right arrow - steer right
	ActionGas               // W, Up arrow - accelerate in the selected gear
	ActionBrake             // S, Down arrow, Space - brake
	ActionGearToggle        // R, G - flip between drive and reverse
	ActionConfirm           // Enter - start a run / pick a menu entry
	ActionRestart           // N - restart after finish
	ActionBack              // B, Escape - back to menu
	ActionQuit              // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionGas:
		return "Gas"
	case ActionBrake:
		return "Brake"
	case ActionGearToggle:
		return "Gear"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions active during one simulation tick.
// Held controls (steer, gas, brake) appear on every frame they are held;
// edge actions (gear, confirm) appear once per press.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// SteerAxis folds Left/Right into a steering target in [-1, 1].
func (f InputFrame) SteerAxis() float64 {
	axis := 0.0
	if f.Has(ActionLeft) {
		axis--
	}
	if f.Has(ActionRight) {
		axis++
	}
	return axis
}
