package core

// Action represents a semantic input signal, abstracted from physical key presses.
// The engine only consumes the four movement signals; the rest are handled by
// the game and the platform.
type Action int

const (
	ActionNone       Action = iota
	ActionTurnLeft          // Left arrow, A - rotate counter-clockwise
	ActionTurnRight         // Right arrow, D - rotate clockwise
	ActionAdvance           // Up arrow, W - move along the forward vector
	ActionRetreat           // Down arrow, S - move against the forward vector
	ActionToggleRays        // V - show/hide the ray fan
	ActionPause             // P - pause/unpause
	ActionRestart           // R - back to the arena start
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionAdvance:
		return "Advance"
	case ActionRetreat:
		return "Retreat"
	case ActionToggleRays:
		return "ToggleRays"
	case ActionPause:
		return "Pause"
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

// InputFrame is the set of actions held during one simulation frame.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions held.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Held reports whether the action is a continuous movement signal, applied on
// every frame it is held, rather than a one-shot command.
func (a Action) Held() bool {
	switch a {
	case ActionTurnLeft, ActionTurnRight, ActionAdvance, ActionRetreat:
		return true
	default:
		return false
	}
}
