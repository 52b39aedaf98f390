package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to intents (swipe left, pause) rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - swipe up
	ActionDown           // S, J, Down arrow - swipe down
	ActionLeft           // A, H, Left arrow - swipe left
	ActionRight          // D, L, Right arrow - swipe right
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionForfeit        // X - give up the current board
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionForfeit:
		return "Forfeit"
	default:
		return "Unknown"
	}
}

// SwipeActions lists the four movement actions in Up, Down, Left, Right order.
var SwipeActions = [...]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
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

// Swipe returns the first movement action in the frame, or ActionNone.
// Only one swipe is applied per tick.
func (f InputFrame) Swipe() Action {
	for _, a := range SwipeActions {
		if f.Has(a) {
			return a
		}
	}
	return ActionNone
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
