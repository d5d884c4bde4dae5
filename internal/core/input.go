package core

// Action represents a semantic demo action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionNextScene        // n, Tab
	ActionPrevScene        // p, Shift+Tab
	ActionRotate           // r - rotate slopes now
	ActionToggleAuto       // a - pause or resume automatic rotation
	ActionReset            // x, Backspace - drop the current box
	ActionHelp             // ?
	ActionQuit             // q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNextScene:
		return "NextScene"
	case ActionPrevScene:
		return "PrevScene"
	case ActionRotate:
		return "Rotate"
	case ActionToggleAuto:
		return "ToggleAuto"
	case ActionReset:
		return "Reset"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state seen during one tick, in screen cells.
type Pointer struct {
	X, Y     int
	Valid    bool // False until the first mouse event arrives
	Pressed  bool // Left button went down this tick
	Released bool // Left button went up this tick
}

// InputFrame represents the input gathered for one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
	Pointer Pointer
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
	return f.Actions[a]
}

// MoveTo records the latest pointer position.
func (f *InputFrame) MoveTo(x, y int) {
	f.Pointer.X, f.Pointer.Y = x, y
	f.Pointer.Valid = true
}

// Clear resets actions and button edges for the next frame.
// The pointer position is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Pressed = false
	f.Pointer.Released = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
