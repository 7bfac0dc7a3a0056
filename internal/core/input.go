package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - shift piece left
	ActionRight          // Right arrow, D - shift piece right
	ActionDown           // Down arrow, S - soft drop
	ActionRotate         // Up arrow, W, X - rotate clockwise
	ActionConfirm        // Enter, Space - start a new game
	ActionBack           // B - leave the game
	ActionRestart        // R - new game after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P, Esc - pause or resume
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionDown:    "Down",
	ActionRotate:  "Rotate",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one frame.
type InputFrame struct {
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

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone copies the frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	return c
}
