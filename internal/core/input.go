package core

// Action represents a semantic input event, abstracted from the physical
// device (mouse button, key, on-screen button).
type Action int

const (
	ActionNone      Action = iota
	ActionLaunch           // Click on the play field - release balls held on the paddle
	ActionStart            // Start button on the start panel
	ActionNextLevel        // Next-level button on the level-complete panel
	ActionRestart          // Restart button on the game-over and win panels
	ActionQuit             // Leave the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLaunch:
		return "Launch"
	case ActionStart:
		return "Start"
	case ActionNextLevel:
		return "NextLevel"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did between two simulation ticks:
// discrete actions plus the latest pointer position, if it moved.
type InputFrame struct {
	Actions map[Action]bool

	pointerX   float64
	pointerSet bool
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

// SetPointer records the pointer's horizontal position in play-field pixels.
// Later calls within the same frame overwrite earlier ones.
func (f *InputFrame) SetPointer(x float64) {
	f.pointerX = x
	f.pointerSet = true
}

// Pointer returns the recorded pointer position and whether it moved this frame.
func (f InputFrame) Pointer() (float64, bool) {
	return f.pointerX, f.pointerSet
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.pointerX = 0
	f.pointerSet = false
}
