package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - move piece left
	ActionRight            // D, Right arrow - move piece right
	ActionRotate           // W, Up arrow - rotate piece
	ActionSoftDrop         // S, Down arrow - accelerated descent while held
	ActionPause            // P, Space - play/pause
	ActionStop             // X - stop the current game
	ActionNewEasy          // 1 - new game at the easy level
	ActionNewMedium        // 2 - new game at the medium level
	ActionNewHard          // 3 - new game at the hard level
	ActionSave             // Ctrl+S - write a checkpoint
	ActionLoad             // Ctrl+L - restore the checkpoint
	ActionRestart          // R - restart after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
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
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionPause:
		return "Pause"
	case ActionStop:
		return "Stop"
	case ActionNewEasy:
		return "NewEasy"
	case ActionNewMedium:
		return "NewMedium"
	case ActionNewHard:
		return "NewHard"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame plus pointer activity.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Clicks holds left-button presses in screen coordinates, oldest first.
	Clicks []Point

	// Pointer is the last known pointer position, nil if unknown.
	Pointer *Point
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

// Click records a pointer press at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Hover records the pointer position without a press.
func (f *InputFrame) Hover(x, y int) {
	f.Pointer = &Point{X: x, Y: y}
}

// Clear resets actions and clicks for the next frame.
// The pointer position survives, it only changes when the pointer moves.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Clicks = append(clone.Clicks, f.Clicks...)
	if f.Pointer != nil {
		p := *f.Pointer
		clone.Pointer = &p
	}
	return clone
}
