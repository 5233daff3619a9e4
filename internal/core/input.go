package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionSwimUp        // Space, Up, W, Enter, mouse click - primary action
	ActionDive          // Down, S - secondary, held control
	ActionMute          // M - toggle audio
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSwimUp:
		return "SwimUp"
	case ActionDive:
		return "Dive"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is the set of currently held continuous controls. The engine polls
// it once at the start of every frame. Discrete presses do not go through
// Input; they are dispatched to the engine as they arrive.
type Input struct {
	held map[Action]bool
}

// NewInput creates an empty held-control set.
func NewInput() *Input {
	return &Input{held: make(map[Action]bool)}
}

// SetHeld marks an action as held or released.
func (in *Input) SetHeld(a Action, held bool) {
	if in.held == nil {
		in.held = make(map[Action]bool)
	}
	if held {
		in.held[a] = true
		return
	}
	delete(in.held, a)
}

// Held reports whether the action is currently held.
func (in *Input) Held(a Action) bool {
	if in == nil || in.held == nil {
		return false
	}
	return in.held[a]
}

// Clear releases every held control.
func (in *Input) Clear() {
	for k := range in.held {
		delete(in.held, k)
	}
}
