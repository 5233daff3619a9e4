package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reef-runner/internal/core"
)

// DefaultHoldWindow is how long a dive key press counts as held. Terminal
// auto-repeat renews it well within this window.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case " ", "up", "w", "enter":
		return core.ActionSwimUp
	case "down", "s":
		return core.ActionDive
	case "m":
		return core.ActionMute
	}
	return core.ActionNone
}

// MapMouse reports whether a mouse event is a primary press.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionSwimUp
	}
	return core.ActionNone
}

// Hold emulates a held key on terminals that never report key releases.
// Each press holds the control until window has passed without another.
type Hold struct {
	window time.Duration
	until  time.Time
}

// NewHold creates a hold tracker. A non-positive window uses DefaultHoldWindow.
func NewHold(window time.Duration) *Hold {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &Hold{window: window}
}

// Press records a key press at now.
func (h *Hold) Press(now time.Time) {
	h.until = now.Add(h.window)
}

// Held reports whether the control is still held at now.
func (h *Hold) Held(now time.Time) bool {
	return now.Before(h.until)
}

// Release drops the hold immediately.
func (h *Hold) Release() {
	h.until = time.Time{}
}
