package audio

import "sync/atomic"

// Mutable wraps a Sink with a mute switch.
type Mutable struct {
	sink  Sink
	muted atomic.Bool
}

// NewMutable wraps sink. A nil sink plays nothing.
func NewMutable(sink Sink, muted bool) *Mutable {
	if sink == nil {
		sink = Nop{}
	}
	m := &Mutable{sink: sink}
	m.muted.Store(muted)
	return m
}

// Play forwards the cue unless muted.
func (m *Mutable) Play(cue string, volume float64) {
	if m.muted.Load() {
		return
	}
	m.sink.Play(cue, volume)
}

// SetMuted sets the mute switch.
func (m *Mutable) SetMuted(muted bool) { m.muted.Store(muted) }

// Muted reports whether cues are currently dropped.
func (m *Mutable) Muted() bool { return m.muted.Load() }

// Toggle flips the mute switch and returns the new state.
func (m *Mutable) Toggle() bool {
	for {
		old := m.muted.Load()
		if m.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
