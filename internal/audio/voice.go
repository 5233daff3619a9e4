package audio

// voice is a started cue on the device.
type voice interface {
	IsPlaying() bool
	Close() error
}

// prune closes drained voices and returns the ones still playing,
// reusing the backing array.
func prune(voices []voice) []voice {
	live := voices[:0]
	for _, v := range voices {
		if v.IsPlaying() {
			live = append(live, v)
			continue
		}
		//nolint:errcheck // Closing a drained player only releases its buffer
		v.Close()
	}
	clear(voices[len(live):])
	return live
}
