package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// Waveform selects the oscillator shape of a tone.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
)

// Tone is a single decaying note.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Waveform
}

// Amplitude is the peak level of every tone, as a fraction of full scale.
const Amplitude = 0.3

// decay is the exponential envelope rate in 1/s.
const decay = 3.0

// Tones maps each cue to its note.
var Tones = map[string]Tone{
	CueJump:  {Freq: 800, Duration: 100 * time.Millisecond, Wave: Square},
	CueHit:   {Freq: 150, Duration: 200 * time.Millisecond, Wave: Sawtooth},
	CueScore: {Freq: 1200, Duration: 50 * time.Millisecond, Wave: Sine},
}

// sample returns the oscillator value in [-1, 1] at time t.
func (w Waveform) sample(freq, t float64) float64 {
	switch w {
	case Square:
		if math.Sin(2*math.Pi*freq*t) >= 0 {
			return 1
		}
		return -1
	case Sawtooth:
		phase := freq * t
		return 2 * (phase - math.Floor(phase+0.5))
	default:
		return math.Sin(2 * math.Pi * freq * t)
	}
}

// Render synthesizes the tone as signed 16-bit little-endian PCM with the
// given number of interleaved channels.
func (t Tone) Render(sampleRate, channels int) []byte {
	if sampleRate <= 0 || channels <= 0 {
		return nil
	}
	n := int(float64(sampleRate) * t.Duration.Seconds())
	frame := channels * 2
	buf := make([]byte, n*frame)
	for i := 0; i < n; i++ {
		ts := float64(i) / float64(sampleRate)
		envelope := math.Exp(-decay * ts)
		v := int16(t.Wave.sample(t.Freq, ts) * Amplitude * envelope * math.MaxInt16)
		for ch := 0; ch < channels; ch++ {
			binary.LittleEndian.PutUint16(buf[i*frame+ch*2:], uint16(v))
		}
	}
	return buf
}
