package audio

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

const channelCount = 2

// Player is a Sink backed by the system audio device.
// Cue buffers are rendered once at construction.
type Player struct {
	ctx     *oto.Context
	buffers map[string][]byte

	mu     sync.Mutex
	active []voice
}

// NewPlayer opens the audio device and pre-renders every cue in Tones.
// Only one Player can exist per process.
func NewPlayer(sampleRate int) (*Player, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("audio: invalid sample rate %d", sampleRate)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open device: %w", err)
	}
	<-ready

	buffers := make(map[string][]byte, len(Tones))
	for cue, tone := range Tones {
		buffers[cue] = tone.Render(sampleRate, channelCount)
	}

	return &Player{ctx: ctx, buffers: buffers}, nil
}

// Play starts the cue on a fresh device player. Unknown cues are ignored.
func (p *Player) Play(cue string, volume float64) {
	buf, ok := p.buffers[cue]
	if !ok || len(buf) == 0 {
		return
	}

	op := p.ctx.NewPlayer(bytes.NewReader(buf))
	op.SetVolume(volume)
	op.Play()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Keep playing cues referenced until they drain.
	p.active = append(prune(p.active), op)
}
