package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-taxi/internal/core"
)

// SampleRate is the output rate of every sound.
const SampleRate = beep.SampleRate(44100)

// maxVoices caps how many effects may overlap.
const maxVoices = 8

// Player mixes sound effects into the system speaker.
// A Player that failed to open, or was never opened, is silent.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	open   bool
}

// NewPlayer creates a player. volume is clamped to 0..1.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Open starts the speaker. It may only succeed once per process.
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.open = true
	return nil
}

// Close silences the player and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.open = false
}

// Play starts a sound effect. Extra sounds beyond the voice limit are dropped.
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open || p.volume == 0 {
		return
	}
	stream := Build(s, SampleRate, p.volume)
	if stream == nil {
		return
	}

	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(stream)
	}
	speaker.Unlock()
}

// HandleEvent plays the sound for a game event.
func (p *Player) HandleEvent(e core.Event) {
	if s := ForEvent(e.Kind); s != SoundNone {
		p.Play(s)
	}
}
