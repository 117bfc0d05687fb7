package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length oscillator with an optional linear pitch slide.
type tone struct {
	from, to float64 // Start and end frequency in Hz
	phase    float64
	length   int
	pos      int
	wave     Wave
	rate     beep.SampleRate
	noise    uint32
}

// NewTone creates a streamer that plays one wave for d, sliding from one
// frequency to another. Use the same value twice for a steady pitch.
func NewTone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{from: from, to: to, length: rate.N(d), wave: wave, rate: rate, noise: 0x2545f491}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		case WaveNoise:
			// xorshift32 keeps the noise reproducible
			t.noise ^= t.noise << 13
			t.noise ^= t.noise >> 17
			t.noise ^= t.noise << 5
			v = float64(t.noise)/float64(math.MaxUint32)*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release over a total of d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is a shaped tone with a short click-free attack and release.
func note(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewTone(from, to, d, wave, rate), d, 5*time.Millisecond, d/3, rate)
}

// Build returns the streamer for a sound at the given volume (0..1).
func Build(s Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	var stream beep.Streamer
	switch s {
	case SoundCrash:
		stream = beep.Mix(
			withVolume(note(0, 0, ms(250), WaveNoise, rate), 0.6),
			withVolume(note(90, 40, ms(250), WaveSine, rate), 0.5),
		)
	case SoundFireball:
		stream = note(1200, 300, ms(180), WaveSaw, rate)
	case SoundCoin:
		stream = beep.Seq(
			note(987.77, 987.77, ms(80), WaveSquare, rate),
			note(1318.51, 1318.51, ms(200), WaveSquare, rate),
		)
	case SoundPower:
		stream = note(300, 1500, ms(400), WaveSine, rate)
	case SoundPickup:
		stream = beep.Seq(
			note(660, 660, ms(70), WaveSine, rate),
			note(880, 880, ms(120), WaveSine, rate),
		)
	case SoundFare:
		stream = beep.Mix(
			withVolume(note(880, 880, ms(350), WaveSine, rate), 0.7),
			withVolume(note(1760, 1760, ms(350), WaveSine, rate), 0.3),
		)
	case SoundWreck:
		stream = beep.Mix(
			withVolume(note(0, 0, ms(600), WaveNoise, rate), 0.7),
			withVolume(note(70, 30, ms(600), WaveSaw, rate), 0.4),
		)
	case SoundDoor:
		stream = note(220, 180, ms(120), WaveSquare, rate)
	case SoundWin:
		stream = beep.Seq(
			note(523.25, 523.25, ms(120), WaveSquare, rate),
			note(659.25, 659.25, ms(120), WaveSquare, rate),
			note(783.99, 783.99, ms(120), WaveSquare, rate),
			note(1046.5, 1046.5, ms(300), WaveSquare, rate),
		)
	case SoundGameOver:
		stream = beep.Seq(
			note(392, 392, ms(200), WaveSaw, rate),
			note(311.13, 311.13, ms(200), WaveSaw, rate),
			note(261.63, 196, ms(500), WaveSaw, rate),
		)
	default:
		return nil
	}
	return withVolume(stream, vol*0.5)
}
