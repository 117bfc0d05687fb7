package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-taxi/internal/core"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, smp[0], -smp[0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		wave Wave
		name string
	}{
		{WaveSine, "sine"},
		{WaveSquare, "square"},
		{WaveSaw, "saw"},
		{WaveNoise, "noise"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(t, NewTone(440, 880, 100*time.Millisecond, tt.wave, rate))
			if n != rate.N(100*time.Millisecond) {
				t.Errorf("streamed %d samples, expected %d", n, rate.N(100*time.Millisecond))
			}
			if peak > 1 || peak == 0 {
				t.Errorf("peak = %v, expected within (0, 1]", peak)
			}
		})
	}
}

func TestSquareWaveLevels(t *testing.T) {
	buf := make([][2]float64, 64)
	n, _ := NewTone(220, 220, time.Second, WaveSquare, 8000).Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("sample %d = %v, expected +-1", i, v)
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	env := NewEnvelope(NewTone(0, 0, time.Second, WaveSquare, rate), time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 4)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected 0 at the start of the attack", buf[0][0])
	}
	if buf[3][0] <= 0 || buf[3][0] >= 1 {
		t.Errorf("attack sample = %v, expected between 0 and 1", buf[3][0])
	}
}

func TestBuildEverySound(t *testing.T) {
	for s := SoundCrash; s <= SoundGameOver; s++ {
		stream := Build(s, 8000, 1)
		if stream == nil {
			t.Errorf("Build(%d) = nil", s)
			continue
		}
		if n, _ := drain(t, stream); n == 0 {
			t.Errorf("Build(%d) produced no samples", s)
		}
	}
	if Build(SoundNone, 8000, 1) != nil {
		t.Error("Build(SoundNone) should be nil")
	}
}

func TestForEvent(t *testing.T) {
	tests := []struct {
		kind     core.EventKind
		expected Sound
	}{
		{core.EventCrash, SoundCrash},
		{core.EventCoinCollected, SoundCoin},
		{core.EventTripCompleted, SoundFare},
		{core.EventTaxiDestroyed, SoundWreck},
		{core.EventGameOver, SoundGameOver},
		{core.EventKind(-1), SoundNone},
	}
	for _, tt := range tests {
		if got := ForEvent(tt.kind); got != tt.expected {
			t.Errorf("ForEvent(%v) = %v, expected %v", tt.kind, got, tt.expected)
		}
	}
}

func TestClosedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(2)
	if p.volume != 1 {
		t.Errorf("volume = %v, expected clamp to 1", p.volume)
	}
	// Never opened: must not touch the speaker
	p.HandleEvent(core.Event{Kind: core.EventCrash})
	p.Close()
	if p.mixer.Len() != 0 {
		t.Error("a closed player should not queue sounds")
	}
}
