package terminal

import (
	"math"
	"testing"
	"time"

	"github.com/rhpo/gobble/arcade"
)

func TestToneGenerator(t *testing.T) {
	g := NewToneGenerator(sampleRate, 440, 10*time.Millisecond, 1)
	samples := make([][2]float64, sampleRate.N(10*time.Millisecond))

	n, ok := g.Stream(samples)
	if n != len(samples) || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", samples[0][0])
	}
	peak := 0.0
	for i, s := range samples {
		if s[0] != s[1] {
			t.Fatalf("sample %d not mono: %v", i, s)
		}
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > 0.2 {
		t.Errorf("peak = %v, want within (0, 0.2]", peak)
	}
	if g.Err() != nil {
		t.Errorf("Err = %v", g.Err())
	}
}

func TestSoundBoardQueuesKnownTones(t *testing.T) {
	sb := NewSoundBoard(0.5)
	sb.Play(arcade.SoundCollect)
	sb.Play(arcade.SoundExplosion)
	sb.Play(arcade.Sound("fanfare"))

	if n := sb.Pending(); n != 2 {
		t.Fatalf("Pending = %d, want 2", n)
	}
	sb.Close()
	if n := sb.Pending(); n != 0 {
		t.Fatalf("Pending after Close = %d", n)
	}
}

func TestSoundBoardMuted(t *testing.T) {
	sb := NewSoundBoard(0)
	sb.Play(arcade.SoundCollect)
	if n := sb.Pending(); n != 0 {
		t.Fatalf("muted board queued %d tones", n)
	}
}
