package terminal

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/rhpo/gobble/arcade"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[arcade.Sound]tone{
	arcade.SoundCollect:   {freq: 880, duration: 80 * time.Millisecond},
	arcade.SoundExplosion: {freq: 110, duration: 400 * time.Millisecond},
}

// SoundBoard plays short synthesized tones through one mixer. Until the
// speaker is initialized the mixer is only filled, never heard. A board
// belongs to the game goroutine; the speaker goroutine only touches the
// mixer under speaker.Lock.
type SoundBoard struct {
	mixer   *beep.Mixer
	volume  float64
	speaker bool
}

func NewSoundBoard(volume float64) *SoundBoard {
	return &SoundBoard{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the audio device and starts streaming the mixer.
func (sb *SoundBoard) Init() error {
	if sb.speaker {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sb.mixer)
	sb.speaker = true
	return nil
}

func (sb *SoundBoard) Play(id arcade.Sound) {
	t, ok := tones[id]
	if !ok || sb.volume <= 0 {
		return
	}
	streamer := beep.Take(sampleRate.N(t.duration), NewToneGenerator(sampleRate, t.freq, t.duration, sb.volume))

	sb.lock()
	defer sb.unlock()
	sb.mixer.Add(streamer)
}

// Pending is the number of tones queued or still playing.
func (sb *SoundBoard) Pending() int {
	sb.lock()
	defer sb.unlock()
	return sb.mixer.Len()
}

func (sb *SoundBoard) Close() {
	if !sb.speaker {
		sb.mixer.Clear()
		return
	}
	speaker.Clear()
	speaker.Close()
	sb.speaker = false
}

func (sb *SoundBoard) lock() {
	if sb.speaker {
		speaker.Lock()
	}
}

func (sb *SoundBoard) unlock() {
	if sb.speaker {
		speaker.Unlock()
	}
}

// ToneGenerator is a sine wave that fades out linearly over its duration.
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	total  int
	volume float64
	pos    int
}

func NewToneGenerator(sr beep.SampleRate, freq float64, duration time.Duration, volume float64) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		total:  max(sr.N(duration), 1),
		volume: volume,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := max(0, 1-float64(g.pos)/float64(g.total))
		sample := 0.2 * g.volume * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
