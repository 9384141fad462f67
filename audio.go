package gobble

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate = 44100

	bytesPerFrame = 4 // 16-bit little-endian stereo
)

type AudioManager struct {
	context      *audio.Context
	sounds       map[string]*Sound
	mutex        sync.RWMutex
	masterVolume float64
	soundVolume  float64
}

type Sound struct {
	name    string
	data    []byte
	volume  float64
	players []*audio.Player
	mutex   sync.Mutex
}

type AudioProps struct {
	MasterVolume float64
	SoundVolume  float64
}

func NewAudioManager(props *AudioProps) *AudioManager {
	if props == nil {
		props = &AudioProps{
			MasterVolume: 1.0,
			SoundVolume:  0.8,
		}
	}

	// ebiten allows a single audio context per process.
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}

	return &AudioManager{
		context:      ctx,
		sounds:       make(map[string]*Sound),
		masterVolume: clampVolume(props.MasterVolume),
		soundVolume:  clampVolume(props.SoundVolume),
	}
}

// SynthesizeTone registers a sine tone under name, replacing any sound
// already registered there.
func (am *AudioManager) SynthesizeTone(name string, frequency float64, duration time.Duration) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	am.sounds[name] = &Sound{
		name:   name,
		data:   encodeTone(frequency, duration, 0.1),
		volume: 1.0,
	}
}

// encodeTone renders a sine wave as 16-bit stereo PCM. The amplitude ramps
// down to zero over the tone so it ends without a click.
func encodeTone(frequency float64, duration time.Duration, amplitude float64) []byte {
	samples := int(float64(SampleRate) * duration.Seconds())
	data := make([]byte, samples*bytesPerFrame)

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(SampleRate)
		envelope := 1 - float64(i)/float64(samples)
		sample := int16(32767 * amplitude * envelope * math.Sin(2*math.Pi*frequency*t))

		data[i*4] = byte(sample)
		data[i*4+1] = byte(sample >> 8)
		data[i*4+2] = byte(sample)
		data[i*4+3] = byte(sample >> 8)
	}
	return data
}

func (am *AudioManager) PlaySound(name string) error {
	return am.PlaySoundWithVolume(name, 1.0)
}

func (am *AudioManager) PlaySoundWithVolume(name string, volume float64) error {
	am.mutex.RLock()
	sound, exists := am.sounds[name]
	finalVolume := am.masterVolume * am.soundVolume * volume
	am.mutex.RUnlock()

	if !exists {
		return fmt.Errorf("sound %s not found", name)
	}
	if len(sound.data) == 0 {
		return fmt.Errorf("sound %s has no data", name)
	}

	sound.mutex.Lock()
	defer sound.mutex.Unlock()

	finalVolume *= sound.volume
	if finalVolume <= 0 {
		return nil
	}

	player, err := am.context.NewPlayer(bytes.NewReader(sound.data))
	if err != nil {
		return fmt.Errorf("failed to create audio player for %s: %w", name, err)
	}
	player.SetVolume(finalVolume)

	am.cleanupSoundPlayers(sound)
	sound.players = append(sound.players, player)

	player.Play()
	return nil
}

func (am *AudioManager) SetMasterVolume(volume float64) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.masterVolume = clampVolume(volume)
}

func (am *AudioManager) SetSoundVolume(volume float64) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.soundVolume = clampVolume(volume)
}

func (am *AudioManager) GetSoundNames() []string {
	am.mutex.RLock()
	defer am.mutex.RUnlock()

	names := make([]string, 0, len(am.sounds))
	for name := range am.sounds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// cleanupSoundPlayers closes finished players. The caller holds
// sound.mutex.
func (am *AudioManager) cleanupSoundPlayers(sound *Sound) {
	active := sound.players[:0]
	for _, player := range sound.players {
		if player.IsPlaying() {
			active = append(active, player)
		} else {
			player.Close()
		}
	}
	sound.players = active
}

// Update is called once per frame to release finished players.
func (am *AudioManager) Update() {
	am.mutex.RLock()
	defer am.mutex.RUnlock()

	for _, sound := range am.sounds {
		sound.mutex.Lock()
		am.cleanupSoundPlayers(sound)
		sound.mutex.Unlock()
	}
}

func (am *AudioManager) Cleanup() {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	for _, sound := range am.sounds {
		sound.mutex.Lock()
		for _, player := range sound.players {
			player.Close()
		}
		sound.players = nil
		sound.mutex.Unlock()
	}
	am.sounds = make(map[string]*Sound)
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
