package arcade

import "time"

type Sound string

const (
	SoundCollect   Sound = "collect"
	SoundExplosion Sound = "explosion"
)

// StateMainMenu is the screen the host is asked to show once a round is
// over. The payload is a Result.
const StateMainMenu = "MainMenu"

// Result is captured when the player dies; later mutations of the round
// do not reach it.
type Result struct {
	Score   int
	Frames  uint64
	Elapsed time.Duration
}

// Host is the engine side of the game: effects, sounds and screen
// switching.
type Host interface {
	PlaySound(id Sound)
	Explode(at Vector2)
	Transition(name string, payload any)
}

type NopHost struct{}

func (NopHost) PlaySound(Sound) {}
func (NopHost) Explode(Vector2) {}
func (NopHost) Transition(string, any) {}
