package gobble

import (
	"image/color"
	"time"

	"github.com/rhpo/gobble/arcade"
)

type ShapeType string

const (
	ShapeCircle    ShapeType = "circle"
	ShapeRectangle ShapeType = "rectangle"
)

type PatternType string

const (
	PatternImage PatternType = "image"
	PatternColor PatternType = "color"
)

const (
	ScenePreload  = "Preload"
	SceneGame     = "Game"
	SceneMainMenu = arcade.StateMainMenu
)

var (
	ColorBackground = color.RGBA{0x1d, 0x1f, 0x2b, 0xff}
	ColorArena      = color.RGBA{0x26, 0x29, 0x38, 0xff}
	ColorPlayer     = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	ColorEnemy      = color.RGBA{0xe5, 0x39, 0x35, 0xff}
	ColorFood       = color.RGBA{0xff, 0xc1, 0x07, 0xff}
	ColorParticle   = color.RGBA{0xff, 0x98, 0x00, 0xff}
	ColorRim        = color.RGBA{0x10, 0x10, 0x10, 0xff}
	ColorText       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorPanel      = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// TagHUD marks the screen-space panels behind text.
const TagHUD = "hud"

// VolumeStep is how much one key press changes the sound volume.
const VolumeStep = 0.1

func kindColor(k arcade.Kind) color.Color {
	switch k {
	case arcade.KindPlayer:
		return ColorPlayer
	case arcade.KindEnemy:
		return ColorEnemy
	default:
		return ColorFood
	}
}

// Tone parameters for the synthesized sounds.
const (
	CollectFrequency   = 880.0
	CollectDuration    = 80 * time.Millisecond
	ExplosionFrequency = 110.0
	ExplosionDuration  = 400 * time.Millisecond
)
