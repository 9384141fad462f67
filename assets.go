package gobble

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rhpo/gobble/arcade"
)

// Textures are drawn in memory while preloading; nothing is read from
// disk.
type Textures struct {
	Player *ebiten.Image
	Enemy  *ebiten.Image
	Food   *ebiten.Image
}

// GenerateTextures draws one disc per body kind, size pixels across.
func GenerateTextures(size float64) Textures {
	d := int(math.Ceil(size))
	return Textures{
		Player: NewCircleTexture(d, ColorPlayer, ColorRim),
		Enemy:  NewCircleTexture(d, ColorEnemy, ColorRim),
		Food:   NewCircleTexture(d, ColorFood, ColorRim),
	}
}

func NewCircleTexture(diameter int, fill, rim color.Color) *ebiten.Image {
	img := ebiten.NewImage(diameter, diameter)
	r := float32(diameter) / 2
	vector.DrawFilledCircle(img, r, r, r, fill, true)
	vector.StrokeCircle(img, r, r, r-1, 2, rim, true)
	return img
}

func (t Textures) Loaded() bool {
	return t.Player != nil && t.Enemy != nil && t.Food != nil
}

func (t Textures) For(k arcade.Kind) *ebiten.Image {
	switch k {
	case arcade.KindPlayer:
		return t.Player
	case arcade.KindEnemy:
		return t.Enemy
	default:
		return t.Food
	}
}
