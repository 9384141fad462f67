package gobble

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextProps places a line of text in screen space. FromEnd and FromBottom
// measure X and Y from the right and bottom edges instead; Centered
// ignores X and centers the line horizontally.
type TextProps struct {
	Text       string
	X, Y       float64
	Color      color.Color
	Font       font.Face
	FromEnd    bool
	FromBottom bool
	Centered   bool
}

func DrawText(screen *ebiten.Image, props *TextProps) {
	if props == nil || props.Text == "" {
		return
	}
	if props.Font == nil {
		props.Font = basicfont.Face7x13
	}
	if props.Color == nil {
		props.Color = ColorText
	}

	x, y := textOrigin(screen.Bounds().Dx(), screen.Bounds().Dy(), props)
	text.Draw(screen, props.Text, props.Font, x, y, props.Color)
}

// textOrigin returns the dot position for text.Draw, which takes the
// baseline rather than the top of the line.
func textOrigin(screenWidth, screenHeight int, props *TextProps) (int, int) {
	bounds, _ := font.BoundString(props.Font, props.Text)
	width := (bounds.Max.X - bounds.Min.X).Ceil()

	x := int(props.X)
	switch {
	case props.Centered:
		x = (screenWidth - width) / 2
	case props.FromEnd:
		x = screenWidth - width - int(props.X)
	}

	y := int(props.Y)
	if props.FromBottom {
		y = screenHeight - int(props.Y) - bounds.Max.Y.Ceil()
	}
	return x, y
}
