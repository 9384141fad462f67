package terminal

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rhpo/gobble/arcade"
)

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
}

var (
	styleArena  = tcell.StyleDefault.Background(tcell.ColorBlack)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleEnemy  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	styleEdible = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBurst  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

const (
	glyphPlayer = '@'
	glyphEnemy  = 'O'
	glyphFood   = '*'
	glyphBurst  = '+'

	burstLifespan = time.Second
	burstSpeed    = 200.0
	burstSpokes   = 12
)

// burst is the terminal rendition of an explosion: a ring of glyphs that
// grows at the particle speed until its lifespan runs out.
type burst struct {
	at  arcade.Vector2
	age time.Duration
}

func (b burst) radius() float64 {
	return burstSpeed * b.age.Seconds()
}

func (b burst) alive() bool {
	return b.age < burstLifespan
}

func fill(c Canvas, x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.SetContent(x, y, r, nil, style)
		}
	}
}

func drawString(c Canvas, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		c.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(c Canvas, y int, s string, style tcell.Style) {
	w, _ := c.Size()
	drawString(c, max((w-len([]rune(s)))/2, 0), y, s, style)
}

func drawBody(c Canvas, v Viewport, b *arcade.Body, r rune, style tcell.Style) {
	if !b.Alive {
		return
	}
	x0, y0, x1, y1, ok := v.Span(b.Position, b.Extent())
	if !ok {
		return
	}
	fill(c, x0, y0, x1, y1, r, style)
}

func drawRound(c Canvas, v Viewport, r *arcade.Round) {
	r.Food.Each(func(_ int, b *arcade.Body) {
		if x, y, ok := v.Cell(b.Position); ok {
			c.SetContent(x, y, glyphFood, nil, styleFood)
		}
	})
	r.Enemies.Each(func(_ int, b *arcade.Body) {
		style := styleEnemy
		if r.Player.Alive && r.Player.Extent() > b.Extent() {
			style = styleEdible
		}
		drawBody(c, v, b, glyphEnemy, style)
	})
	drawBody(c, v, &r.Player.Body, glyphPlayer, stylePlayer)
}

func drawBurst(c Canvas, v Viewport, b burst) {
	rad := b.radius()
	for i := range burstSpokes {
		angle := 2 * math.Pi * float64(i) / burstSpokes
		p := arcade.Vector2{X: b.at.X + rad*math.Cos(angle), Y: b.at.Y + rad*math.Sin(angle)}
		if x, y, ok := v.Cell(p); ok {
			c.SetContent(x, y, glyphBurst, nil, styleBurst)
		}
	}
}

func drawStatus(c Canvas, text string) {
	w, h := c.Size()
	fill(c, 0, h-1, w-1, h-1, ' ', styleStatus)
	drawString(c, max(w-len([]rune(text))-1, 0), h-1, text, styleStatus)
}

func scoreLine(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
