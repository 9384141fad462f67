package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

type cell struct {
	r     rune
	style tcell.Style
}

// gridCanvas keeps what was drawn so tests can read it back.
type gridCanvas struct {
	w, h  int
	cells map[[2]int]cell
}

func newGridCanvas(w, h int) *gridCanvas {
	return &gridCanvas{w: w, h: h, cells: make(map[[2]int]cell)}
}

func (c *gridCanvas) SetContent(x, y int, r rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[[2]int{x, y}] = cell{r: r, style: style}
}

func (c *gridCanvas) Size() (int, int) {
	return c.w, c.h
}

func (c *gridCanvas) Clear() {
	clear(c.cells)
}

func (c *gridCanvas) at(x, y int) cell {
	return c.cells[[2]int{x, y}]
}

func (c *gridCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		r := c.at(x, y).r
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (c *gridCanvas) contains(s string) bool {
	for y := 0; y < c.h; y++ {
		if strings.Contains(c.row(y), s) {
			return true
		}
	}
	return false
}
