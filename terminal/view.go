package terminal

import "github.com/rhpo/gobble/arcade"

// Viewport maps the whole world onto a grid of Cols x Rows cells. The
// terminal's last row is kept for the status line.
type Viewport struct {
	Cols, Rows int
	World      arcade.Rect
}

func NewViewport(width, height int, world arcade.Rect) Viewport {
	return Viewport{Cols: max(width, 1), Rows: max(height-1, 1), World: world}
}

func (v Viewport) cellWidth() float64  { return v.World.Width / float64(v.Cols) }
func (v Viewport) cellHeight() float64 { return v.World.Height / float64(v.Rows) }

// Cell returns the cell holding world point p; ok is false outside the
// arena.
func (v Viewport) Cell(p arcade.Vector2) (x, y int, ok bool) {
	if p.X < 0 || p.Y < 0 || p.X > v.World.Width || p.Y > v.World.Height {
		return 0, 0, false
	}
	x = min(int(p.X/v.cellWidth()), v.Cols-1)
	y = min(int(p.Y/v.cellHeight()), v.Rows-1)
	return x, y, true
}

// ToWorld returns the world point at the center of cell (x, y).
func (v Viewport) ToWorld(x, y int) arcade.Vector2 {
	return arcade.Vector2{
		X: (float64(x) + 0.5) * v.cellWidth(),
		Y: (float64(y) + 0.5) * v.cellHeight(),
	}
}

// Span returns the cells covered by a square of the given extent centered
// on p, clipped to the arena. A body always covers at least its own cell.
func (v Viewport) Span(p arcade.Vector2, extent float64) (x0, y0, x1, y1 int, ok bool) {
	cx, cy, ok := v.Cell(p)
	if !ok {
		return 0, 0, 0, 0, false
	}
	half := extent / 2
	x0 = max(int((p.X-half)/v.cellWidth()), 0)
	y0 = max(int((p.Y-half)/v.cellHeight()), 0)
	x1 = min(int((p.X+half)/v.cellWidth()), v.Cols-1)
	y1 = min(int((p.Y+half)/v.cellHeight()), v.Rows-1)
	return min(x0, cx), min(y0, cy), max(x1, cx), max(y1, cy), true
}
