package gobble

import "github.com/rhpo/gobble/arcade"

// Camera is the viewport into the world: X, Y is the world point drawn at
// the top-left corner of the screen.
type Camera struct {
	X, Y          float64
	Width, Height float64
}

// Follow centers the view on target without showing anything outside
// bounds. An axis on which the world is smaller than the view is centered
// on the world instead.
func (c *Camera) Follow(target arcade.Vector2, bounds arcade.Rect) {
	c.X = follow(target.X, c.Width, bounds.Width)
	c.Y = follow(target.Y, c.Height, bounds.Height)
}

func follow(target, view, world float64) float64 {
	if world <= view {
		return (world - view) / 2
	}
	return min(max(target-view/2, 0), world-view)
}

func (c Camera) ToWorld(screen arcade.Vector2) arcade.Vector2 {
	return screen.Add(arcade.Vector2{X: c.X, Y: c.Y})
}

func (c Camera) ToScreen(world arcade.Vector2) arcade.Vector2 {
	return world.Sub(arcade.Vector2{X: c.X, Y: c.Y})
}
