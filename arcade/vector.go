package arcade

import "math"

type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vector2) Mul(scalar float64) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{0, 0}
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

// Rect is an axis-aligned rectangle anchored at the world origin.
type Rect struct {
	Width, Height float64
}

func (r Rect) Center() Vector2 {
	return Vector2{X: r.Width / 2, Y: r.Height / 2}
}

// Contains reports whether p lies inside r grown by margin on every side.
func (r Rect) Contains(p Vector2, margin float64) bool {
	return p.X >= -margin && p.X <= r.Width+margin &&
		p.Y >= -margin && p.Y <= r.Height+margin
}

// Clamp pulls p inside r shrunk by inset on every side and reports which
// axes were clamped.
func (r Rect) Clamp(p Vector2, inset float64) (Vector2, bool, bool) {
	var cx, cy bool
	if p.X < inset {
		p.X, cx = inset, true
	} else if p.X > r.Width-inset {
		p.X, cx = r.Width-inset, true
	}
	if p.Y < inset {
		p.Y, cy = inset, true
	} else if p.Y > r.Height-inset {
		p.Y, cy = r.Height-inset, true
	}
	return p, cx, cy
}
