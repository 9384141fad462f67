package arcade

import "github.com/ByteArena/box2d"

// Detector reports whether two bodies touch this frame.
type Detector interface {
	Touching(a, b *Body) bool
}

// AABBDetector tests the axis-aligned boxes of two bodies, edges included.
type AABBDetector struct{}

func (AABBDetector) Touching(a, b *Body) bool {
	return box2d.B2TestOverlapBoundingBoxes(BoundingBox(a), BoundingBox(b))
}

func BoundingBox(b *Body) box2d.B2AABB {
	half := b.Extent() / 2
	return box2d.B2AABB{
		LowerBound: box2d.MakeB2Vec2(b.Position.X-half, b.Position.Y-half),
		UpperBound: box2d.MakeB2Vec2(b.Position.X+half, b.Position.Y+half),
	}
}
