package arcade

type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	}
	return "unknown"
}

// Spawner places enemies just outside one of the four world edges, moving
// back into the world.
type Spawner struct {
	rng    RNG
	bounds Rect
	offset Range
	inward Range
	drift  int
}

func NewSpawner(cfg Config, rng RNG) *Spawner {
	return &Spawner{
		rng:    rng,
		bounds: cfg.Bounds(),
		offset: cfg.SpawnOffset,
		inward: cfg.InwardSpeed,
		drift:  cfg.Drift,
	}
}

// Spawn draws an edge uniformly and delegates to SpawnOn.
func (s *Spawner) Spawn() (position, velocity Vector2) {
	edge := Edge(s.rng.IntInRange(int(EdgeTop), int(EdgeLeft)))
	return s.SpawnOn(edge)
}

// SpawnOn computes a position beyond edge, pushed outward by a random
// offset, and a velocity whose component perpendicular to edge points
// inward. The component along edge is a small random drift.
func (s *Spawner) SpawnOn(edge Edge) (position, velocity Vector2) {
	offset := float64(s.offset.Sample(s.rng))
	x := float64(s.rng.IntInRange(0, int(s.bounds.Width)))
	y := float64(s.rng.IntInRange(0, int(s.bounds.Height)))
	speed := float64(s.inward.Sample(s.rng))
	drift := float64(s.rng.IntInRange(-s.drift, s.drift))

	switch edge {
	case EdgeTop:
		return Vector2{X: x, Y: -offset}, Vector2{X: drift, Y: speed}
	case EdgeRight:
		return Vector2{X: s.bounds.Width + offset, Y: y}, Vector2{X: -speed, Y: drift}
	case EdgeBottom:
		return Vector2{X: x, Y: s.bounds.Height + offset}, Vector2{X: drift, Y: -speed}
	default:
		return Vector2{X: -offset, Y: y}, Vector2{X: speed, Y: drift}
	}
}
