package arcade

type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindFood
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindFood:
		return "food"
	}
	return "unknown"
}

// Body is a square entity centered on Position. Dead bodies stay in their
// pool and are ignored by every per-frame pass.
type Body struct {
	Kind     Kind
	Position Vector2
	Velocity Vector2
	Size     float64
	Scale    float64
	Alive    bool
}

// Extent is the edge length used both for overlap tests and for deciding
// who eats whom.
func (b *Body) Extent() float64 {
	return b.Size * b.Scale
}

func (b *Body) Kill() {
	b.Alive = false
	b.Velocity = Vector2{}
}

type Player struct {
	Body

	Speed         float64
	Target        *Vector2
	Score         int
	GrowthCharges int
}

func newPlayer(cfg Config) *Player {
	return &Player{
		Body: Body{
			Kind:     KindPlayer,
			Position: cfg.Bounds().Center(),
			Size:     cfg.BaseSize,
			Scale:    cfg.PlayerScale,
			Alive:    true,
		},
		Speed: cfg.PlayerSpeed,
	}
}

// SteerTo points the player at target with a constant speed. The velocity
// persists after the target is passed, until the next call.
func (p *Player) SteerTo(target Vector2) {
	p.Target = &target
	p.Velocity = target.Sub(p.Position).Normalize().Mul(p.Speed)
}

// QueueGrowth records one growth charge to be applied by ApplyGrowth.
func (p *Player) QueueGrowth() {
	p.GrowthCharges++
}

// ApplyGrowth drains every queued charge into the scale and returns how
// many were applied.
func (p *Player) ApplyGrowth(step float64) int {
	n := p.GrowthCharges
	if n == 0 {
		return 0
	}
	p.Scale += float64(n) * step
	p.GrowthCharges = 0
	return n
}
