package gobble

import (
	"image/color"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rhpo/gobble/arcade"
)

type Particle struct {
	Position arcade.Vector2
	Velocity arcade.Vector2
	Age      time.Duration
	Lifespan time.Duration
}

func (p Particle) Alive() bool {
	return p.Age < p.Lifespan
}

// Alpha fades linearly from 1 at birth to 0 at the end of the lifespan.
func (p Particle) Alpha() float64 {
	if p.Lifespan <= 0 {
		return 0
	}
	return max(0, 1-float64(p.Age)/float64(p.Lifespan))
}

type ParticleProps struct {
	Count    int
	Speed    int
	Lifespan time.Duration
	Size     float64
	Color    color.Color
}

// ParticleSystem runs one-shot bursts on the frame clock.
type ParticleSystem struct {
	props     ParticleProps
	rng       arcade.RNG
	particles []Particle
}

func NewParticleSystem(rng arcade.RNG, props *ParticleProps) *ParticleSystem {
	if props == nil {
		props = &ParticleProps{}
	}
	p := *props
	if p.Count == 0 {
		p.Count = 100
	}
	if p.Speed == 0 {
		p.Speed = 200
	}
	if p.Lifespan == 0 {
		p.Lifespan = 1000 * time.Millisecond
	}
	if p.Size == 0 {
		p.Size = 4
	}
	if p.Color == nil {
		p.Color = ColorParticle
	}

	return &ParticleSystem{props: p, rng: rng}
}

// Burst emits Count particles at the given point, each with both velocity
// components drawn from [-Speed, Speed].
func (ps *ParticleSystem) Burst(at arcade.Vector2) {
	for range ps.props.Count {
		ps.particles = append(ps.particles, Particle{
			Position: at,
			Velocity: arcade.Vector2{
				X: float64(ps.rng.IntInRange(-ps.props.Speed, ps.props.Speed)),
				Y: float64(ps.rng.IntInRange(-ps.props.Speed, ps.props.Speed)),
			},
			Lifespan: ps.props.Lifespan,
		})
	}
}

func (ps *ParticleSystem) Update(dt time.Duration) {
	for i := range ps.particles {
		p := &ps.particles[i]
		p.Position = p.Position.Add(p.Velocity.Mul(dt.Seconds()))
		p.Age += dt
	}
	ps.particles = slices.DeleteFunc(ps.particles, func(p Particle) bool {
		return !p.Alive()
	})
}

func (ps *ParticleSystem) Live() int {
	return len(ps.particles)
}

func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

func (ps *ParticleSystem) Draw(screen *ebiten.Image, cam *Camera) {
	size := float32(ps.props.Size)
	for _, p := range ps.particles {
		at := p.Position
		if cam != nil {
			at = cam.ToScreen(at)
		}
		vector.DrawFilledRect(screen, float32(at.X)-size/2, float32(at.Y)-size/2, size, size,
			fade(ps.props.Color, p.Alpha()), false)
	}
}
