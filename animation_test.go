package gobble

import (
	"testing"
	"time"

	"github.com/rhpo/gobble/arcade"
)

func TestBurstDefaults(t *testing.T) {
	ps := NewParticleSystem(arcade.NewRNG(1), nil)
	at := arcade.Vector2{X: 50, Y: 60}
	ps.Burst(at)

	if ps.Live() != 100 {
		t.Fatalf("Live = %d, want 100", ps.Live())
	}
	for _, p := range ps.Particles() {
		if p.Position != at {
			t.Fatalf("particle born at %+v, want %+v", p.Position, at)
		}
		if p.Velocity.X < -200 || p.Velocity.X > 200 || p.Velocity.Y < -200 || p.Velocity.Y > 200 {
			t.Fatalf("velocity %+v outside [-200, 200]", p.Velocity)
		}
		if p.Lifespan != time.Second {
			t.Fatalf("lifespan %v, want 1s", p.Lifespan)
		}
	}
}

func TestParticlesMoveFadeAndExpire(t *testing.T) {
	ps := NewParticleSystem(arcade.NewRNG(1), &ParticleProps{Count: 3, Lifespan: 500 * time.Millisecond})
	ps.Burst(arcade.Vector2{})
	ps.particles[0].Velocity = arcade.Vector2{X: 100, Y: -40}

	ps.Update(250 * time.Millisecond)
	p := ps.Particles()[0]
	if p.Position != (arcade.Vector2{X: 25, Y: -10}) {
		t.Fatalf("position after 250ms = %+v, want (25, -10)", p.Position)
	}
	if a := p.Alpha(); a != 0.5 {
		t.Fatalf("alpha at half life = %v, want 0.5", a)
	}

	ps.Update(250 * time.Millisecond)
	if ps.Live() != 0 {
		t.Fatalf("Live = %d after the lifespan, want 0", ps.Live())
	}
}
