package arcade

import "time"

// Mover integrates the velocity of every live body over dt.
type Mover interface {
	Move(r *Round, dt time.Duration)
}

// EulerMover is the plain position += velocity * dt integrator.
type EulerMover struct{}

func (EulerMover) Move(r *Round, dt time.Duration) {
	sec := dt.Seconds()
	step := func(b *Body) {
		b.Position = b.Position.Add(b.Velocity.Mul(sec))
	}
	if r.Player.Alive {
		step(&r.Player.Body)
	}
	r.Enemies.Each(func(_ int, b *Body) {
		step(b)
	})
}
