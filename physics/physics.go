// Package physics moves arcade bodies with box2d. Every live body is
// mirrored by a kinematic box2d body whose transform is written before a
// step and read back after it.
package physics

import (
	"math"
	"time"

	"github.com/ByteArena/box2d"

	"github.com/rhpo/gobble/arcade"
)

const (
	PTM = 8.0

	DefaultStep = time.Second / 60

	velocityIterations = 6
	positionIterations = 3

	// maxStepTranslation keeps each step below box2d's per-step
	// translation clamp, in meters.
	maxStepTranslation = 0.9 * box2d.B2_maxTranslation
)

func PixelsToMeters(p float64) float64 {
	return p / PTM
}

func MetersToPixels(m float64) float64 {
	return m * PTM
}

func toMeters(v arcade.Vector2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(PixelsToMeters(v.X), PixelsToMeters(v.Y))
}

func toPixels(v box2d.B2Vec2) arcade.Vector2 {
	return arcade.Vector2{X: MetersToPixels(v.X), Y: MetersToPixels(v.Y)}
}

type World struct {
	PhysicsWorld *box2d.B2World

	// step is the longest box2d step. Frames are split into equal steps no
	// longer than this, and shorter still when a body is fast enough to hit
	// box2d's per-step translation clamp.
	step time.Duration

	round  *arcade.Round
	bodies map[*arcade.Body]*box2d.B2Body
}

func NewWorld(step time.Duration) *World {
	if step <= 0 {
		step = DefaultStep
	}
	physicsWorld := box2d.MakeB2World(box2d.MakeB2Vec2(0, 0))
	physicsWorld.SetAllowSleeping(false)

	return &World{
		PhysicsWorld: &physicsWorld,
		step:         step,
		bodies:       make(map[*arcade.Body]*box2d.B2Body),
	}
}

// Move implements arcade.Mover.
func (w *World) Move(r *arcade.Round, dt time.Duration) {
	if r != w.round {
		w.Reset()
		w.round = r
	}

	movers := w.movers(r)
	for _, b := range movers {
		w.push(b)
	}

	if dt > 0 {
		n := math.Max(1, math.Ceil(dt.Seconds()/w.substep(movers)-1e-9))
		h := dt.Seconds() / n
		for i := 0.0; i < n; i++ {
			w.PhysicsWorld.Step(h, velocityIterations, positionIterations)
		}
	}

	for _, b := range movers {
		if b.Alive {
			b.Position = toPixels(w.bodies[b].GetPosition())
		}
	}
}

// substep is the longest step, in seconds, that moves the fastest live body
// less than maxStepTranslation. It never exceeds the configured step.
func (w *World) substep(movers []*arcade.Body) float64 {
	h := w.step.Seconds()
	var fastest float64
	for _, b := range movers {
		if b.Alive {
			fastest = math.Max(fastest, PixelsToMeters(b.Velocity.Length()))
		}
	}
	if fastest*h > maxStepTranslation {
		h = maxStepTranslation / fastest
	}
	return h
}

// Bodies is the number of box2d bodies mirroring the current round.
func (w *World) Bodies() int {
	return len(w.bodies)
}

// Reset destroys every mirrored body.
func (w *World) Reset() {
	for b, body := range w.bodies {
		w.PhysicsWorld.DestroyBody(body)
		delete(w.bodies, b)
	}
	w.round = nil
}

// movers lists the bodies with a velocity: the player and the enemies.
// Food never moves.
func (w *World) movers(r *arcade.Round) []*arcade.Body {
	out := make([]*arcade.Body, 0, r.Enemies.Cap()+1)
	out = append(out, &r.Player.Body)
	for i := 0; i < r.Enemies.Cap(); i++ {
		out = append(out, r.Enemies.At(i))
	}
	return out
}

func (w *World) push(b *arcade.Body) {
	body, ok := w.bodies[b]
	if !ok {
		body = w.createPhysicsBody(b)
		w.bodies[b] = body
	}

	if !b.Alive {
		body.SetActive(false)
		return
	}
	body.SetActive(true)
	body.SetTransform(toMeters(b.Position), 0)
	body.SetLinearVelocity(toMeters(b.Velocity))
	body.SetAwake(true)
}

func (w *World) createPhysicsBody(b *arcade.Body) *box2d.B2Body {
	bodyDef := box2d.MakeB2BodyDef()
	bodyDef.Type = box2d.B2BodyType.B2_kinematicBody
	bodyDef.AllowSleep = false
	bodyDef.FixedRotation = true
	bodyDef.Position = toMeters(b.Position)

	return w.PhysicsWorld.CreateBody(&bodyDef)
}
