package arcade

import (
	"fmt"
	"time"
)

// Round is the context of one life of the player: every pass of the frame
// reads and mutates it, and nothing outlives it except the Result handed to
// the host.
type Round struct {
	cfg      Config
	bounds   Rect
	rng      RNG
	host     Host
	sched    *Scheduler
	mover    Mover
	detector Detector
	spawner  *Spawner

	Player  *Player
	Enemies *Pool
	Food    *Pool

	Frame uint64

	result     Result
	gameOver   TimerID
	onGameOver func(Result)
}

func newRound(cfg Config, rng RNG, host Host, mover Mover, detector Detector, onGameOver func(Result)) *Round {
	r := &Round{
		cfg:        cfg,
		bounds:     cfg.Bounds(),
		rng:        rng,
		host:       host,
		sched:      NewScheduler(),
		mover:      mover,
		detector:   detector,
		spawner:    NewSpawner(cfg, rng),
		onGameOver: onGameOver,
	}
	r.Player = newPlayer(cfg)

	r.Enemies = NewPool(KindEnemy, cfg.EnemyPool.Sample(rng), func(_ int, b *Body) {
		b.Size = cfg.BaseSize
		b.Scale = float64(cfg.EnemyScaleTenths.Sample(rng)) / 10
		b.Position, b.Velocity = r.spawner.Spawn()
		b.Alive = true
	})

	r.Food = NewPool(KindFood, cfg.FoodPool.Sample(rng), func(_ int, b *Body) {
		b.Size = cfg.BaseSize
		b.Scale = cfg.FoodScale
		b.Position = r.RandomPoint()
		b.Alive = true
	})

	return r
}

func (r *Round) Bounds() Rect {
	return r.bounds
}

func (r *Round) Scheduler() *Scheduler {
	return r.sched
}

// Result is the outcome captured at the moment of death. It is the zero
// value while the player lives.
func (r *Round) Result() Result {
	return r.result
}

func (r *Round) RandomPoint() Vector2 {
	return Vector2{
		X: float64(r.rng.IntInRange(0, int(r.bounds.Width))),
		Y: float64(r.rng.IntInRange(0, int(r.bounds.Height))),
	}
}

// Move runs the mover and keeps the player inside the world. A wall stops
// the player on that axis.
func (r *Round) Move(dt time.Duration) {
	r.mover.Move(r, dt)

	p := r.Player
	if !p.Alive {
		return
	}
	pos, cx, cy := r.bounds.Clamp(p.Position, p.Extent()/2)
	p.Position = pos
	if cx {
		p.Velocity.X = 0
	}
	if cy {
		p.Velocity.Y = 0
	}
}

// Resolve tests the player against every live member of the handler's
// pool and resolves each contact. It stops as soon as the player dies and
// returns the number of contacts resolved.
func (r *Round) Resolve(h CollisionHandler) int {
	pool := h.Pool(r)
	n := 0
	for i := 0; i < pool.Cap() && r.Player.Alive; i++ {
		other := pool.At(i)
		if !other.Alive || !r.detector.Touching(&r.Player.Body, other) {
			continue
		}
		h.Resolve(r, other)
		n++
	}
	return n
}

// Sweep kills every live enemy that left the world by more than the sweep
// margin and returns how many were killed.
func (r *Round) Sweep() int {
	n := 0
	r.Enemies.Each(func(_ int, b *Body) {
		if !r.bounds.Contains(b.Position, r.cfg.SweepMargin) {
			b.Kill()
			n++
		}
	})
	return n
}

func (r *Round) Grow() int {
	return r.Player.ApplyGrowth(r.cfg.GrowthStep)
}

// Replenished reports the slots revived by one Replenish call, -1 when
// nothing was revived.
type Replenished struct {
	Food  int
	Enemy int
}

// Replenish revives at most one food and one enemy when their live counts
// are below the configured floors.
func (r *Round) Replenish() Replenished {
	out := Replenished{Food: -1, Enemy: -1}
	if r.Food.Live() < r.cfg.FoodFloor {
		if slot, ok := r.Food.Recycle(r.RandomPoint(), nil); ok {
			out.Food = slot
		}
	}
	if r.Enemies.Live() < r.cfg.EnemyFloor {
		pos, vel := r.spawner.Spawn()
		if slot, ok := r.Enemies.Recycle(pos, &vel); ok {
			out.Enemy = slot
		}
	}
	return out
}

func (r *Round) killPlayer() {
	p := r.Player
	if !p.Alive {
		panic("arcade: player killed twice")
	}
	if r.gameOver != 0 {
		panic(fmt.Sprintf("arcade: game over already scheduled as timer %d", r.gameOver))
	}
	p.Kill()
	p.Target = nil
	r.result = Result{
		Score:   p.Score,
		Frames:  r.Frame,
		Elapsed: r.sched.Now(),
	}

	r.host.Explode(p.Position)
	r.host.PlaySound(SoundExplosion)

	result := r.result
	r.gameOver = r.sched.After(r.cfg.GameOverDelay, func() {
		r.onGameOver(result)
	})
}
