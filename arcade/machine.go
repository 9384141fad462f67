package arcade

import (
	"fmt"
	"time"
)

type State int

const (
	StatePreloading State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePreloading:
		return "preloading"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// Input is what the host captured during one frame. Pointer is non-nil
// only on the frame a click was issued, in world coordinates.
type Input struct {
	Pointer *Vector2
}

type Option func(*Machine)

func WithRNG(rng RNG) Option {
	return func(m *Machine) {
		m.rng = rng
	}
}

func WithMover(mover Mover) Option {
	return func(m *Machine) {
		m.mover = mover
	}
}

func WithDetector(detector Detector) Option {
	return func(m *Machine) {
		m.detector = detector
	}
}

// Machine owns the current round and drives it frame by frame.
type Machine struct {
	cfg      Config
	host     Host
	rng      RNG
	mover    Mover
	detector Detector

	state    State
	round    *Round
	rounds   int
	last     Result
	handlers []CollisionHandler
}

func NewMachine(cfg Config, host Host, opts ...Option) (*Machine, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arcade: %w", err)
	}
	if host == nil {
		host = NopHost{}
	}

	m := &Machine{
		cfg:      cfg,
		host:     host,
		state:    StatePreloading,
		handlers: []CollisionHandler{EnemyCollision{}, FoodOverlap{}},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = NewRNG(time.Now().UnixNano())
	}
	if m.mover == nil {
		m.mover = EulerMover{}
	}
	if m.detector == nil {
		m.detector = AABBDetector{}
	}
	return m, nil
}

func (m *Machine) Config() Config {
	return m.cfg
}

func (m *Machine) State() State {
	return m.state
}

// Round is nil outside of Playing.
func (m *Machine) Round() *Round {
	return m.round
}

func (m *Machine) Rounds() int {
	return m.rounds
}

// Last is the result of the most recently finished round.
func (m *Machine) Last() Result {
	return m.last
}

// Start builds a fresh round. It is valid after preloading and after a
// game over.
func (m *Machine) Start() {
	if m.state == StatePlaying {
		panic("arcade: start while a round is playing")
	}
	m.round = newRound(m.cfg, m.rng, m.host, m.mover, m.detector, m.gameOver)
	m.rounds++
	m.state = StatePlaying
}

// Update runs one frame. Outside of Playing it does nothing.
func (m *Machine) Update(in Input, dt time.Duration) {
	if m.state != StatePlaying {
		return
	}
	r := m.round
	if r == nil {
		panic("arcade: playing without a round")
	}

	r.Frame++
	r.sched.Advance(dt)
	if m.state != StatePlaying {
		return
	}

	if r.Player.Alive && in.Pointer != nil {
		r.Player.SteerTo(*in.Pointer)
	}
	r.Move(dt)

	for _, h := range m.handlers {
		r.Resolve(h)
	}
	if !r.Player.Alive {
		return
	}

	r.Sweep()
	r.Grow()
	r.Replenish()
}

func (m *Machine) gameOver(res Result) {
	if m.state != StatePlaying {
		panic(fmt.Sprintf("arcade: game over in state %s", m.state))
	}
	m.state = StateGameOver
	m.round = nil
	m.last = res
	m.host.Transition(StateMainMenu, res)
}
