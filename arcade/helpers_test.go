package arcade

import (
	"math"
	"testing"
)

// seqRNG replays vals, clamped into the requested range, then repeats the
// last value.
type seqRNG struct {
	vals []int
	i    int
}

func (s *seqRNG) IntInRange(min, max int) int {
	v := min
	if len(s.vals) > 0 {
		idx := s.i
		if idx >= len(s.vals) {
			idx = len(s.vals) - 1
		}
		v = s.vals[idx]
		s.i++
	}
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

type transition struct {
	name    string
	payload any
}

type recordingHost struct {
	sounds      []Sound
	explosions  []Vector2
	transitions []transition
}

func (h *recordingHost) PlaySound(id Sound) {
	h.sounds = append(h.sounds, id)
}

func (h *recordingHost) Explode(at Vector2) {
	h.explosions = append(h.explosions, at)
}

func (h *recordingHost) Transition(name string, payload any) {
	h.transitions = append(h.transitions, transition{name: name, payload: payload})
}

func (h *recordingHost) count(id Sound) int {
	n := 0
	for _, s := range h.sounds {
		if s == id {
			n++
		}
	}
	return n
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// testRound builds a round with pools of the given capacities, every member
// dead and parked at the origin, so tests can place bodies explicitly.
func testRound(t *testing.T, enemies, food int) (*Round, *recordingHost) {
	t.Helper()
	cfg := Config{
		EnemyPool: Range{Min: enemies, Max: enemies},
		FoodPool:  Range{Min: food, Max: food},
	}.WithDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	host := &recordingHost{}
	r := newRound(cfg, NewRNG(1), host, EulerMover{}, AABBDetector{}, func(Result) {})
	for _, p := range []*Pool{r.Enemies, r.Food} {
		for i := 0; i < p.Cap(); i++ {
			p.Kill(i)
			p.At(i).Position = Vector2{}
		}
	}
	return r, host
}

// place revives slot of pool at pos with the given scale and no velocity.
func place(p *Pool, slot int, pos Vector2, scale float64) *Body {
	b := p.At(slot)
	b.Alive = true
	b.Position = pos
	b.Velocity = Vector2{}
	b.Scale = scale
	return b
}
