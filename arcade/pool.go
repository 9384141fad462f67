package arcade

import "fmt"

// Pool is a fixed arena of bodies of one kind. Slots toggle between alive
// and dead; the arena never grows or shrinks after NewPool.
type Pool struct {
	kind  Kind
	slots []Body
}

// NewPool allocates capacity slots and hands each to init. Slots start dead
// unless init revives them.
func NewPool(kind Kind, capacity int, init func(slot int, b *Body)) *Pool {
	if capacity < 0 {
		panic(fmt.Sprintf("arcade: negative %s pool capacity %d", kind, capacity))
	}
	p := &Pool{
		kind:  kind,
		slots: make([]Body, capacity),
	}
	for i := range p.slots {
		p.slots[i].Kind = kind
		if init != nil {
			init(i, &p.slots[i])
		}
	}
	return p
}

func (p *Pool) Kind() Kind {
	return p.kind
}

func (p *Pool) Cap() int {
	return len(p.slots)
}

func (p *Pool) Live() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Alive {
			n++
		}
	}
	return n
}

func (p *Pool) At(slot int) *Body {
	return &p.slots[slot]
}

func (p *Pool) Kill(slot int) {
	p.slots[slot].Kill()
}

// Each calls fn for every live slot in index order. Slots killed by fn are
// not revisited.
func (p *Pool) Each(fn func(slot int, b *Body)) {
	for i := range p.slots {
		if p.slots[i].Alive {
			fn(i, &p.slots[i])
		}
	}
}

// Recycle revives the first dead slot at position. The velocity is only
// written when non-nil. ok is false when every slot is alive, in which case
// nothing changes.
func (p *Pool) Recycle(position Vector2, velocity *Vector2) (slot int, ok bool) {
	for i := range p.slots {
		b := &p.slots[i]
		if b.Alive {
			continue
		}
		b.Alive = true
		b.Position = position
		if velocity != nil {
			b.Velocity = *velocity
		}
		return i, true
	}
	return -1, false
}
