package gfx

import "fmt"

// Buffer is a handle to a vertex or index buffer. The zero value is invalid.
type Buffer struct{ ID uint32 }

// Image is a handle to a texture. The zero value is invalid.
type Image struct{ ID uint32 }

// Shader is a handle to a shader program. The zero value is invalid.
type Shader struct{ ID uint32 }

// Pipeline is a handle to a pipeline state object. The zero value is invalid.
type Pipeline struct{ ID uint32 }

// Handle ids pack a generation counter in the upper 16 bits and a
// 1-based slot index in the lower 16 bits.
const (
	slotShift = 16
	slotMask  = 1<<slotShift - 1
	maxPool   = slotMask - 1
)

func slotIndex(id uint32) int { return int(id & slotMask) }

func makeID(gen uint16, index int) uint32 { return uint32(gen)<<slotShift | uint32(index) }

type slot[T any] struct {
	gen   uint16
	state ResourceState
	res   T
}

// pool is a fixed-size resource pool. Released slots bump their generation
// so stale handles no longer resolve.
type pool[T any] struct {
	name  string
	slots []slot[T]
	free  []int
}

func newPool[T any](name string, size int) *pool[T] {
	size = min(size, maxPool)
	p := &pool[T]{
		name:  name,
		slots: make([]slot[T], size),
		free:  make([]int, 0, size),
	}
	// Pop order hands out slot 1 first.
	for i := size; i >= 1; i-- {
		p.free = append(p.free, i)
	}
	return p
}

func (p *pool[T]) alloc() (uint32, error) {
	if len(p.free) == 0 {
		return 0, fmt.Errorf("%s pool (%d slots): %w", p.name, len(p.slots), ErrPoolExhausted)
	}
	index := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	s := &p.slots[index-1]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.state = ResourceStateAlloc
	var zero T
	s.res = zero
	return makeID(s.gen, index), nil
}

func (p *pool[T]) lookup(id uint32) *slot[T] {
	index := slotIndex(id)
	if id == 0 || index < 1 || index > len(p.slots) {
		return nil
	}
	s := &p.slots[index-1]
	if s.state == ResourceStateInvalid || uint32(s.gen) != id>>slotShift {
		return nil
	}
	return s
}

func (p *pool[T]) release(id uint32) bool {
	s := p.lookup(id)
	if s == nil {
		return false
	}
	var zero T
	s.res = zero
	s.state = ResourceStateInvalid
	p.free = append(p.free, slotIndex(id))
	return true
}

func (p *pool[T]) state(id uint32) ResourceState {
	if s := p.lookup(id); s != nil {
		return s.state
	}
	return ResourceStateInvalid
}

// live returns the ids of all allocated slots in slot order.
func (p *pool[T]) live() []uint32 {
	var ids []uint32
	for i := range p.slots {
		s := &p.slots[i]
		if s.state != ResourceStateInvalid {
			ids = append(ids, makeID(s.gen, i+1))
		}
	}
	return ids
}

func (p *pool[T]) size() int { return len(p.slots) }

func (p *pool[T]) used() int { return len(p.slots) - len(p.free) }
