package engine

import (
	"errors"
	"math"
)

// ErrMissingFactory is returned when a pool is configured without a Create function
var ErrMissingFactory = errors.New("pool: missing create function")

// Poolable is the contract for objects recycled by Pool
// Set reinitializes the object in place and must leave it alive
type Poolable[P any] interface {
	Set(props P)
	Update(dt float64)
	IsAlive() bool
}

// PoolConfig configures a Pool
type PoolConfig[T any] struct {
	Create  func() T // Returns a fresh dead object
	MaxSize int      // Growth ceiling, 0 for unbounded
	Fill    bool     // Pre-create MaxSize objects
}

// Pool recycles a fixed set of object identities
//
// Layout:
//   - objects[:len-inUse] are dead, objects[len-inUse:] are alive
//   - Get takes the front (oldest dead) slot and rotates it to the back
//   - Update rotates newly dead objects to the front without reallocating
//
// Exhaustion at MaxSize is a silent no-op, callers observe it through InUse
type Pool[T Poolable[P], P any] struct {
	objects []T
	create  func() T
	maxSize int
	inUse   int
}

// NewPool creates a pool holding one dead object, or MaxSize objects when Fill is set
func NewPool[T Poolable[P], P any](cfg PoolConfig[T]) (*Pool[T, P], error) {
	if cfg.Create == nil {
		return nil, ErrMissingFactory
	}

	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = math.MaxInt
	}

	p := &Pool[T, P]{
		create:  cfg.Create,
		maxSize: maxSize,
	}

	n := 1
	if cfg.Fill && cfg.MaxSize > 0 {
		n = cfg.MaxSize
	}
	p.objects = make([]T, 0, n)
	for i := 0; i < n; i++ {
		p.objects = append(p.objects, p.create())
	}

	return p, nil
}

// Get reinitializes the oldest dead object with props and marks it in use
// Grows by doubling, bounded by MaxSize, when the front slot is alive
// Returns false without side effects when the pool is exhausted
func (p *Pool[T, P]) Get(props P) (T, bool) {
	if p.objects[0].IsAlive() {
		if len(p.objects) >= p.maxSize {
			var zero T
			return zero, false
		}

		size := len(p.objects)
		fresh := make([]T, 0, size*2)
		for x := 0; x < size && len(fresh)+size < p.maxSize; x++ {
			fresh = append(fresh, p.create())
		}
		p.objects = append(fresh, p.objects...)
	}

	obj := p.objects[0]
	obj.Set(props)

	last := len(p.objects) - 1
	copy(p.objects[:last], p.objects[1:])
	p.objects[last] = obj
	p.inUse++

	return obj, true
}

// Update advances every alive object, back to front
// Objects that die are rotated to index 0; survivors keep their relative order
func (p *Pool[T, P]) Update(dt float64) {
	i := len(p.objects) - 1
	index := max(len(p.objects)-p.inUse, 0)

	for i >= index {
		obj := p.objects[i]
		obj.Update(dt)

		if !obj.IsAlive() {
			copy(p.objects[1:i+1], p.objects[:i])
			p.objects[0] = obj
			p.inUse--
			index++
		} else {
			i--
		}
	}
}

// AliveObjects returns the alive suffix
// The slice aliases pool storage and is valid until the next Get, Update or Clear
func (p *Pool[T, P]) AliveObjects() []T {
	return p.objects[len(p.objects)-p.inUse:]
}

// Each visits alive objects from the back, matching render order
func (p *Pool[T, P]) Each(fn func(T)) {
	index := max(len(p.objects)-p.inUse, 0)
	for i := len(p.objects) - 1; i >= index; i-- {
		fn(p.objects[i])
	}
}

// Clear truncates the pool to a single fresh dead object
func (p *Pool[T, P]) Clear() {
	clear(p.objects)
	p.objects = p.objects[:0]
	p.objects = append(p.objects, p.create())
	p.inUse = 0
}

// Size returns the current capacity
func (p *Pool[T, P]) Size() int {
	return len(p.objects)
}

// MaxSize returns the growth ceiling, math.MaxInt when unbounded
func (p *Pool[T, P]) MaxSize() int {
	return p.maxSize
}

// InUse returns the alive count
func (p *Pool[T, P]) InUse() int {
	return p.inUse
}

// LastIndex returns the index of the most recently acquired object
func (p *Pool[T, P]) LastIndex() int {
	return len(p.objects) - 1
}

// At returns the object stored at index i, dead or alive
func (p *Pool[T, P]) At(i int) T {
	return p.objects[i]
}
