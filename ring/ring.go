package ring

import "fmt"

// Ring is a fixed-capacity circular buffer of element slots.
//
// A ring does not track which slots are live; its owner does. Slots which are
// released should be cleared with Clear, so that the garbage collector may
// reclaim referenced memory.
type Ring[T any] struct {
	start int // rotation offset, always in [0, len(slots))
	slots []T
}

// New creates a ring with a fixed capacity. capacity has to be positive,
// otherwise New panics.
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		panic(fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity))
	}
	return &Ring[T]{slots: make([]T, capacity)}
}

// Cap returns the fixed number of slots of r.
func (r *Ring[T]) Cap() int {
	if r == nil {
		return 0
	}
	return len(r.slots)
}

// Start returns the physical slot of logical index 0.
func (r *Ring[T]) Start() int {
	return r.start
}

func (r *Ring[T]) phys(i int) int {
	p := r.start + i
	if p >= len(r.slots) {
		p -= len(r.slots)
	}
	return p
}

func (r *Ring[T]) check(i int) error {
	if r == nil || i < 0 || i >= len(r.slots) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfBounds, i)
	}
	return nil
}

// Get returns the element at logical index i.
func (r *Ring[T]) Get(i int) (T, error) {
	if err := r.check(i); err != nil {
		var zero T
		return zero, err
	}
	return r.slots[r.phys(i)], nil
}

// Set stores v at logical index i.
func (r *Ring[T]) Set(i int, v T) error {
	if err := r.check(i); err != nil {
		return err
	}
	r.slots[r.phys(i)] = v
	return nil
}

// Ref returns a pointer to the slot at logical index i. The pointer stays
// valid until the slot is overwritten or cleared.
func (r *Ring[T]) Ref(i int) (*T, error) {
	if err := r.check(i); err != nil {
		return nil, err
	}
	return &r.slots[r.phys(i)], nil
}

// Clear zeroes the slot at logical index i.
func (r *Ring[T]) Clear(i int) error {
	var zero T
	return r.Set(i, zero)
}

// RotateLeft moves the logical origin one slot backwards. The slot which was
// at logical index Cap()-1 becomes logical index 0.
func (r *Ring[T]) RotateLeft() {
	r.start--
	if r.start < 0 {
		r.start += len(r.slots)
	}
}

// RotateRight moves the logical origin one slot forward. The slot which was
// at logical index 1 becomes logical index 0.
func (r *Ring[T]) RotateRight() {
	r.start++
	if r.start >= len(r.slots) {
		r.start -= len(r.slots)
	}
}

// Rotate moves the logical origin by n slots. Negative values rotate left,
// positive values rotate right.
func (r *Ring[T]) Rotate(n int) {
	c := len(r.slots)
	r.start = ((r.start+n)%c + c) % c
}

// Reset clears every slot and moves the logical origin back to physical slot 0.
func (r *Ring[T]) Reset() {
	clear(r.slots)
	r.start = 0
}
