package bdeque

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"slices"
)

// Deque is a double-ended queue organized as a linked list of blocks.
//
// A deque created by
//
//	Deque[T]{}
//
// is a valid object and behaves like an empty deque with default configuration.
// Deques must not be copied by value after first use, as the copy would share
// blocks with the original. Use Clone or Assign to get an independent copy.
type Deque[T any] struct {
	cfg    Config
	blocks blockList[T]
	n      int // cached sum of block sizes
}

// New creates an empty deque with default configuration.
func New[T any]() *Deque[T] {
	d := &Deque[T]{}
	d.init(DefaultConfig())
	return d
}

// NewWithConfig creates an empty deque with occupancy bounds taken from cfg.
func NewWithConfig[T any](cfg Config) (*Deque[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	d := &Deque[T]{}
	d.init(cfg.normalized())
	return d, nil
}

// FromSlice creates a deque holding copies of the elements of s, in order.
func FromSlice[T any](s []T) *Deque[T] {
	d := New[T]()
	for _, v := range s {
		d.blocks.pushBack(v)
	}
	d.n = len(s)
	return d
}

// Collect collects values from seq into a new deque and returns it.
func Collect[T any](seq iter.Seq[T]) *Deque[T] {
	d := New[T]()
	for v := range seq {
		d.PushBack(v)
	}
	return d
}

func (d *Deque[T]) init(cfg Config) {
	d.cfg = cfg
	d.blocks.init(cfg.Inf)
	d.n = 0
}

// lazy initializes the zero value.
func (d *Deque[T]) lazy() {
	if d.blocks.tail == nil {
		d.init(d.cfg.normalized())
	}
}

// Config returns the occupancy configuration of d.
func (d *Deque[T]) Config() Config {
	if d == nil {
		return DefaultConfig()
	}
	return d.cfg.normalized()
}

// Len returns the number of elements in the deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.n
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.Len() == 0
}

// BlockCount returns the number of real blocks, not counting the tail sentinel.
func (d *Deque[T]) BlockCount() int {
	if d == nil || d.blocks.tail == nil {
		return 0
	}
	return d.blocks.count()
}

// --- Element access --------------------------------------------------------

// At returns the element at position pos. Locating the element is linear in
// the number of blocks.
func (d *Deque[T]) At(pos int) (T, error) {
	var zero T
	if pos < 0 || pos >= d.Len() {
		return zero, fmt.Errorf("%w: position %d, length %d", ErrOutOfBounds, pos, d.Len())
	}
	b, cur := d.blocks.locate(pos)
	return b.at(cur), nil
}

// Set replaces the element at position pos.
func (d *Deque[T]) Set(pos int, v T) error {
	if pos < 0 || pos >= d.Len() {
		return fmt.Errorf("%w: position %d, length %d", ErrOutOfBounds, pos, d.Len())
	}
	b, cur := d.blocks.locate(pos)
	b.put(cur, v)
	return nil
}

// Front returns the first element.
func (d *Deque[T]) Front() (T, error) {
	if d.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	return d.blocks.head.at(0), nil
}

// Back returns the last element.
func (d *Deque[T]) Back() (T, error) {
	if d.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	b := d.blocks.last()
	return b.at(b.size - 1), nil
}

// --- Iterators -------------------------------------------------------------

// Begin returns an iterator at the first element, which equals End for an
// empty deque.
func (d *Deque[T]) Begin() Iterator[T] {
	d.lazy()
	return Iterator[T]{owner: d, node: d.blocks.head, cur: 0, idx: 0}
}

// End returns the iterator one past the last element. It always refers to the
// tail sentinel.
func (d *Deque[T]) End() Iterator[T] {
	d.lazy()
	return Iterator[T]{owner: d, node: d.blocks.tail, cur: 0, idx: d.n}
}

// IteratorAt returns an iterator at position pos. pos may equal Len(), in
// which case End is returned.
func (d *Deque[T]) IteratorAt(pos int) (Iterator[T], error) {
	d.lazy()
	if pos < 0 || pos > d.n {
		return Iterator[T]{}, fmt.Errorf("%w: position %d, length %d", ErrOutOfBounds, pos, d.n)
	}
	b, cur := d.blocks.locate(pos)
	return Iterator[T]{owner: d, node: b, cur: cur, idx: pos}, nil
}

// All returns an iterator over positions and elements, front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil || d.blocks.tail == nil {
			return
		}
		i := 0
		for b := d.blocks.head; !b.isTail(); b = b.next {
			for j := 0; j < b.size; j++ {
				if !yield(i, b.at(j)) {
					return
				}
				i++
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over positions and elements, back to front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil || d.blocks.tail == nil {
			return
		}
		i := d.n - 1
		for b := d.blocks.last(); b != nil; b = b.prev {
			for j := b.size - 1; j >= 0; j-- {
				if !yield(i, b.at(j)) {
					return
				}
				i--
			}
		}
	}
}

// Slice returns the elements of d as a newly allocated slice.
func (d *Deque[T]) Slice() []T {
	s := make([]T, 0, d.Len())
	for _, v := range d.All() {
		s = append(s, v)
	}
	return s
}

// Equal reports whether two deques hold equal elements in the same order.
func Equal[T comparable](a, b *Deque[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	return slices.Equal(a.Slice(), b.Slice())
}

// --- Mutation --------------------------------------------------------------

// PushBack appends v at the back of the deque.
func (d *Deque[T]) PushBack(v T) {
	d.lazy()
	d.blocks.pushBack(v)
	d.n++
}

// PushFront prepends v at the front of the deque.
func (d *Deque[T]) PushFront(v T) {
	d.lazy()
	d.blocks.pushFront(v)
	d.n++
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, error) {
	if d.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	v := d.blocks.popBack()
	d.n--
	return v, nil
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, error) {
	if d.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	v := d.blocks.popFront()
	d.n--
	return v, nil
}

// Insert inserts v before the element denoted by pos and returns an iterator
// at the inserted value. pos may be End(). The position is taken from the
// index of pos, even if pos has been obtained before other mutations. All
// other iterators of d are invalidated.
func (d *Deque[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	d.lazy()
	if pos.owner != d {
		return Iterator[T]{}, fmt.Errorf("%w: iterator belongs to another deque", ErrInvalidIterator)
	}
	if pos.idx < 0 || pos.idx > d.n {
		return Iterator[T]{}, fmt.Errorf("%w: index %d, length %d", ErrInvalidIterator, pos.idx, d.n)
	}
	switch pos.idx {
	case 0:
		d.PushFront(v)
		return d.Begin(), nil
	case d.n:
		d.PushBack(v)
		it := d.End()
		it.Prev()
		return it, nil
	}
	b, cur := d.resolve(pos)
	b, cur = d.blocks.insertAt(b, cur, v)
	d.n++
	return Iterator[T]{owner: d, node: b, cur: cur, idx: pos.idx}, nil
}

// Erase removes the element denoted by pos and returns an iterator at the
// following element, or End() if the last element has been removed. All other
// iterators of d are invalidated.
func (d *Deque[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	if d.Empty() {
		return Iterator[T]{}, ErrEmptyContainer
	}
	if pos.owner != d {
		return Iterator[T]{}, fmt.Errorf("%w: iterator belongs to another deque", ErrInvalidIterator)
	}
	if pos.idx < 0 || pos.idx >= d.n {
		return Iterator[T]{}, fmt.Errorf("%w: index %d, length %d", ErrInvalidIterator, pos.idx, d.n)
	}
	switch pos.idx {
	case 0:
		d.blocks.popFront()
		d.n--
		return d.Begin(), nil
	case d.n - 1:
		d.blocks.popBack()
		d.n--
		return d.End(), nil
	}
	b, cur := d.resolve(pos)
	d.blocks.eraseAt(b, cur)
	d.n--
	b, cur = d.blocks.locate(pos.idx)
	return Iterator[T]{owner: d, node: b, cur: cur, idx: pos.idx}, nil
}

// resolve returns the block and offset of the element an iterator of d
// denotes. The global index is authoritative: a cached block may still look
// plausible after an intervening mutation while denoting a different element.
func (d *Deque[T]) resolve(pos Iterator[T]) (*block[T], int) {
	return d.blocks.locate(pos.idx)
}

// Clear removes all elements. Clearing an empty deque is a no-op.
func (d *Deque[T]) Clear() {
	d.lazy()
	if d.n > 0 {
		tracer().Debugf("bdeque: clear %d elements in %d blocks", d.n, d.blocks.count())
	}
	d.blocks.clear()
	d.n = 0
}

// --- Copying ---------------------------------------------------------------

// Clone returns a deep copy of d. Every block is duplicated; elements are
// copied by assignment.
func (d *Deque[T]) Clone() *Deque[T] {
	return d.CloneFunc(nil)
}

// CloneFunc returns a deep copy of d, using cp to copy each element. If cp is
// nil, elements are copied by assignment.
func (d *Deque[T]) CloneFunc(cp func(T) T) *Deque[T] {
	c := &Deque[T]{}
	if d == nil {
		c.init(DefaultConfig())
		return c
	}
	d.lazy()
	c.init(d.cfg)
	for b := d.blocks.head; !b.isTail(); b = b.next {
		nb := c.blocks.newBlock()
		for i := 0; i < b.size; i++ {
			v := b.at(i)
			if cp != nil {
				v = cp(v)
			}
			nb.put(i, v)
		}
		nb.size = b.size
		c.blocks.linkBefore(nb, c.blocks.tail)
	}
	c.n = d.n
	return c
}

// Assign replaces the content and configuration of d with a deep copy of
// other. Assigning a deque to itself is a no-op; assigning nil clears d.
func (d *Deque[T]) Assign(other *Deque[T]) {
	if d == other {
		return
	}
	if other == nil {
		d.Clear()
		return
	}
	c := other.Clone()
	d.lazy()
	d.blocks.clear()
	d.cfg = c.cfg
	d.blocks.inf, d.blocks.sup = c.blocks.inf, c.blocks.sup
	if !c.blocks.empty() { // move the cloned blocks in front of our own tail
		link(c.blocks.last(), d.blocks.tail)
		d.blocks.head = c.blocks.head
	}
	d.n = c.n
}
