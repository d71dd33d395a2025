package bdeque

import "fmt"

// Iterator denotes a position in a deque.
//
// An iterator caches the block and in-block offset of its position together
// with the global index. The zero value is not bound to any deque and cannot
// be dereferenced.
type Iterator[T any] struct {
	owner *Deque[T]
	node  *block[T]
	cur   int // logical offset within node
	idx   int // global 0-based index
}

// Index returns the global position of the iterator.
func (it Iterator[T]) Index() int {
	return it.idx
}

// IsEnd reports whether the iterator is positioned one past the last element.
func (it Iterator[T]) IsEnd() bool {
	return it.owner != nil && it.idx == it.owner.n
}

// Equal reports whether it and other belong to the same deque and denote the
// same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.owner == other.owner && it.idx == other.idx
}

// Distance returns the number of steps from other to it. Both iterators have
// to belong to the same deque.
func (it Iterator[T]) Distance(other Iterator[T]) (int, error) {
	if it.owner == nil || it.owner != other.owner {
		return 0, fmt.Errorf("%w: distance between iterators of different deques", ErrInvalidIterator)
	}
	return it.idx - other.idx, nil
}

// Next moves the iterator one element towards the back. Moving past End is
// undefined and will be rejected on dereference.
func (it *Iterator[T]) Next() {
	if it.node == nil {
		return
	}
	it.cur++
	it.idx++
	if it.cur >= it.node.size && it.node.next != nil {
		it.node = it.node.next
		it.cur = 0
	}
}

// Prev moves the iterator one element towards the front. Moving before the
// first element is undefined and will be rejected on dereference.
func (it *Iterator[T]) Prev() {
	if it.node == nil {
		return
	}
	if it.cur == 0 && it.node.prev != nil {
		it.node = it.node.prev
		it.cur = it.node.size
	}
	it.cur--
	it.idx--
}

// Add returns an iterator n positions further towards the back (or towards the
// front, for negative n). The block is re-located by a linear scan over the
// blocks of the owning deque.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.idx += n
	if it.owner == nil {
		return it
	}
	it.node, it.cur = it.owner.blocks.locate(it.idx)
	return it
}

// Sub is a shortcut for Add(-n).
func (it Iterator[T]) Sub(n int) Iterator[T] {
	return it.Add(-n)
}

// Value returns the element denoted by it.
func (it Iterator[T]) Value() (T, error) {
	if err := it.check(); err != nil {
		var zero T
		return zero, err
	}
	return it.node.at(it.cur), nil
}

// Ref returns a pointer to the element denoted by it, for member access. The
// pointer is valid until the next mutation of the deque.
func (it Iterator[T]) Ref() (*T, error) {
	if err := it.check(); err != nil {
		return nil, err
	}
	p, err := it.node.data.Ref(it.cur)
	assert(err == nil, "iterator ref: ring rejected offset")
	return p, nil
}

// Set replaces the element denoted by it.
func (it Iterator[T]) Set(v T) error {
	if err := it.check(); err != nil {
		return err
	}
	it.node.put(it.cur, v)
	return nil
}

func (it Iterator[T]) check() error {
	if it.owner == nil {
		return fmt.Errorf("%w: iterator is not bound to a deque", ErrInvalidIterator)
	}
	if it.idx < 0 || it.idx >= it.owner.n {
		return fmt.Errorf("%w: index %d, length %d", ErrInvalidIterator, it.idx, it.owner.n)
	}
	if it.node == nil || it.node.isTail() || it.cur < 0 || it.cur >= it.node.size {
		return fmt.Errorf("%w: iterator is stale", ErrInvalidIterator)
	}
	return nil
}
