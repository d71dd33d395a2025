package bdeque

import "github.com/npillmayer/bdeque/ring"

// block is a node of the block list. Real blocks own a ring of capacity sup
// and hold 0 < size < sup elements at the boundaries of public operations.
// The tail sentinel has no ring and never holds elements.
type block[T any] struct {
	data *ring.Ring[T] // nil for the tail sentinel and for released blocks
	size int
	prev *block[T]
	next *block[T]
}

func (b *block[T]) isTail() bool {
	return b.data == nil
}

// at returns the element at logical offset i, which must be in [0, size).
func (b *block[T]) at(i int) T {
	assert(i >= 0 && i < b.size, "block.at: offset out of range")
	v, err := b.data.Get(i)
	assert(err == nil, "block.at: ring rejected offset")
	return v
}

func (b *block[T]) put(i int, v T) {
	err := b.data.Set(i, v)
	assert(err == nil, "block.put: ring rejected offset")
}

func (b *block[T]) release(i int) {
	err := b.data.Clear(i)
	assert(err == nil, "block.release: ring rejected offset")
}

// drop detaches b's storage. Stale iterators still referencing b will fail
// their offset check.
func (b *block[T]) drop() {
	b.data = nil
	b.size = 0
	b.prev, b.next = nil, nil
}

func link[T any](a, b *block[T]) {
	if a != nil {
		a.next = b
	}
	if b != nil {
		b.prev = a
	}
}

// --- Block list ------------------------------------------------------------

// blockList is the chain of real blocks, terminated by the tail sentinel.
// An empty list consists of the tail only, i.e. head == tail.
type blockList[T any] struct {
	head *block[T]
	tail *block[T]
	inf  int
	sup  int
}

func (l *blockList[T]) init(inf int) {
	l.tail = &block[T]{}
	l.head = l.tail
	l.inf = inf
	l.sup = 4 * inf
}

func (l *blockList[T]) empty() bool {
	return l.head == l.tail
}

func (l *blockList[T]) last() *block[T] {
	return l.tail.prev
}

func (l *blockList[T]) newBlock() *block[T] {
	return &block[T]{data: ring.New[T](l.sup)}
}

// linkBefore links the fresh block b directly in front of at.
func (l *blockList[T]) linkBefore(b, at *block[T]) {
	link(at.prev, b)
	link(b, at)
	if l.head == at {
		l.head = b
	}
}

// unlink removes the real block b from the list and releases its storage.
func (l *blockList[T]) unlink(b *block[T]) {
	assert(!b.isTail(), "unlink called for tail sentinel")
	if l.head == b {
		l.head = b.next
	}
	link(b.prev, b.next)
	b.drop()
}

// count returns the number of real blocks.
func (l *blockList[T]) count() int {
	n := 0
	for b := l.head; !b.isTail(); b = b.next {
		n++
	}
	return n
}

// locate finds the block holding the element at global index idx and the
// logical offset of the element in that block. Indices outside of the
// sequence map to the tail sentinel.
func (l *blockList[T]) locate(idx int) (*block[T], int) {
	if idx < 0 {
		return l.tail, 0
	}
	total := 0
	for b := l.head; !b.isTail(); b = b.next {
		if idx < total+b.size {
			return b, idx - total
		}
		total += b.size
	}
	return l.tail, 0
}

// --- Mutations -------------------------------------------------------------

func (l *blockList[T]) pushBack(v T) {
	b := l.last()
	if b == nil {
		b = l.newBlock()
		l.linkBefore(b, l.tail)
	}
	b.put(b.size, v)
	b.size++
	if b.size == l.sup {
		l.split(b)
	}
}

func (l *blockList[T]) pushFront(v T) {
	b := l.head
	if b.isTail() {
		b = l.newBlock()
		l.linkBefore(b, l.tail)
	}
	b.data.RotateLeft()
	b.put(0, v)
	b.size++
	if b.size == l.sup {
		l.split(b)
	}
}

func (l *blockList[T]) popBack() T {
	b := l.last()
	assert(b != nil, "popBack on empty block list")
	v := b.at(b.size - 1)
	b.size--
	b.release(b.size)
	if b.prev != nil && (b.size == 0 || b.prev.size+b.size < l.inf) {
		l.merge(b.prev, b)
	} else if b.size == 0 {
		l.unlink(b)
	}
	return v
}

func (l *blockList[T]) popFront() T {
	b := l.head
	assert(!b.isTail(), "popFront on empty block list")
	v := b.at(0)
	b.release(0)
	b.data.RotateRight()
	b.size--
	if !b.next.isTail() && (b.size == 0 || b.size+b.next.size < l.inf) {
		l.merge(b, b.next)
	} else if b.size == 0 {
		l.unlink(b)
	}
	return v
}

// insertAt inserts v in front of the element at offset cur of b, shifting the
// tail of the block by one slot. It returns the block and offset where v
// ends up, which may differ from (b, cur) if b had to be split.
func (l *blockList[T]) insertAt(b *block[T], cur int, v T) (*block[T], int) {
	assert(!b.isTail() && cur >= 0 && cur <= b.size, "insertAt: illegal position")
	for t := b.size; t > cur; t-- {
		b.put(t, b.at(t-1))
	}
	b.put(cur, v)
	b.size++
	if b.size == l.sup {
		b2 := l.split(b)
		if cur >= b.size {
			return b2, cur - b.size
		}
	}
	return b, cur
}

// eraseAt removes the element at offset cur of b. The predecessor is checked
// for a merge first, then the successor.
func (l *blockList[T]) eraseAt(b *block[T], cur int) T {
	v := b.at(cur)
	for t := cur; t < b.size-1; t++ {
		b.put(t, b.at(t+1))
	}
	b.size--
	b.release(b.size)
	switch {
	case b.prev != nil && (b.size == 0 || b.prev.size+b.size < l.inf):
		l.merge(b.prev, b)
	case !b.next.isTail() && (b.size == 0 || b.size+b.next.size < l.inf):
		l.merge(b, b.next)
	case b.size == 0:
		l.unlink(b)
	}
	return v
}

// --- Rebalancing -----------------------------------------------------------

// split moves the upper half of b into a new block linked directly after b
// and returns the new block.
func (l *blockList[T]) split(b *block[T]) *block[T] {
	c := b.size / 2
	b2 := l.newBlock()
	for i := c; i < b.size; i++ {
		b2.put(i-c, b.at(i))
		b.release(i)
	}
	b2.size = b.size - c
	b.size = c
	link(b2, b.next)
	link(b, b2)
	tracer().Debugf("bdeque: split block into %d + %d", b.size, b2.size)
	return b2
}

// merge combines the neighbouring blocks a and b, where a precedes b, and
// returns the surviving block. Elements of the smaller block are copied into
// the larger one.
func (l *blockList[T]) merge(a, b *block[T]) *block[T] {
	assert(a.next == b && !a.isTail() && !b.isTail(), "merge: blocks are not adjacent real blocks")
	assert(a.size+b.size < l.sup, "merge: merged block would overflow")
	tracer().Debugf("bdeque: merge blocks of %d + %d", a.size, b.size)
	if a.size > b.size {
		for i := 0; i < b.size; i++ {
			a.put(a.size+i, b.at(i))
		}
		a.size += b.size
		l.unlink(b)
		return a
	}
	b.data.Rotate(-a.size)
	for i := 0; i < a.size; i++ {
		b.put(i, a.at(i))
	}
	b.size += a.size
	l.unlink(a)
	return b
}

// clear releases every real block.
func (l *blockList[T]) clear() {
	for b := l.head; !b.isTail(); {
		next := b.next
		b.drop()
		b = next
	}
	l.head = l.tail
	l.tail.prev = nil
}
