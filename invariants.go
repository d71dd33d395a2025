package bdeque

import "fmt"

// Check validates the structural invariants of the block list.
//
// This checker is intentionally strict and meant to be used in tests. It
// verifies link symmetry, block occupancy 0 < size < SUP, the tail sentinel,
// and that the cached length equals the sum of all block sizes.
func (d *Deque[T]) Check() error {
	if d == nil {
		return fmt.Errorf("%w: nil deque", ErrCorrupted)
	}
	if d.blocks.tail == nil {
		if d.n != 0 {
			return fmt.Errorf("%w: uninitialized deque with length %d", ErrCorrupted, d.n)
		}
		return nil
	}
	l := &d.blocks
	if l.sup != 4*l.inf || l.inf != d.cfg.normalized().Inf {
		return fmt.Errorf("%w: bounds inf=%d sup=%d do not match config", ErrCorrupted, l.inf, l.sup)
	}
	tail := l.tail
	if !tail.isTail() || tail.size != 0 || tail.next != nil {
		return fmt.Errorf("%w: tail sentinel is not empty or has a successor", ErrCorrupted)
	}
	if l.head == nil || l.head.prev != nil {
		return fmt.Errorf("%w: head is missing or has a predecessor", ErrCorrupted)
	}
	total, blocks := 0, 0
	var prev *block[T]
	for b := l.head; b != tail; b = b.next {
		if b == nil {
			return fmt.Errorf("%w: block chain ends before tail sentinel", ErrCorrupted)
		}
		if blocks > d.n {
			return fmt.Errorf("%w: more blocks than elements, cycle suspected", ErrCorrupted)
		}
		if b.isTail() {
			return fmt.Errorf("%w: block %d has no storage", ErrCorrupted, blocks)
		}
		if b.data.Cap() != l.sup {
			return fmt.Errorf("%w: block %d has capacity %d, expected %d", ErrCorrupted, blocks, b.data.Cap(), l.sup)
		}
		if b.size <= 0 || b.size >= l.sup {
			return fmt.Errorf("%w: block %d has size %d outside (0, %d)", ErrCorrupted, blocks, b.size, l.sup)
		}
		if b.prev != prev {
			return fmt.Errorf("%w: block %d has inconsistent back link", ErrCorrupted, blocks)
		}
		total += b.size
		blocks++
		prev = b
	}
	if tail.prev != prev {
		return fmt.Errorf("%w: tail sentinel has inconsistent back link", ErrCorrupted)
	}
	if total != d.n {
		return fmt.Errorf("%w: length %d differs from sum of block sizes %d", ErrCorrupted, d.n, total)
	}
	return nil
}

// BlockInfo describes one block of a deque.
type BlockInfo struct {
	Index int // position of the block in the block list
	First int // global index of the block's first element
	Size  int // number of elements in the block
	Start int // rotation offset of the block's circular buffer
}

// Layout returns a description of all real blocks of d, front to back.
// It is meant for debugging and visualization.
func (d *Deque[T]) Layout() []BlockInfo {
	if d == nil || d.blocks.tail == nil {
		return nil
	}
	var infos []BlockInfo
	first := 0
	for b := d.blocks.head; !b.isTail(); b = b.next {
		infos = append(infos, BlockInfo{
			Index: len(infos),
			First: first,
			Size:  b.size,
			Start: b.data.Start(),
		})
		first += b.size
	}
	return infos
}
