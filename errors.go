package bdeque

// DequeError is an error type for the bdeque module
type DequeError string

func (e DequeError) Error() string {
	return string(e)
}

// ErrOutOfBounds is flagged whenever a position is not within [0, Len()).
const ErrOutOfBounds = DequeError("index out of bounds")

// ErrEmptyContainer is flagged for element access or removal on an empty deque.
const ErrEmptyContainer = DequeError("container is empty")

// ErrInvalidIterator is flagged for iterators belonging to a different deque,
// iterators with an index out of range, and iterators which are detectably stale.
const ErrInvalidIterator = DequeError("invalid iterator")

// ErrInvalidConfig is flagged for unusable deque configurations.
const ErrInvalidConfig = DequeError("invalid configuration")

// ErrCorrupted is returned by Check if the block structure violates an invariant.
const ErrCorrupted = DequeError("deque structure corrupted")
