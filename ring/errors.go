package ring

import "errors"

var (
	// ErrIndexOutOfBounds signals a logical index outside [0, capacity).
	ErrIndexOutOfBounds = errors.New("ring: index out of bounds")
	// ErrInvalidCapacity signals a non-positive ring capacity.
	ErrInvalidCapacity = errors.New("ring: invalid capacity")
)
