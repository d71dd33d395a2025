/*
Package linefile provides API helpers to load text files as deques of lines,
and to write them back.

Reading is done by a producer goroutine which broadcasts every scanned line.
The loading goroutine subscribes to the broadcast and is the only one touching
the deque, so the deque itself never sees concurrent access. Further
subscribers (e.g., progress reporting) may listen to the same broadcast.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package linefile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
