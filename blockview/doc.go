/*
Package blockview renders the block structure of a bdeque for humans.

Deques hide their blocks behind the sequence API, which is what clients want
almost all of the time. When tuning occupancy bounds or hunting down a
rebalancing problem it helps to see the blocks, their fill level and where
each one starts. blockview offers two renderings:

  - Console writes one line per block with a colored occupancy bar, sized to
    the width of the terminal.
  - HTML writes a table with one row per block.

The Graphviz rendering lives in package bdeque itself (Deque2Dot).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package blockview

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for generic code, where T names the element type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
