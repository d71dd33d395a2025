/*
Package bdeque offers a blocked double-ended queue: an ordered sequence
container with cheap insertion and removal at both ends and at arbitrary
positions.

Blocked Deques

A Deque organizes its elements in a doubly linked list of blocks. Every block
owns a fixed-capacity circular buffer (see package ring). Pushing to the front
of a block rotates the buffer instead of moving elements, pushing to the back
appends. Inserting or erasing in the middle of the sequence shifts the elements
of a single block only.

Block occupancy is kept between two constants, INF and SUP = 4·INF. A block
reaching SUP elements is split in half; a block falling empty, or a block which
together with its neighbour holds fewer than INF elements, is merged with that
neighbour. Merging always copies the smaller side, so rebalancing never touches
more than a bounded number of elements, independent of the length of the
sequence.

	Operation        |  Cost
	-----------------+-------------------------------
	PushBack/Front   |  O(1) amortized
	PopBack/Front    |  O(1) amortized
	At / IteratorAt  |  O(#blocks)
	Insert / Erase   |  O(SUP) plus locating the block
	Next / Prev      |  O(1)

Iterators

An Iterator references a block, an offset inside of that block and the global
index of the element it denotes. Stepping with Next and Prev is O(1), jumping
with Add or Sub re-locates the block by scanning from the first block.
Iterators are invalidated by every mutation of their deque, except for the
iterator returned by Insert or Erase. Dereferencing an iterator whose index is
out of range, or whose block has been restructured in a detectable way, yields
ErrInvalidIterator.

Deques are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bdeque

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

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
