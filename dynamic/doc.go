/*
Package dynamic implements a sequence with an automatically resizing backing buffer.

A dynamic sequence keeps its elements in a contiguous buffer. Whenever an insertion
finds the buffer at or above the growth threshold of its load factor (length divided
by capacity), the buffer is replaced by a larger copy. Whenever a removal would push
the load factor below the shrink threshold, the buffer is replaced by a smaller copy,
but never below the initial capacity. With the default policy capacity doubles when
the buffer is full and halves when less than half of it would remain occupied.
The gap between the two thresholds prevents a sequence from oscillating between
two sizes if clients alternately insert and remove at a boundary.

Appending is amortized O(1). Inserting or removing in the middle of a sequence
shifts all subsequent elements and therefore is O(n).

Positions are 1-based. Accessing a position out of range panics.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dynamic

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sequences.dynamic'.
func tracer() tracing.Trace {
	return tracing.Select("sequences.dynamic")
}
