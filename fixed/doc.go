/*
Package fixed implements a sequence with a backing buffer of fixed capacity.

The buffer is allocated once at creation time. Inserting into a full sequence
is a programming error and panics, as does any access out of range.
Apart from that, a fixed sequence behaves exactly like the sequences of
package dynamic.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fixed

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sequences.fixed'.
func tracer() tracing.Trace {
	return tracing.Select("sequences.fixed")
}
