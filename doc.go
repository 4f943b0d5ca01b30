/*
Package sequences offers index-addressed sequence containers.

A sequence is an ordered collection of element references. Positions are
1-based from a client's point of view: the first element lives at position 1,
and inserting at position Len()+1 appends. Elements are compared by identity
(Go's == on the element type), never by the contents they refer to, so
clients usually instantiate sequences with pointer types:

	seq := dynamic.New[*Customer]()
	seq.Insert(c, 1)
	pos := seq.Search(c)   // 1

Two variants are available as sub-packages. Package dynamic grows and shrinks
its backing buffer automatically, following a load-factor policy. Package fixed
allocates its buffer once and never resizes.

Sequences are not safe for concurrent use. Index errors are programming errors
and will panic.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sequences
