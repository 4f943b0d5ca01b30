package fixed

import (
	"fmt"

	"github.com/npillmayer/sequences"
)

// DefaultCapacity is used by New for non-positive capacities.
const DefaultCapacity = 100

// Sequence is an ordered collection of element references with 1-based positions
// and a capacity fixed at creation time.
type Sequence[T comparable] struct {
	length    int
	items     []T
	destroyed bool
}

var _ sequences.Sequence[*int] = &Sequence[*int]{}

// New creates an empty sequence able to hold capacity elements.
func New[T comparable](capacity int) *Sequence[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	tracer().Debugf("new fixed sequence with capacity %d", capacity)
	return &Sequence[T]{items: make([]T, capacity)}
}

// Len returns the number of elements in seq.
func (seq *Sequence[T]) Len() int {
	seq.assertUsable()
	return seq.length
}

// Cap returns the fixed capacity of seq.
func (seq *Sequence[T]) Cap() int {
	seq.assertUsable()
	return len(seq.items)
}

// Full is true if no more elements may be inserted.
func (seq *Sequence[T]) Full() bool {
	seq.assertUsable()
	return seq.length == len(seq.items)
}

// Get returns the element at position i, with 1 ≤ i ≤ Len().
func (seq *Sequence[T]) Get(i int) T {
	seq.assertUsable()
	assertThat(i >= 1 && i <= seq.length, "index out of range: %d not in [1…%d]", i, seq.length)
	return seq.items[i-1]
}

// Insert puts item at position i, with 1 ≤ i ≤ Len()+1. The sequence must not be full.
func (seq *Sequence[T]) Insert(item T, i int) {
	seq.assertUsable()
	assertThat(seq.length < len(seq.items), "sequence is full, capacity = %d", len(seq.items))
	assertThat(i >= 1 && i <= seq.length+1, "index out of range: %d not in [1…%d]", i, seq.length+1)
	copy(seq.items[i:seq.length+1], seq.items[i-1:seq.length])
	seq.items[i-1] = item
	seq.length++
}

// Remove deletes the element at position i, with 1 ≤ i ≤ Len().
func (seq *Sequence[T]) Remove(i int) {
	seq.assertUsable()
	assertThat(i >= 1 && i <= seq.length, "index out of range: %d not in [1…%d]", i, seq.length)
	copy(seq.items[i-1:seq.length-1], seq.items[i:seq.length])
	var zero T
	seq.items[seq.length-1] = zero
	seq.length--
}

// Search returns the position of the first element identical to item, or
// sequences.NotFound.
func (seq *Sequence[T]) Search(item T) int {
	seq.assertUsable()
	for i, x := range seq.items[:seq.length] {
		if x == item {
			return i + 1
		}
	}
	return sequences.NotFound
}

// Destroy releases the buffer. Using seq afterwards panics.
func (seq *Sequence[T]) Destroy() {
	seq.assertUsable()
	seq.items = nil
	seq.length = 0
	seq.destroyed = true
}

// --- Helpers ---------------------------------------------------------------

func (seq *Sequence[T]) assertUsable() {
	assertThat(seq != nil, "sequence is nil")
	assertThat(!seq.destroyed, "sequence has been destroyed")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("fixed: "+msg, msgargs...)
		panic(msg)
	}
}
