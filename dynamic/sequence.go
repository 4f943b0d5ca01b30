package dynamic

import (
	"github.com/npillmayer/sequences"
)

// Sequence is an ordered collection of element references with 1-based positions.
// Its backing buffer grows and shrinks according to a Policy.
//
// Elements are compared by identity (==). Clients retain ownership of whatever
// the elements refer to; a sequence never inspects or releases it.
//
// The zero value is not usable, create sequences with New.
type Sequence[T comparable] struct {
	policy    Policy
	length    int
	items     []T // len(items) is the capacity
	destroyed bool
}

var _ sequences.Sequence[*int] = &Sequence[*int]{}

// New creates an empty sequence. Without options the sequence starts with
// a capacity of DefaultInitialCapacity and uses DefaultPolicy.
//
// New panics if the options result in an invalid policy.
func New[T comparable](opts ...Option) *Sequence[T] {
	p := DefaultPolicy()
	for _, option := range opts {
		p = option.config(p)
	}
	err := p.Validate()
	assertThat(err == nil, "invalid resize policy: %v", err)
	return &Sequence[T]{
		policy: p,
		items:  make([]T, p.InitialCapacity),
	}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in seq.
func (seq *Sequence[T]) Len() int {
	seq.assertUsable()
	return seq.length
}

// Cap returns the current capacity of the backing buffer.
func (seq *Sequence[T]) Cap() int {
	seq.assertUsable()
	return len(seq.items)
}

// LoadFactor returns Len()/Cap().
func (seq *Sequence[T]) LoadFactor() float64 {
	seq.assertUsable()
	return seq.loadFactor(seq.length)
}

// Policy returns the resize policy of seq.
func (seq *Sequence[T]) Policy() Policy {
	seq.assertUsable()
	return seq.policy
}

// Get returns the element at position i, with 1 ≤ i ≤ Len().
func (seq *Sequence[T]) Get(i int) T {
	seq.assertUsable()
	seq.assertIndex(i, seq.length)
	return seq.items[i-1]
}

// Insert puts item at position i, with 1 ≤ i ≤ Len()+1. Elements previously at
// positions i… move one position to the right. Inserting at Len()+1 appends.
//
// If the buffer has reached the growth threshold, it is enlarged before item is
// inserted.
func (seq *Sequence[T]) Insert(item T, i int) {
	seq.assertUsable()
	seq.assertIndex(i, seq.length+1)
	if seq.loadFactor(seq.length) >= seq.policy.GrowthThreshold {
		seq.resize(seq.grownCapacity())
	}
	copy(seq.items[i:seq.length+1], seq.items[i-1:seq.length])
	seq.items[i-1] = item
	seq.length++
}

// Append adds item at the end of seq. It is a shortcut for Insert(item, Len()+1).
func (seq *Sequence[T]) Append(item T) {
	seq.assertUsable()
	seq.Insert(item, seq.length+1)
}

// Remove deletes the element at position i, with 1 ≤ i ≤ Len(). Elements at
// positions i+1… move one position to the left.
//
// If the load factor after removal would drop below the shrink threshold, the
// buffer is reduced before the element is removed.
func (seq *Sequence[T]) Remove(i int) {
	seq.assertUsable()
	seq.assertIndex(i, seq.length)
	if seq.loadFactor(seq.length-1) < seq.policy.ShrinkThreshold {
		if c := seq.shrunkCapacity(); c < len(seq.items) {
			seq.resize(c)
		}
	}
	copy(seq.items[i-1:seq.length-1], seq.items[i:seq.length])
	var zero T
	seq.items[seq.length-1] = zero // do not retain a reference in the vacated slot
	seq.length--
}

// Search returns the position of the first element identical to item, or
// sequences.NotFound if there is none.
func (seq *Sequence[T]) Search(item T) int {
	seq.assertUsable()
	for i := 0; i < seq.length; i++ {
		if seq.items[i] == item {
			return i + 1
		}
	}
	return sequences.NotFound
}

// Each calls f for every element in positional order, until f returns false.
func (seq *Sequence[T]) Each(f func(i int, item T) bool) {
	seq.assertUsable()
	for i := 0; i < seq.length; i++ {
		if !f(i+1, seq.items[i]) {
			return
		}
	}
}

// Items returns a copy of the elements of seq in positional order.
func (seq *Sequence[T]) Items() []T {
	seq.assertUsable()
	r := make([]T, seq.length)
	copy(r, seq.items[:seq.length])
	return r
}

// Destroy releases the buffer of seq. The elements themselves are left alone,
// they are owned by the client. Any further call to seq, including another call
// to Destroy, panics.
func (seq *Sequence[T]) Destroy() {
	seq.assertUsable()
	tracer().Debugf("destroying sequence of length %d, capacity %d", seq.length, len(seq.items))
	seq.items = nil
	seq.length = 0
	seq.destroyed = true
}
