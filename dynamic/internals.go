package dynamic

import (
	"fmt"
	"math"
)

// loadFactor returns n/cap(seq) as a real-valued ratio.
func (seq *Sequence[T]) loadFactor(n int) float64 {
	return float64(n) / float64(len(seq.items))
}

// grownCapacity is the capacity after applying the growth factor, and at least
// one slot more than the current capacity.
func (seq *Sequence[T]) grownCapacity() int {
	c := int(math.Ceil(float64(len(seq.items)) * seq.policy.GrowthFactor))
	if c <= len(seq.items) {
		c = len(seq.items) + 1
	}
	return c
}

// shrunkCapacity is the capacity after applying the shrink factor, clamped to
// the initial capacity and to the current number of elements.
func (seq *Sequence[T]) shrunkCapacity() int {
	c := int(math.Floor(float64(len(seq.items)) * seq.policy.ShrinkFactor))
	if c < seq.policy.InitialCapacity {
		c = seq.policy.InitialCapacity
	}
	if c < seq.length {
		c = seq.length
	}
	return c
}

// resize replaces the buffer of seq with a buffer of capacity c, holding the
// live elements in unchanged order. c must not be smaller than seq.length.
func (seq *Sequence[T]) resize(c int) {
	assertThat(c >= seq.length, "inconsistency: cannot resize to %d with %d elements", c, seq.length)
	if c == len(seq.items) {
		return
	}
	if c > len(seq.items) {
		tracer().Debugf("grow: capacity %d → %d, length = %d", len(seq.items), c, seq.length)
	} else {
		tracer().Debugf("shrink: capacity %d → %d, length = %d", len(seq.items), c, seq.length)
	}
	items := make([]T, c)
	copy(items, seq.items[:seq.length])
	seq.items = items
}

// --- Helpers ---------------------------------------------------------------

func (seq *Sequence[T]) assertUsable() {
	assertThat(seq != nil, "sequence is nil")
	assertThat(!seq.destroyed, "sequence has been destroyed")
}

func (seq *Sequence[T]) assertIndex(i, upper int) {
	assertThat(i >= 1 && i <= upper, "index out of range: %d not in [1…%d]", i, upper)
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("dynamic: "+msg, msgargs...)
		panic(msg)
	}
}
