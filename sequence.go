package sequences

// NotFound is returned by Search if an item is not present in a sequence.
// Valid positions start at 1, therefore 0 is never a valid position.
const NotFound = 0

// Sequence is the interface shared by all sequence variants of this module.
type Sequence[T comparable] interface {
	Len() int      // number of live elements
	Get(int) T     // element at 1-based position
	Insert(T, int) // insert so that the item ends up at position
	Remove(int)    // remove element at position
	Search(T) int  // position of first identical item, or NotFound
}

// Collect returns the elements of s in positional order.
// The result is a fresh slice, not shared with s.
func Collect[T comparable](s Sequence[T]) []T {
	if s == nil || s.Len() == 0 {
		return nil
	}
	r := make([]T, s.Len())
	for i := 1; i <= s.Len(); i++ {
		r[i-1] = s.Get(i)
	}
	return r
}

// Contains is a shortcut for s.Search(item) != NotFound.
func Contains[T comparable](s Sequence[T], item T) bool {
	return s.Search(item) != NotFound
}
