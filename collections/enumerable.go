package collections

import "iter"

// Enumerable is the read-only surface shared by [List] and [LinkedList].
//
// Accept Enumerable in your own functions so that either list kind (or an
// alternative implementation) can be passed in. [ListFromSlice] and
// [LinkedListFromSlice] accept any Enumerable, which is how one list kind is
// converted into the other.
type Enumerable[T any] interface {
	// All returns a fresh iterator over the elements in order.
	All() iter.Seq[T]

	// Len returns the number of elements.
	Len() int

	// IsEmpty reports whether the collection holds no elements.
	IsEmpty() bool

	// Head returns the first element, or the zero value and false when the
	// collection is empty.
	Head() (T, bool)

	// ToSlice returns the elements as a new slice.
	ToSlice() []T
}

var (
	_ Enumerable[int] = (*List[int])(nil)
	_ Enumerable[int] = (*LinkedList[int])(nil)
)

// collect drains seq into a slice, pre-sizing it with n.
func collect[T any](seq iter.Seq[T], n int) []T {
	out := make([]T, 0, n)
	for v := range seq {
		out = append(out, v)
	}
	return out
}
