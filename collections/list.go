package collections

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// List is an eager, recursively built singly-linked list.
//
// Each List holds one element in its head node and owns the sub-list holding
// the remainder. An empty List has an empty head node and no tail; a List
// with one element has no tail either.
//
// # Creating a list
//
//	l := collections.NewList(1, 2, 3)
//	l := collections.ListFrom([]string{"a", "b"})
//	l, err := collections.ListFromSlice[int](anything)
//
// # Complexity
//
// [List.Add] descends to the end of the list, so appending is O(n) and
// building a list of n elements with repeated Add is O(n²). Use [LinkedList]
// when appends are frequent. The bulk constructors ([NewList], [ListFrom],
// [List.Map], [List.Filter]) link the sub-lists back-to-front in O(n) and
// produce the same structure repeated Add would.
//
// A List is not safe for concurrent mutation.
type List[T any] struct {
	head   node[T]
	tail   *List[T]
	length int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewList creates a List holding items in order.
func NewList[T any](items ...T) *List[T] { return ListFrom(items) }

// ListFrom creates a List from a slice. The slice is not retained.
func ListFrom[T any](items []T) *List[T] {
	if len(items) == 0 {
		return &List[T]{}
	}
	var next *List[T]
	for i := len(items) - 1; i >= 0; i-- {
		next = &List[T]{head: some(items[i]), tail: next, length: len(items) - i}
	}
	return next
}

// ListFromSlice builds a List from v, which must be a []T, an iter.Seq[T]
// or an [Enumerable][T]. Any other value yields [ErrTypeMismatch].
func ListFromSlice[T any](v any) (*List[T], error) {
	items, err := sequenceOf[T](v)
	if err != nil {
		return nil, err
	}
	return ListFrom(items), nil
}

// ListToSlice returns the elements of v, which must be a non-nil *List[T].
// Any other value yields [ErrTypeMismatch].
func ListToSlice[T any](v any) ([]T, error) {
	l, ok := v.(*List[T])
	if !ok || l == nil {
		return nil, fmt.Errorf("%w: expected *List[%s], got %T", ErrTypeMismatch, reflect.TypeFor[T](), v)
	}
	return l.ToSlice(), nil
}

// sequenceOf accepts the sequence types understood by the FromSlice helpers.
func sequenceOf[T any](v any) ([]T, error) {
	switch s := v.(type) {
	case []T:
		return s, nil
	case iter.Seq[T]:
		return slices.Collect(s), nil
	case func(func(T) bool):
		return slices.Collect(iter.Seq[T](s)), nil
	case Enumerable[T]:
		if rv := reflect.ValueOf(s); rv.Kind() == reflect.Pointer && rv.IsNil() {
			break
		}
		return s.ToSlice(), nil
	}
	return nil, fmt.Errorf("%w: expected a sequence of %s, got %T", ErrTypeMismatch, reflect.TypeFor[T](), v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the first element. It returns the zero value and false when
// the list is empty or nil, so l.Tail().Head() is always safe.
func (l *List[T]) Head() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	return l.head.get()
}

// Tail returns a new List holding every element after the head, or nil when
// the list has fewer than two elements.
func (l *List[T]) Tail() *List[T] {
	if l == nil || l.tail == nil {
		return nil
	}
	return ListFrom(l.tail.ToSlice())
}

// Len returns the cached number of elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.Len() == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add appends v to the end of the list and returns the receiver.
//
// Every sub-list passed on the way down has its cached length incremented.
func (l *List[T]) Add(v T) *List[T] {
	cur := l
	for {
		cur.length++
		if cur.head.isEmpty() {
			cur.head = some(v)
			return l
		}
		if cur.tail == nil {
			cur.tail = &List[T]{}
		}
		cur = cur.tail
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// All returns an iterator over the elements in order. Each call starts a
// new traversal; iteration stops at the first sub-list with an empty head.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l; cur != nil && !cur.head.isEmpty(); cur = cur.tail {
			if !yield(cur.head.value) {
				return
			}
		}
	}
}

// Enumerate is like [List.All] but also yields each element's index.
func (l *List[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range l.All() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// ForEach calls fn(element, index, l) for every element and returns l.
func (l *List[T]) ForEach(fn func(T, int, *List[T])) *List[T] {
	for i, v := range l.Enumerate() {
		fn(v, i, l)
	}
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new List holding fn(element, index, l) for every element.
//
// For a result of a different element type use the package-level [MapList].
func (l *List[T]) Map(fn func(T, int, *List[T]) T) *List[T] {
	return MapList(l, fn)
}

// Filter returns a new List holding the elements for which
// fn(element, index, l) returns true, in their original order.
func (l *List[T]) Filter(fn func(T, int, *List[T]) bool) *List[T] {
	out := make([]T, 0, l.Len())
	l.ForEach(func(v T, i int, owner *List[T]) {
		if fn(v, i, owner) {
			out = append(out, v)
		}
	})
	return ListFrom(out)
}

// Reduce folds the list left to right, starting from initial.
//
// For an accumulator of a different type use the package-level [ReduceList].
func (l *List[T]) Reduce(fn func(T, T, int, *List[T]) T, initial T) T {
	return ReduceList(l, fn, initial)
}

// ToSlice returns the elements as a new slice.
func (l *List[T]) ToSlice() []T { return collect(l.All(), l.Len()) }
