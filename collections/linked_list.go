package collections

import (
	"fmt"
	"iter"
	"reflect"
)

// LinkedList is a flat doubly-linked list with cached head and last nodes.
//
// [LinkedList.Push] appends in O(1). An empty LinkedList still owns a
// sentinel head node, which the first Push replaces. The chain always
// satisfies head.prev == nil, last.next == nil and a.next.prev == a for
// adjacent nodes a and a.next.
//
//	l := collections.NewLinkedList(1, 2, 3).Push(4)
//	last, _ := l.Last() // 4
//
// A LinkedList is not safe for concurrent mutation.
type LinkedList[T any] struct {
	head   *linkedNode[T]
	last   *linkedNode[T]
	length int
}

// NewLinkedList creates a LinkedList holding items in order.
func NewLinkedList[T any](items ...T) *LinkedList[T] { return LinkedListFrom(items) }

// LinkedListFrom creates a LinkedList from a slice. The slice is not retained.
func LinkedListFrom[T any](items []T) *LinkedList[T] {
	sentinel := &linkedNode[T]{}
	l := &LinkedList[T]{head: sentinel, last: sentinel}
	for _, v := range items {
		l.Push(v)
	}
	return l
}

// LinkedListFromSlice builds a LinkedList from v, which must be a []T, an
// iter.Seq[T] or an [Enumerable][T]. Any other value yields [ErrTypeMismatch].
func LinkedListFromSlice[T any](v any) (*LinkedList[T], error) {
	items, err := sequenceOf[T](v)
	if err != nil {
		return nil, err
	}
	return LinkedListFrom(items), nil
}

// LinkedListToSlice returns the elements of v, which must be a non-nil
// *LinkedList[T]. Any other value yields [ErrTypeMismatch].
func LinkedListToSlice[T any](v any) ([]T, error) {
	l, ok := v.(*LinkedList[T])
	if !ok || l == nil {
		return nil, fmt.Errorf("%w: expected *LinkedList[%s], got %T", ErrTypeMismatch, reflect.TypeFor[T](), v)
	}
	return l.ToSlice(), nil
}

// Head returns the first element, or the zero value and false when empty.
func (l *LinkedList[T]) Head() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	return l.head.element()
}

// Last returns the final element, or the zero value and false when empty.
// For a single-element list Last and Head return the same element.
func (l *LinkedList[T]) Last() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	return l.last.element()
}

// Len returns the cached number of elements.
func (l *LinkedList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// IsEmpty reports whether the list holds no elements.
func (l *LinkedList[T]) IsEmpty() bool { return l.Len() == 0 }

// Push appends v after the last node and returns the receiver.
func (l *LinkedList[T]) Push(v T) *LinkedList[T] {
	switch l.length {
	case 0:
		// the sentinel is replaced, not linked
		l.head = &linkedNode[T]{node: some(v)}
		l.last = l.head
	case 1:
		n := &linkedNode[T]{node: some(v), prev: l.head}
		l.head.next = n
		l.last = n
	default:
		n := &linkedNode[T]{node: some(v), prev: l.last}
		l.last.next = n
		l.last = n
	}
	l.length++
	return l
}

// All returns an iterator over the elements in order, following next links
// from the head until there is no next node. Each call starts a new
// traversal.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.Len() == 0 {
			return
		}
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from last to head.
func (l *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.Len() == 0 {
			return
		}
		for cur := l.last; cur != nil; cur = cur.prev {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Enumerate is like [LinkedList.All] but also yields each element's index.
func (l *LinkedList[T]) Enumerate() iter.Seq2[int, T] {
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
func (l *LinkedList[T]) ForEach(fn func(T, int, *LinkedList[T])) *LinkedList[T] {
	for i, v := range l.Enumerate() {
		fn(v, i, l)
	}
	return l
}

// Map returns a new LinkedList holding fn(element, index, l) for every
// element. See [MapLinkedList] for a type-changing variant.
func (l *LinkedList[T]) Map(fn func(T, int, *LinkedList[T]) T) *LinkedList[T] {
	return MapLinkedList(l, fn)
}

// Filter returns a new LinkedList holding the elements for which
// fn(element, index, l) returns true.
func (l *LinkedList[T]) Filter(fn func(T, int, *LinkedList[T]) bool) *LinkedList[T] {
	out := LinkedListFrom[T](nil)
	l.ForEach(func(v T, i int, owner *LinkedList[T]) {
		if fn(v, i, owner) {
			out.Push(v)
		}
	})
	return out
}

// Reduce folds the list left to right, starting from initial.
func (l *LinkedList[T]) Reduce(fn func(T, T, int, *LinkedList[T]) T, initial T) T {
	return ReduceLinkedList(l, fn, initial)
}

// ToSlice returns the elements as a new slice.
func (l *LinkedList[T]) ToSlice() []T { return collect(l.All(), l.Len()) }
