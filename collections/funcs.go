package collections

// This file contains package-level generic functions for operations that
// change the element type of a list (T → U) or fold it to a value of another
// type.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. The methods of the same
// name on [List] and [LinkedList] delegate here with U = T:
//
//	labels := collections.MapList(collections.NewList(1, 2, 3),
//	    func(n, _ int, _ *collections.List[int]) string { return strconv.Itoa(n) })

// MapList applies fn to every element of l and returns a new List[U].
func MapList[T, U any](l *List[T], fn func(T, int, *List[T]) U) *List[U] {
	out := make([]U, 0, l.Len())
	l.ForEach(func(v T, i int, owner *List[T]) {
		out = append(out, fn(v, i, owner))
	})
	return ListFrom(out)
}

// ReduceList folds l left to right into a value of type U.
//
//	total := collections.ReduceList(l,
//	    func(acc float64, n, _ int, _ *collections.List[int]) float64 { return acc + float64(n) }, 0)
func ReduceList[T, U any](l *List[T], fn func(U, T, int, *List[T]) U, initial U) U {
	acc := initial
	l.ForEach(func(v T, i int, owner *List[T]) {
		acc = fn(acc, v, i, owner)
	})
	return acc
}

// MapLinkedList applies fn to every element of l and returns a new
// LinkedList[U].
func MapLinkedList[T, U any](l *LinkedList[T], fn func(T, int, *LinkedList[T]) U) *LinkedList[U] {
	out := LinkedListFrom[U](nil)
	l.ForEach(func(v T, i int, owner *LinkedList[T]) {
		out.Push(fn(v, i, owner))
	})
	return out
}

// ReduceLinkedList folds l left to right into a value of type U.
func ReduceLinkedList[T, U any](l *LinkedList[T], fn func(U, T, int, *LinkedList[T]) U, initial U) U {
	acc := initial
	l.ForEach(func(v T, i int, owner *LinkedList[T]) {
		acc = fn(acc, v, i, owner)
	})
	return acc
}
