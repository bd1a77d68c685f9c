// Package collections provides two small generic linked lists with a
// functional API: the recursive [List] and the flat, doubly-linked
// [LinkedList].
//
// # Overview
//
// Both types share one contract: build from a variadic argument list, read
// the head (and tail or last), iterate, transform with map/filter/reduce, and
// convert to and from plain Go sequences.
//
//	total := collections.NewLinkedList(1, 2, 3, 4).
//	    Filter(func(n, _ int, _ *collections.LinkedList[int]) bool { return n%2 == 0 }).
//	    Reduce(func(acc, n, _ int, _ *collections.LinkedList[int]) int { return acc + n }, 0)
//	// → 6
//
// Callbacks receive (element, index, owning list); Reduce callbacks receive
// the accumulator first.
//
// # Choosing a list
//
// [List] owns its remainder as a sub-list, so [List.Add] walks to the end
// and is O(n). [LinkedList] caches its last node and [LinkedList.Push] is
// O(1). Pick LinkedList for anything built incrementally.
//
// # Empty values
//
// No accessor fails on an empty list. Head and Last return the zero value
// and false; [List.Tail] returns nil. The only error the lists produce is
// [ErrTypeMismatch], from the dynamically-typed conversion helpers
// [ListToSlice], [ListFromSlice], [LinkedListToSlice] and
// [LinkedListFromSlice].
//
// # Iteration
//
// All returns an [iter.Seq]. Every call starts a fresh traversal and the
// list is never consumed:
//
//	for v := range l.All() {
//	    fmt.Println(v)
//	}
//
// # Encoding
//
// Both lists marshal as a plain array in JSON, YAML (gopkg.in/yaml.v3) and
// MessagePack (github.com/vmihailenco/msgpack/v5). [FingerprintOf] digests
// the MessagePack form with BLAKE2b-256 for order-sensitive comparison.
//
// # Concurrency
//
// Lists are not synchronised. Only the macro registry ([RegisterMacro]) is
// safe for concurrent use.
package collections
