package collections

// node holds at most one element. The zero node is the empty sentinel, which
// is distinct from a node holding the zero value of T.
type node[T any] struct {
	value T
	ok    bool
}

func some[T any](v T) node[T] { return node[T]{value: v, ok: true} }

func (n node[T]) get() (T, bool) { return n.value, n.ok }

func (n node[T]) isEmpty() bool { return !n.ok }

// linkedNode is a node chained into a LinkedList. prev does not own its target.
type linkedNode[T any] struct {
	node[T]
	prev, next *linkedNode[T]
}

// element tolerates a nil node so that a zero LinkedList reads as empty.
func (n *linkedNode[T]) element() (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	return n.get()
}
