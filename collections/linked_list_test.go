package collections_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collections/collections"
)

func linked(ns ...int) *collections.LinkedList[int] { return collections.NewLinkedList(ns...) }

type linkedCall struct {
	el, i int
	list  *collections.LinkedList[int]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors & conversion
// ─────────────────────────────────────────────────────────────────────────────

func TestNewLinkedList(t *testing.T) {
	l := linked(1, 2, 3, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())
	assert.Equal(t, 4, l.Len())
}

func TestLinkedListToSlice(t *testing.T) {
	got, err := collections.LinkedListToSlice[int](linked(1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	_, err = collections.LinkedListToSlice[int]([]int{})
	assert.ErrorIs(t, err, collections.ErrTypeMismatch)

	_, err = collections.LinkedListToSlice[int](ints(1))
	assert.ErrorIs(t, err, collections.ErrTypeMismatch)

	var nilList *collections.LinkedList[int]
	_, err = collections.LinkedListToSlice[int](nilList)
	assert.ErrorIs(t, err, collections.ErrTypeMismatch)
}

func TestLinkedListFromSlice(t *testing.T) {
	l, err := collections.LinkedListFromSlice[int]([]int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, linked(1, 2, 3, 4).ToSlice(), l.ToSlice())

	l, err = collections.LinkedListFromSlice[int](ints(5, 6))
	require.NoError(t, err)
	last, _ := l.Last()
	assert.Equal(t, 6, last)

	_, err = collections.LinkedListFromSlice[int](func() {})
	assert.ErrorIs(t, err, collections.ErrTypeMismatch)
}

func TestLinkedListRoundTrip(t *testing.T) {
	for _, s := range [][]string{{}, {""}, {"a", "b"}, {"x", "", "x"}} {
		l, err := collections.LinkedListFromSlice[string](s)
		require.NoError(t, err)
		assert.Equal(t, s, l.ToSlice())
		assert.Equal(t, len(s), l.Len())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestLinkedListEmpty(t *testing.T) {
	l := collections.NewLinkedList[int]()
	h, ok := l.Head()
	assert.False(t, ok)
	assert.Zero(t, h)
	last, ok := l.Last()
	assert.False(t, ok)
	assert.Zero(t, last)
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, slices.Collect(l.All()))
	assert.Empty(t, slices.Collect(l.Backward()))
}

func TestLinkedListZeroValue(t *testing.T) {
	var l collections.LinkedList[int]
	_, ok := l.Head()
	assert.False(t, ok)
	l.Push(1).Push(2)
	assert.Equal(t, []int{1, 2}, l.ToSlice())
}

func TestLinkedListNilReadsEmpty(t *testing.T) {
	var l *collections.LinkedList[string]
	h, ok := l.Head()
	assert.False(t, ok)
	assert.Zero(t, h)
	last, ok := l.Last()
	assert.False(t, ok)
	assert.Zero(t, last)
	assert.True(t, l.IsEmpty())
	assert.Empty(t, l.ToSlice())
}

func TestLinkedListSingleton(t *testing.T) {
	l := linked(1)
	h, _ := l.Head()
	last, ok := l.Last()
	assert.True(t, ok)
	assert.Equal(t, 1, h)
	assert.Equal(t, h, last)
}

func TestLinkedListLast(t *testing.T) {
	last, _ := linked(1, 2).Last()
	assert.Equal(t, 2, last)
	last, _ = linked(1, 2, 3, 4).Last()
	assert.Equal(t, 4, last)
}

// ─────────────────────────────────────────────────────────────────────────────
// Push
// ─────────────────────────────────────────────────────────────────────────────

func TestLinkedListPush(t *testing.T) {
	l := collections.NewLinkedList[int]()
	l.Push(1)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, []int{1}, l.ToSlice())
}

func TestLinkedListPushChainable(t *testing.T) {
	l := collections.NewLinkedList[int]()
	assert.Same(t, l, l.Push(1).Push(2).Push(3))
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(l.Backward()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

func TestLinkedListAll(t *testing.T) {
	l := linked(1, 2, 3, 4)
	var got []int
	for v := range l.All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Equal(t, got, slices.Collect(l.All()))
	assert.Equal(t, l.Len(), len(got))
}

func TestLinkedListEnumerate(t *testing.T) {
	var got []int
	for i, v := range linked(7, 8, 9).Enumerate() {
		if i == 2 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{7, 8}, got)
}

func TestLinkedListForEach(t *testing.T) {
	l := linked(1, 2)
	var calls []linkedCall
	ret := l.ForEach(func(el, i int, list *collections.LinkedList[int]) {
		calls = append(calls, linkedCall{el, i, list})
	})
	assert.Same(t, l, ret)
	assert.Equal(t, []linkedCall{{1, 0, l}, {2, 1, l}}, calls)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

func TestLinkedListMap(t *testing.T) {
	l := linked(1, 2)
	var calls []linkedCall
	doubled := l.Map(func(el, i int, list *collections.LinkedList[int]) int {
		calls = append(calls, linkedCall{el, i, list})
		return el * 2
	})
	assert.Equal(t, []int{2, 4}, doubled.ToSlice())
	assert.Equal(t, []linkedCall{{1, 0, l}, {2, 1, l}}, calls)
	last, _ := doubled.Last()
	assert.Equal(t, 4, last)
}

func TestLinkedListFilter(t *testing.T) {
	l := linked(1, 2)
	var calls []linkedCall
	isEven := func(el, i int, list *collections.LinkedList[int]) bool {
		calls = append(calls, linkedCall{el, i, list})
		return el%2 == 0
	}
	even := l.Filter(isEven)
	assert.Equal(t, []int{2}, even.ToSlice())
	assert.Equal(t, []linkedCall{{1, 0, l}, {2, 1, l}}, calls)

	h, _ := even.Head()
	last, _ := even.Last()
	assert.Equal(t, h, last)
}

func TestLinkedListReduce(t *testing.T) {
	l := linked(1, 2)
	assert.Equal(t, 3, l.Reduce(func(acc, el, _ int, _ *collections.LinkedList[int]) int { return el + acc }, 0))

	type call struct {
		acc, el, i int
		list       *collections.LinkedList[int]
	}
	var calls []call
	l.Reduce(func(acc, el, i int, list *collections.LinkedList[int]) int {
		calls = append(calls, call{acc, el, i, list})
		return 0
	}, 0)
	assert.Equal(t, []call{{0, 1, 0, l}, {0, 2, 1, l}}, calls)
}
