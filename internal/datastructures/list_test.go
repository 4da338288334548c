package datastructures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkedListDequeSentinel(t *testing.T) {
	l := NewLinkedListDeque[string]()
	require.Len(t, l.nodes, 1)
	require.Equal(t, sentinel, l.nodes[sentinel].next)
	require.Equal(t, sentinel, l.nodes[sentinel].prev)

	l.AddLast("a")
	l.RemoveFirst()
	require.Len(t, l.nodes, 1)
	require.Equal(t, sentinel, l.nodes[sentinel].next)
	require.Equal(t, sentinel, l.nodes[sentinel].prev)
	require.NoError(t, l.validate())
}

func TestLinkedListDequeRelocatesLastNode(t *testing.T) {
	l := NewLinkedListDeque[string]()
	l.AddLast("b")  // position 1
	l.AddLast("c")  // position 2
	l.AddFirst("a") // position 3

	// "b" sits in the middle of the pool; removing the front node "a" is
	// the physically last one and only truncates.
	first, ok := l.RemoveFirst()
	require.True(t, ok)
	require.Equal(t, "a", first)
	require.Len(t, l.nodes, 3)
	require.NoError(t, l.validate())

	l.AddFirst("a") // position 3 again
	// "c" at position 2 is the back; the last node "a" moves into it.
	last, ok := l.RemoveLast()
	require.True(t, ok)
	require.Equal(t, "c", last)
	require.Len(t, l.nodes, 3)
	require.Equal(t, "a", l.nodes[2].item)
	require.NoError(t, l.validate())
	require.Equal(t, "[a, b]", l.String())
}

func TestLinkedListDequeRemovesNeighborOfLastNode(t *testing.T) {
	l := NewLinkedListDeque[int]()
	l.AddLast(1) // position 1, front
	l.AddLast(2) // position 2, back and physically last

	// the front's logical neighbor is the physically last node
	first, ok := l.RemoveFirst()
	require.True(t, ok)
	require.Equal(t, 1, first)
	require.NoError(t, l.validate())
	require.Equal(t, 1, l.nodes[sentinel].next)
	require.Equal(t, 1, l.nodes[sentinel].prev)
	require.Equal(t, "[2]", l.String())
}

func TestLinkedListDequeMutableAccess(t *testing.T) {
	l := NewLinkedListDeque[int]()
	l.AddLast(1)  // position 1
	l.AddLast(2)  // position 2
	l.AddFirst(3) // position 3

	first, ok := l.GetFirstMut()
	require.True(t, ok)
	*first = 100
	// removing position 2 relocates the written node into it
	l.RemoveLast()
	got, ok := l.GetFirst()
	require.True(t, ok)
	require.Equal(t, 100, got)
	require.Equal(t, 100, l.nodes[2].item)

	last, ok := l.GetLastMut()
	require.True(t, ok)
	*last = 200
	require.Equal(t, "[100, 200]", l.String())
}

func TestLinkedListDequeReleasesPoolMemory(t *testing.T) {
	l := NewLinkedListDeque[int]()
	for i := 0; i < 4096; i++ {
		l.AddLast(i)
	}
	for l.Len() > 0 {
		l.RemoveLast()
	}
	require.Less(t, cap(l.nodes), 64)
	require.NoError(t, l.validate())
}

func TestLinkedListDequeValidateDetectsBrokenRing(t *testing.T) {
	l := NewLinkedListDeque[int]()
	l.AddLast(1)
	l.AddLast(2)
	l.nodes[1].next = 1

	require.Error(t, l.validate())
}

func TestLinkedListDequeClear(t *testing.T) {
	l := NewLinkedListDeque[int]()
	for i := 0; i < 10; i++ {
		l.AddFirst(i)
	}
	l.Clear()

	require.Equal(t, 0, l.Len())
	require.NoError(t, l.validate())
	l.AddLast(1)
	require.Equal(t, "[1]", l.String())
}
