package datastructures

import (
	"fmt"
	"strings"
)

// Deque is a sequence that supports insertion, removal and inspection at
// both ends. Absence is reported through the boolean result, never an error.
type Deque[T any] interface {
	fmt.Stringer

	// Len returns the number of elements in the deque.
	Len() int

	// AddFirst adds an element to the front of the deque.
	AddFirst(item T)
	// AddLast adds an element to the back of the deque.
	AddLast(item T)

	// RemoveFirst removes and returns the front element.
	RemoveFirst() (T, bool)
	// RemoveLast removes and returns the back element.
	RemoveLast() (T, bool)

	// GetFirst returns the front element without removing it.
	GetFirst() (T, bool)
	// GetLast returns the back element without removing it.
	GetLast() (T, bool)

	// GetFirstMut returns a pointer to the front element. The pointer is only
	// valid until the next call that modifies the deque.
	GetFirstMut() (*T, bool)
	// GetLastMut returns a pointer to the back element, with the same
	// lifetime rule as GetFirstMut.
	GetLastMut() (*T, bool)
}

// render formats n items as "[e1, e2, ..., en]", fetching them front to back.
func render[T any](n int, at func(i int) T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, at(i))
	}
	b.WriteByte(']')
	return b.String()
}
