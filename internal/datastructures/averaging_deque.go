package datastructures

import "golang.org/x/exp/constraints"

// Number is an element type the AveragingDeque can sum.
type Number interface {
	constraints.Integer | constraints.Float
}

// AveragingDeque is an ArrayDeque that keeps a running sum of its items so
// the average is available in constant time.
//
// Mutable access to the ends is not offered: a write through such a pointer
// would bypass the sum.
type AveragingDeque[T Number] struct {
	deque *ArrayDeque[T]
	sum   float64
}

// NewAveragingDeque creates an empty AveragingDeque.
func NewAveragingDeque[T Number]() *AveragingDeque[T] {
	return &AveragingDeque[T]{deque: NewArrayDeque[T]()}
}

// Len returns the number of elements in the deque.
func (a *AveragingDeque[T]) Len() int {
	return a.deque.Len()
}

// AddFirst adds an element to the front of the deque.
func (a *AveragingDeque[T]) AddFirst(item T) {
	a.sum += float64(item)
	a.deque.AddFirst(item)
}

// AddLast adds an element to the back of the deque.
func (a *AveragingDeque[T]) AddLast(item T) {
	a.sum += float64(item)
	a.deque.AddLast(item)
}

// RemoveFirst removes and returns the front element.
func (a *AveragingDeque[T]) RemoveFirst() (T, bool) {
	item, ok := a.deque.RemoveFirst()
	if ok {
		a.sum -= float64(item)
	}
	return item, ok
}

// RemoveLast removes and returns the back element.
func (a *AveragingDeque[T]) RemoveLast() (T, bool) {
	item, ok := a.deque.RemoveLast()
	if ok {
		a.sum -= float64(item)
	}
	return item, ok
}

// GetFirst returns the front element.
func (a *AveragingDeque[T]) GetFirst() (T, bool) {
	return a.deque.GetFirst()
}

// GetLast returns the back element.
func (a *AveragingDeque[T]) GetLast() (T, bool) {
	return a.deque.GetLast()
}

// GetFirstMut always reports absence.
func (a *AveragingDeque[T]) GetFirstMut() (*T, bool) {
	return nil, false
}

// GetLastMut always reports absence.
func (a *AveragingDeque[T]) GetLastMut() (*T, bool) {
	return nil, false
}

// Average returns the mean of the items, or false when the deque is empty.
func (a *AveragingDeque[T]) Average() (float64, bool) {
	n := a.deque.Len()
	if n == 0 {
		return 0, false
	}
	return a.sum / float64(n), true
}

// Sum returns the running total of the items.
func (a *AveragingDeque[T]) Sum() float64 {
	return a.sum
}

// Clear removes all elements and resets the sum.
func (a *AveragingDeque[T]) Clear() {
	a.deque.Clear()
	a.sum = 0
}

// String renders the deque front to back, e.g. "[1, 2, 3]".
func (a *AveragingDeque[T]) String() string {
	return a.deque.String()
}
