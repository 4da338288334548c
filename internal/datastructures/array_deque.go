package datastructures

// minCapacity is the starting capacity of an ArrayDeque and the floor for
// shrinking.
const minCapacity = 8

// ArrayDeque is a double-ended queue backed by a circular buffer.
type ArrayDeque[T any] struct {
	data []T
	size int
	// head is the slot just before the first element, tail the slot just
	// after the last one.
	head int
	tail int
}

// NewArrayDeque creates an empty ArrayDeque.
func NewArrayDeque[T any]() *ArrayDeque[T] {
	return &ArrayDeque[T]{
		data: make([]T, minCapacity),
		head: minCapacity - 1,
		tail: 0,
	}
}

// Len returns the number of elements in the deque.
func (d *ArrayDeque[T]) Len() int {
	return d.size
}

// Cap returns the length of the backing buffer.
func (d *ArrayDeque[T]) Cap() int {
	return len(d.data)
}

// AddFirst adds an element to the front of the deque.
func (d *ArrayDeque[T]) AddFirst(item T) {
	if d.size == len(d.data) {
		d.resize(2 * len(d.data))
	}
	d.data[d.head] = item
	d.head = d.prev(d.head)
	d.size++
}

// AddLast adds an element to the back of the deque.
func (d *ArrayDeque[T]) AddLast(item T) {
	if d.size == len(d.data) {
		d.resize(2 * len(d.data))
	}
	d.data[d.tail] = item
	d.tail = d.next(d.tail)
	d.size++
}

// RemoveFirst removes and returns the front element.
func (d *ArrayDeque[T]) RemoveFirst() (T, bool) {
	if d.size == 0 {
		var zeroValue T
		return zeroValue, false
	}
	d.head = d.next(d.head)
	item := d.take(d.head)
	d.size--
	d.maybeShrink()
	return item, true
}

// RemoveLast removes and returns the back element.
func (d *ArrayDeque[T]) RemoveLast() (T, bool) {
	if d.size == 0 {
		var zeroValue T
		return zeroValue, false
	}
	d.tail = d.prev(d.tail)
	item := d.take(d.tail)
	d.size--
	d.maybeShrink()
	return item, true
}

// GetFirst returns the front element.
func (d *ArrayDeque[T]) GetFirst() (T, bool) {
	if d.size == 0 {
		var zeroValue T
		return zeroValue, false
	}
	return d.data[d.next(d.head)], true
}

// GetLast returns the back element.
func (d *ArrayDeque[T]) GetLast() (T, bool) {
	if d.size == 0 {
		var zeroValue T
		return zeroValue, false
	}
	return d.data[d.prev(d.tail)], true
}

// GetFirstMut returns a pointer to the front element.
func (d *ArrayDeque[T]) GetFirstMut() (*T, bool) {
	if d.size == 0 {
		return nil, false
	}
	return &d.data[d.next(d.head)], true
}

// GetLastMut returns a pointer to the back element.
func (d *ArrayDeque[T]) GetLastMut() (*T, bool) {
	if d.size == 0 {
		return nil, false
	}
	return &d.data[d.prev(d.tail)], true
}

// Clear removes all elements and returns the deque to its initial capacity.
func (d *ArrayDeque[T]) Clear() {
	d.data = make([]T, minCapacity)
	d.size = 0
	d.head = minCapacity - 1
	d.tail = 0
}

// String renders the deque front to back, e.g. "[1, 2, 3]".
func (d *ArrayDeque[T]) String() string {
	return render(d.size, func(i int) T {
		return d.data[(d.head+1+i)%len(d.data)]
	})
}

func (d *ArrayDeque[T]) next(i int) int {
	return (i + 1) % len(d.data)
}

func (d *ArrayDeque[T]) prev(i int) int {
	return (i - 1 + len(d.data)) % len(d.data)
}

// take returns the item in slot i and clears the slot.
func (d *ArrayDeque[T]) take(i int) T {
	var zeroValue T
	item := d.data[i]
	d.data[i] = zeroValue
	return item
}

func (d *ArrayDeque[T]) maybeShrink() {
	half := len(d.data) / 2
	if d.size < len(d.data)/4 && half >= minCapacity {
		d.resize(half)
	}
}

// resize moves the elements into a new buffer of the given capacity, front
// element first at index 0.
func (d *ArrayDeque[T]) resize(capacity int) {
	data := make([]T, capacity)
	for i := 0; i < d.size; i++ {
		data[i] = d.data[(d.head+1+i)%len(d.data)]
	}
	d.data = data
	d.head = capacity - 1
	d.tail = d.size
}
