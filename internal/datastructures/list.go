package datastructures

import "fmt"

// sentinel is the pool position of the permanent boundary node.
const sentinel = 0

type (
	// LinkedListDeque is a doubly linked deque whose nodes live in a single
	// dense pool and reference each other by pool position.
	//
	// The pool always holds exactly Len()+1 nodes. Removing a node moves the
	// physically last node into the vacated slot, so positions are not stable
	// across removals.
	LinkedListDeque[T any] struct {
		nodes []node[T]
	}

	// node is an element of the ring. prev and next are pool positions.
	node[T any] struct {
		item T
		prev int
		next int
	}
)

// NewLinkedListDeque creates an empty LinkedListDeque.
func NewLinkedListDeque[T any]() *LinkedListDeque[T] {
	nodes := make([]node[T], 1, minCapacity)
	nodes[sentinel] = node[T]{prev: sentinel, next: sentinel}
	return &LinkedListDeque[T]{nodes: nodes}
}

// Len returns the number of elements in the deque.
func (l *LinkedListDeque[T]) Len() int {
	return len(l.nodes) - 1
}

// AddFirst adds an element to the front of the deque.
func (l *LinkedListDeque[T]) AddFirst(item T) {
	front := l.nodes[sentinel].next
	l.splice(item, sentinel, front)
}

// AddLast adds an element to the back of the deque.
func (l *LinkedListDeque[T]) AddLast(item T) {
	back := l.nodes[sentinel].prev
	l.splice(item, back, sentinel)
}

// RemoveFirst removes and returns the front element.
func (l *LinkedListDeque[T]) RemoveFirst() (T, bool) {
	if l.Len() == 0 {
		var zeroValue T
		return zeroValue, false
	}
	return l.remove(l.nodes[sentinel].next), true
}

// RemoveLast removes and returns the back element.
func (l *LinkedListDeque[T]) RemoveLast() (T, bool) {
	if l.Len() == 0 {
		var zeroValue T
		return zeroValue, false
	}
	return l.remove(l.nodes[sentinel].prev), true
}

// GetFirst returns the front element.
func (l *LinkedListDeque[T]) GetFirst() (T, bool) {
	if l.Len() == 0 {
		var zeroValue T
		return zeroValue, false
	}
	return l.nodes[l.nodes[sentinel].next].item, true
}

// GetLast returns the back element.
func (l *LinkedListDeque[T]) GetLast() (T, bool) {
	if l.Len() == 0 {
		var zeroValue T
		return zeroValue, false
	}
	return l.nodes[l.nodes[sentinel].prev].item, true
}

// GetFirstMut returns a pointer to the front element.
func (l *LinkedListDeque[T]) GetFirstMut() (*T, bool) {
	if l.Len() == 0 {
		return nil, false
	}
	return &l.nodes[l.nodes[sentinel].next].item, true
}

// GetLastMut returns a pointer to the back element.
func (l *LinkedListDeque[T]) GetLastMut() (*T, bool) {
	if l.Len() == 0 {
		return nil, false
	}
	return &l.nodes[l.nodes[sentinel].prev].item, true
}

// Clear removes all elements from the deque.
func (l *LinkedListDeque[T]) Clear() {
	*l = *NewLinkedListDeque[T]()
}

// String renders the deque front to back, e.g. "[1, 2, 3]".
func (l *LinkedListDeque[T]) String() string {
	cur := sentinel
	return render(l.Len(), func(int) T {
		cur = l.nodes[cur].next
		return l.nodes[cur].item
	})
}

// splice appends a node to the pool and links it between prev and next.
func (l *LinkedListDeque[T]) splice(item T, prev, next int) {
	idx := len(l.nodes)
	l.nodes = append(l.nodes, node[T]{item: item, prev: prev, next: next})
	l.nodes[prev].next = idx
	l.nodes[next].prev = idx
}

// remove unlinks the node at idx and keeps the pool dense by relocating the
// physically last node into idx.
func (l *LinkedListDeque[T]) remove(idx int) T {
	target := l.nodes[idx]
	l.nodes[target.prev].next = target.next
	l.nodes[target.next].prev = target.prev

	last := len(l.nodes) - 1
	if idx != last {
		moved := l.nodes[last]
		l.nodes[idx] = moved
		l.nodes[moved.prev].next = idx
		l.nodes[moved.next].prev = idx
	}
	l.nodes[last] = node[T]{}
	l.nodes = l.nodes[:last]
	l.maybeShrink()
	return target.item
}

// maybeShrink releases pool memory once the pool uses less than a quarter of
// its backing array.
func (l *LinkedListDeque[T]) maybeShrink() {
	half := cap(l.nodes) / 2
	if len(l.nodes) < cap(l.nodes)/4 && half >= minCapacity {
		nodes := make([]node[T], len(l.nodes), half)
		copy(nodes, l.nodes)
		l.nodes = nodes
	}
}

// validate checks that the pool is dense and that the links form a single
// ring of Len()+1 nodes anchored at the sentinel.
func (l *LinkedListDeque[T]) validate() error {
	if len(l.nodes) == 0 {
		return fmt.Errorf("pool lost its sentinel")
	}
	seen := make([]bool, len(l.nodes))
	cur := sentinel
	for steps := 0; steps < len(l.nodes); steps++ {
		if seen[cur] {
			return fmt.Errorf("position %d visited twice after %d steps", cur, steps)
		}
		seen[cur] = true
		next := l.nodes[cur].next
		if next < 0 || next >= len(l.nodes) {
			return fmt.Errorf("position %d links to %d outside pool of %d", cur, next, len(l.nodes))
		}
		if l.nodes[next].prev != cur {
			return fmt.Errorf("position %d: next is %d but its prev is %d", cur, next, l.nodes[next].prev)
		}
		cur = next
	}
	if cur != sentinel {
		return fmt.Errorf("ring of %d nodes does not close at the sentinel", len(l.nodes))
	}
	return nil
}
