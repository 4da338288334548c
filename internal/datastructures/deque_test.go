package datastructures

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Deque[int]     = (*ArrayDeque[int])(nil)
	_ Deque[int]     = (*LinkedListDeque[int])(nil)
	_ Deque[float64] = (*AveragingDeque[float64])(nil)
)

type variant struct {
	name     string
	newDeque func() Deque[int]
}

var variants = []variant{
	{"ArrayDeque", func() Deque[int] { return NewArrayDeque[int]() }},
	{"LinkedListDeque", func() Deque[int] { return NewLinkedListDeque[int]() }},
	{"AveragingDeque", func() Deque[int] { return NewAveragingDeque[int]() }},
}

// checkInvariants asserts the structural invariants of the concrete type.
func checkInvariants(t *testing.T, d Deque[int]) {
	t.Helper()
	switch d := d.(type) {
	case *ArrayDeque[int]:
		require.LessOrEqual(t, d.Len(), d.Cap())
		require.GreaterOrEqual(t, d.Cap(), minCapacity)
	case *LinkedListDeque[int]:
		require.Len(t, d.nodes, d.Len()+1)
		require.NoError(t, d.validate())
	case *AveragingDeque[int]:
		require.LessOrEqual(t, d.deque.Len(), d.deque.Cap())
	}
}

func TestDequeMatchesReferenceModel(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			d := v.newDeque()
			var model []int

			for step := 0; step < 20000; step++ {
				switch op := rng.Intn(10); {
				case op < 3:
					d.AddFirst(step)
					model = append([]int{step}, model...)
				case op < 6:
					d.AddLast(step)
					model = append(model, step)
				case op < 8:
					got, ok := d.RemoveFirst()
					require.Equal(t, len(model) > 0, ok, "step %d", step)
					if ok {
						require.Equal(t, model[0], got, "step %d", step)
						model = model[1:]
					}
				default:
					got, ok := d.RemoveLast()
					require.Equal(t, len(model) > 0, ok, "step %d", step)
					if ok {
						require.Equal(t, model[len(model)-1], got, "step %d", step)
						model = model[:len(model)-1]
					}
				}

				require.Equal(t, len(model), d.Len(), "step %d", step)
				checkInvariants(t, d)
				if step%97 == 0 {
					require.Equal(t, fmt.Sprint(model), spaced(d.String()), "step %d", step)
				}
			}
		})
	}
}

// spaced converts "[1, 2]" into fmt's slice format "[1 2]".
func spaced(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

func TestRoundTripOrder(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			d := v.newDeque()
			for i := 0; i < 100; i++ {
				d.AddLast(i)
			}
			for i := 0; i < 100; i++ {
				got, ok := d.RemoveFirst()
				require.True(t, ok)
				require.Equal(t, i, got)
			}

			for i := 0; i < 100; i++ {
				d.AddFirst(i)
			}
			for i := 99; i >= 0; i-- {
				got, ok := d.RemoveFirst()
				require.True(t, ok)
				require.Equal(t, i, got)
			}
			require.Equal(t, 0, d.Len())
		})
	}
}

func TestEmptyDequeReportsAbsence(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			d := v.newDeque()

			_, ok := d.RemoveFirst()
			assert.False(t, ok)
			_, ok = d.RemoveLast()
			assert.False(t, ok)
			_, ok = d.GetFirst()
			assert.False(t, ok)
			_, ok = d.GetLast()
			assert.False(t, ok)
			p, ok := d.GetFirstMut()
			assert.False(t, ok)
			assert.Nil(t, p)
			p, ok = d.GetLastMut()
			assert.False(t, ok)
			assert.Nil(t, p)
			assert.Equal(t, "[]", d.String())
			assert.Equal(t, 0, d.Len())
		})
	}
}

func TestAddFirstThenRemoveLast(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			d := v.newDeque()
			d.AddFirst(10)

			got, ok := d.RemoveLast()
			require.True(t, ok)
			require.Equal(t, 10, got)
			require.Equal(t, 0, d.Len())
			require.Equal(t, "[]", d.String())
			checkInvariants(t, d)
		})
	}
}

func TestString(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			d := v.newDeque()
			d.AddLast(1)
			d.AddLast(2)
			d.AddLast(3)
			require.Equal(t, "[1, 2, 3]", d.String())

			d.AddFirst(0)
			require.Equal(t, "[0, 1, 2, 3]", d.String())
		})
	}
}

func TestGetFirstAndLast(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			d := v.newDeque()
			d.AddLast(2)
			d.AddFirst(1)
			d.AddLast(3)

			first, ok := d.GetFirst()
			require.True(t, ok)
			require.Equal(t, 1, first)
			last, ok := d.GetLast()
			require.True(t, ok)
			require.Equal(t, 3, last)
			require.Equal(t, 3, d.Len())
		})
	}
}

func TestLargeSequence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large sequence in short mode")
	}
	const n = 1000000

	for _, v := range variants[:2] {
		t.Run(v.name, func(t *testing.T) {
			d := v.newDeque()
			for i := 0; i < n; i++ {
				d.AddLast(i)
			}
			require.Equal(t, n, d.Len())

			for i := 0; i < n/2; i++ {
				got, ok := d.RemoveFirst()
				if !ok || got != i {
					t.Fatalf("RemoveFirst #%d: got %d, %v", i, got, ok)
				}
			}
			for i := n - 1; i > n/2; i-- {
				got, ok := d.RemoveLast()
				if !ok || got != i {
					t.Fatalf("RemoveLast: expected %d, got %d, %v", i, got, ok)
				}
			}

			require.Equal(t, 1, d.Len())
			last, ok := d.RemoveLast()
			require.True(t, ok)
			require.Equal(t, n/2, last)
			checkInvariants(t, d)
		})
	}
}
