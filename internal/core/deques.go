package core

import (
	"fmt"

	"github.com/vskvj3/deques/internal/datastructures"
	"github.com/vskvj3/deques/internal/utils"
)

// NewDeque creates an empty deque of the named variant.
func NewDeque(kind string) (datastructures.Deque[float64], error) {
	switch kind {
	case utils.DequeArray:
		return datastructures.NewArrayDeque[float64](), nil
	case utils.DequeLinked:
		return datastructures.NewLinkedListDeque[float64](), nil
	case utils.DequeAveraging:
		return datastructures.NewAveragingDeque[float64](), nil
	default:
		return nil, fmt.Errorf("unknown deque type %q", kind)
	}
}
