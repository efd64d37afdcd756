// Package heap provides a max priority queue and its literal constructors.
package heap

import (
	stdheap "container/heap"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/denismitr/macroland/utils"
)

var ErrEmpty = errors.New("priority queue is empty")

type (
	LessFn[T any] func(a, b T) bool

	// items implements container/heap.Interface as a max heap
	items[T any] struct {
		values []T
		less   LessFn[T]
	}

	// PriorityQueue pops the greatest element first.
	// It is not safe for concurrent use.
	PriorityQueue[T any] struct {
		h *items[T]
	}
)

func (h *items[T]) Len() int           { return len(h.values) }
func (h *items[T]) Less(i, j int) bool { return h.less(h.values[j], h.values[i]) }
func (h *items[T]) Swap(i, j int)      { h.values[i], h.values[j] = h.values[j], h.values[i] }

func (h *items[T]) Push(x any) {
	h.values = append(h.values, x.(T))
}

func (h *items[T]) Pop() any {
	n := len(h.values)
	last := h.values[n-1]
	h.values[n-1] = utils.GetZero[T]()
	h.values = h.values[:n-1]
	return last
}

// New creates an empty priority queue of T
func New[T constraints.Ordered]() *PriorityQueue[T] {
	return NewFunc[T](utils.Less[T])
}

// NewFunc creates an empty priority queue ordered by less,
// the greatest element according to less is popped first.
func NewFunc[T any](less LessFn[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		h: &items[T]{less: less},
	}
}

// Of creates a priority queue and pushes every value in argument order
func Of[T constraints.Ordered](first T, rest ...T) *PriorityQueue[T] {
	pq := New[T]()
	pq.Push(first)
	for _, v := range rest {
		pq.Push(v)
	}
	return pq
}

func (pq *PriorityQueue[T]) Push(item T) {
	stdheap.Push(pq.h, item)
}

// Pop removes and returns the greatest item
func (pq *PriorityQueue[T]) Pop() (T, error) {
	if pq.h.Len() == 0 {
		return utils.GetZero[T](), ErrEmpty
	}

	return stdheap.Pop(pq.h).(T), nil
}

// Peek returns the greatest item without removing it
func (pq *PriorityQueue[T]) Peek() (T, error) {
	if pq.h.Len() == 0 {
		return utils.GetZero[T](), ErrEmpty
	}

	return pq.h.values[0], nil
}

func (pq *PriorityQueue[T]) Len() int {
	return pq.h.Len()
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.h.Len() == 0
}

func (pq *PriorityQueue[T]) Clear() {
	pq.h.values = nil
}

// Items returns a copy of the underlying slice in heap order
func (pq *PriorityQueue[T]) Items() []T {
	result := make([]T, len(pq.h.values))
	copy(result, pq.h.values)
	return result
}

// Sorted returns the items in ascending order, leaving the queue untouched
func (pq *PriorityQueue[T]) Sorted() []T {
	clone := &items[T]{values: pq.Items(), less: pq.h.less}
	result := make([]T, clone.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = stdheap.Pop(clone).(T)
	}
	return result
}

func (pq *PriorityQueue[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range pq.h.values {
		if i != 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprint(v))
	}
	b.WriteString("]")
	return b.String()
}
