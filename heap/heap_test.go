package heap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/macroland/heap"
)

func TestNew(t *testing.T) {
	t.Run("empty queue of the given type", func(t *testing.T) {
		pq := heap.New[uint]()
		require.NotNil(t, pq)
		assert.Equal(t, 0, pq.Len())
		assert.True(t, pq.IsEmpty())

		pq.Push(100)
		assert.Equal(t, 1, pq.Len())
	})

	t.Run("pop and peek on empty queue", func(t *testing.T) {
		pq := heap.New[string]()

		v, err := pq.Pop()
		assert.True(t, errors.Is(err, heap.ErrEmpty))
		assert.Equal(t, "", v)

		_, err = pq.Peek()
		assert.ErrorIs(t, err, heap.ErrEmpty)
	})
}

func TestOf(t *testing.T) {
	t.Run("equals an empty queue with pushes", func(t *testing.T) {
		uninit := heap.New[int]()
		for _, v := range []int{3, 7, 1, 7, 5} {
			uninit.Push(v)
		}

		pq := heap.Of(3, 7, 1, 7, 5)

		assert.Equal(t, uninit.Items(), pq.Items())
		assert.Equal(t, uninit.Sorted(), pq.Sorted())
	})

	t.Run("pops the greatest first and keeps duplicates", func(t *testing.T) {
		pq := heap.Of(3, 7, 1, 7, 5)
		assert.Equal(t, 5, pq.Len())

		top, err := pq.Peek()
		require.NoError(t, err)
		assert.Equal(t, 7, top)

		var popped []int
		for !pq.IsEmpty() {
			v, err := pq.Pop()
			require.NoError(t, err)
			popped = append(popped, v)
		}

		assert.Equal(t, []int{7, 7, 5, 3, 1}, popped)
	})

	t.Run("sorted does not drain the queue", func(t *testing.T) {
		pq := heap.Of("b", "c", "a")

		assert.Equal(t, []string{"a", "b", "c"}, pq.Sorted())
		assert.Equal(t, 3, pq.Len())

		top, err := pq.Peek()
		require.NoError(t, err)
		assert.Equal(t, "c", top)
	})
}

func TestNewFunc(t *testing.T) {
	type task struct {
		name     string
		priority int
	}

	pq := heap.NewFunc(func(a, b task) bool {
		return a.priority < b.priority
	})
	pq.Push(task{name: "low", priority: 1})
	pq.Push(task{name: "high", priority: 10})
	pq.Push(task{name: "mid", priority: 5})

	first, err := pq.Pop()
	require.NoError(t, err)
	assert.Equal(t, "high", first.name)

	second, err := pq.Pop()
	require.NoError(t, err)
	assert.Equal(t, "mid", second.name)

	pq.Clear()
	assert.True(t, pq.IsEmpty())
}

func TestPriorityQueue_String(t *testing.T) {
	assert.Equal(t, "[]", heap.New[int]().String())
	assert.Equal(t, "[100]", heap.Of(100).String())
}
