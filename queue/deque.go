// Package queue provides a double-ended queue and its literal constructors.
package queue

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/denismitr/macroland/utils"
)

var (
	ErrEmpty      = errors.New("queue is empty")
	ErrOutOfRange = errors.New("index out of range")
)

// Deque is a double-ended queue maintained over a ring buffer that doubles
// its capacity when full. It is not safe for concurrent use.
type Deque[T any] struct {
	buf   []T
	head  int // index of the front element
	tail  int // index of the first position after the back element
	count int
}

// NewDeque creates an empty deque of T
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{}
}

// DequeOf creates a deque and pushes every value to the front,
// so the final order is the reverse of the arguments
func DequeOf[T any](first T, rest ...T) *Deque[T] {
	q := NewDeque[T]()
	q.Reserve(len(rest) + 1)
	q.PushFront(first)
	for _, v := range rest {
		q.PushFront(v)
	}
	return q
}

func (q *Deque[T]) Len() int {
	return q.count
}

func (q *Deque[T]) Cap() int {
	return len(q.buf)
}

func (q *Deque[T]) IsEmpty() bool {
	return q.count == 0
}

func (q *Deque[T]) grow(n int) {
	newBuf := make([]T, n)
	for i := 0; i < q.count; i++ {
		newBuf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = newBuf
	q.head = 0
	q.tail = q.count % n
}

func (q *Deque[T]) maybeGrow() {
	if q.count < len(q.buf) {
		return
	}
	n := 2 * len(q.buf)
	if n == 0 {
		n = 1
	}
	q.grow(n)
}

// Reserve makes room for at least n elements without further allocation
func (q *Deque[T]) Reserve(n int) {
	if n > len(q.buf) {
		q.grow(n)
	}
}

func (q *Deque[T]) PushFront(item T) {
	q.maybeGrow()
	q.head = (len(q.buf) + q.head - 1) % len(q.buf)
	q.buf[q.head] = item
	q.count++
}

func (q *Deque[T]) PushBack(item T) {
	q.maybeGrow()
	q.buf[q.tail] = item
	q.tail = (q.tail + 1) % len(q.buf)
	q.count++
}

func (q *Deque[T]) Front() (T, error) {
	if q.count == 0 {
		return utils.GetZero[T](), ErrEmpty
	}
	return q.buf[q.head], nil
}

func (q *Deque[T]) Back() (T, error) {
	if q.count == 0 {
		return utils.GetZero[T](), ErrEmpty
	}
	return q.buf[(len(q.buf)+q.tail-1)%len(q.buf)], nil
}

func (q *Deque[T]) PopFront() (T, error) {
	if q.count == 0 {
		return utils.GetZero[T](), ErrEmpty
	}

	result := q.buf[q.head]
	q.buf[q.head] = utils.GetZero[T]()
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return result, nil
}

func (q *Deque[T]) PopBack() (T, error) {
	if q.count == 0 {
		return utils.GetZero[T](), ErrEmpty
	}

	last := (len(q.buf) + q.tail - 1) % len(q.buf)
	result := q.buf[last]
	q.buf[last] = utils.GetZero[T]()
	q.tail = last
	q.count--
	return result, nil
}

// Get returns the element at position i counting from the front
func (q *Deque[T]) Get(i int) (T, error) {
	if i < 0 || i >= q.count {
		return utils.GetZero[T](), errors.Wrapf(ErrOutOfRange, "index %d, len %d", i, q.count)
	}
	return q.buf[(q.head+i)%len(q.buf)], nil
}

// Clear drops all elements but keeps the allocated buffer
func (q *Deque[T]) Clear() {
	for i := range q.buf {
		q.buf[i] = utils.GetZero[T]()
	}
	q.head = 0
	q.tail = 0
	q.count = 0
}

// Items returns the elements front to back
func (q *Deque[T]) Items() []T {
	items := make([]T, 0, q.count)
	for i := 0; i < q.count; i++ {
		items = append(items, q.buf[(q.head+i)%len(q.buf)])
	}
	return items
}

func (q *Deque[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < q.count; i++ {
		if i != 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprint(q.buf[(q.head+i)%len(q.buf)]))
	}
	b.WriteString("]")
	return b.String()
}
