// Package list provides a typed doubly linked list and its literal constructors.
package list

import (
	stdlist "container/list"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/denismitr/macroland/utils"
)

var ErrEmpty = errors.New("list is empty")

// List is a doubly linked list of T. It is not safe for concurrent use.
type List[T any] struct {
	l *stdlist.List
}

// New creates an empty list of T
func New[T any]() *List[T] {
	return &List[T]{l: stdlist.New()}
}

// Of creates a list and pushes every value to the front,
// so the final order is the reverse of the arguments
func Of[T any](first T, rest ...T) *List[T] {
	l := New[T]()
	l.PushFront(first)
	for _, v := range rest {
		l.PushFront(v)
	}
	return l
}

func (l *List[T]) PushFront(v T) {
	l.l.PushFront(v)
}

func (l *List[T]) PushBack(v T) {
	l.l.PushBack(v)
}

func (l *List[T]) Front() (T, error) {
	el := l.l.Front()
	if el == nil {
		return utils.GetZero[T](), ErrEmpty
	}
	return el.Value.(T), nil
}

func (l *List[T]) Back() (T, error) {
	el := l.l.Back()
	if el == nil {
		return utils.GetZero[T](), ErrEmpty
	}
	return el.Value.(T), nil
}

func (l *List[T]) PopFront() (T, error) {
	el := l.l.Front()
	if el == nil {
		return utils.GetZero[T](), ErrEmpty
	}
	return l.l.Remove(el).(T), nil
}

func (l *List[T]) PopBack() (T, error) {
	el := l.l.Back()
	if el == nil {
		return utils.GetZero[T](), ErrEmpty
	}
	return l.l.Remove(el).(T), nil
}

func (l *List[T]) Len() int {
	return l.l.Len()
}

func (l *List[T]) IsEmpty() bool {
	return l.l.Len() == 0
}

func (l *List[T]) Clear() {
	l.l.Init()
}

// Items returns the values front to back
func (l *List[T]) Items() []T {
	items := make([]T, 0, l.l.Len())
	for el := l.l.Front(); el != nil; el = el.Next() {
		items = append(items, el.Value.(T))
	}
	return items
}

// Reversed returns the values back to front
func (l *List[T]) Reversed() []T {
	items := make([]T, 0, l.l.Len())
	for el := l.l.Back(); el != nil; el = el.Prev() {
		items = append(items, el.Value.(T))
	}
	return items
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for el := l.l.Front(); el != nil; el = el.Next() {
		if el != l.l.Front() {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprint(el.Value))
	}
	b.WriteString("]")
	return b.String()
}
