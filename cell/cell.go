// Package cell provides single value containers: a mutable Cell
// and a write-once OnceCell.
package cell

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/denismitr/macroland/utils"
)

var ErrAlreadySet = errors.New("cell is already set")

// Cell holds exactly one value of T
type Cell[T any] struct {
	value T
}

// Of creates a cell holding v
func Of[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

func (c *Cell[T]) Get() T {
	return c.value
}

func (c *Cell[T]) Set(v T) {
	c.value = v
}

// Replace stores v and returns the previous value
func (c *Cell[T]) Replace(v T) (old T) {
	old, c.value = c.value, v
	return old
}

// Take returns the value and leaves the zero value in the cell
func (c *Cell[T]) Take() T {
	return c.Replace(utils.GetZero[T]())
}

func (c *Cell[T]) String() string {
	return fmt.Sprintf("Cell{%v}", c.value)
}

// OnceCell can be written only once
type OnceCell[T any] struct {
	value T
	set   bool
}

// NewOnce creates an empty once cell of T
func NewOnce[T any]() *OnceCell[T] {
	return &OnceCell[T]{}
}

// OnceOf creates a once cell that is already set to v
func OnceOf[T any](v T) *OnceCell[T] {
	return &OnceCell[T]{value: v, set: true}
}

func (c *OnceCell[T]) Set(v T) error {
	if c.set {
		return errors.Wrapf(ErrAlreadySet, "cannot set %v", v)
	}

	c.value = v
	c.set = true
	return nil
}

func (c *OnceCell[T]) Get() (T, bool) {
	if !c.set {
		return utils.GetZero[T](), false
	}
	return c.value, true
}

// GetOrInit sets the cell from init if it is still empty
func (c *OnceCell[T]) GetOrInit(init func() T) T {
	if !c.set {
		c.value = init()
		c.set = true
	}
	return c.value
}

func (c *OnceCell[T]) String() string {
	if !c.set {
		return "OnceCell(<uninit>)"
	}
	return fmt.Sprintf("OnceCell(%v)", c.value)
}
