// Package set provides a hash set and a sorted set together with
// their literal constructors.
package set

import (
	"github.com/pkg/errors"
)

var ErrEmpty = errors.New("set is empty")

type nothing struct{}

type Set[T any] interface {
	Insert(item T) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Items() []T
	Len() int
	InsertSet(sourceSet Set[T]) (modified bool)
	InsertSlice(sourceSlice []T) (modified bool)
}

// Equal reports whether both sets hold the same items
func Equal[T any](a, b Set[T]) bool {
	if a.Len() != b.Len() {
		return false
	}

	for _, item := range a.Items() {
		if !b.Has(item) {
			return false
		}
	}

	return true
}

func insertSet[T any](s Set[T], sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func insertSlice[T any](s Set[T], sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}
