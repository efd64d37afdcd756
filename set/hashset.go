package set

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Hash - is an unordered set
type Hash[T comparable] struct {
	m map[T]nothing
}

var _ Set[int] = (*Hash[int])(nil)

// New creates an empty hash set of T
func New[T comparable]() *Hash[T] {
	return &Hash[T]{
		m: make(map[T]nothing),
	}
}

// Of creates a hash set and inserts every value in argument order,
// duplicates are dropped by Insert
func Of[T comparable](first T, rest ...T) *Hash[T] {
	s := New[T]()
	s.Insert(first)
	s.InsertSlice(rest)
	return s
}

func (s *Hash[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = nothing{}
		modified = true
	}

	return modified
}

func (s *Hash[T]) Clear() {
	s.m = make(map[T]nothing)
}

func (s *Hash[T]) Items() []T {
	return maps.Keys(s.m)
}

func (s *Hash[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *Hash[T]) Remove(item T) bool {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		return true
	}

	return false
}

func (s *Hash[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	return insertSet[T](s, sourceSet)
}

func (s *Hash[T]) InsertSlice(sourceSlice []T) (modified bool) {
	return insertSlice[T](s, sourceSlice)
}

func (s *Hash[T]) Len() int {
	return len(s.m)
}

// String prints the items sorted by their fmt representation
func (s *Hash[T]) String() string {
	items := make([]string, 0, len(s.m))
	for item := range s.m {
		items = append(items, fmt.Sprint(item))
	}
	slices.Sort(items)
	return "{" + strings.Join(items, " ") + "}"
}
