package set

import (
	"fmt"
	"strings"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"

	"github.com/denismitr/macroland/utils"
)

const DefaultDegree = 32

type (
	config struct {
		degree int
	}

	Option func(c *config)

	LessFn[T any] func(a, b T) bool

	// Sorted keeps its items in ascending order
	Sorted[T any] struct {
		tree *btree.BTreeG[T]
	}
)

var _ Set[int] = (*Sorted[int])(nil)

// WithDegree sets the degree of the underlying b-tree
func WithDegree(n int) Option {
	return func(c *config) {
		if n < 2 {
			n = 2
		}
		c.degree = n
	}
}

// NewSorted creates an empty sorted set of T
func NewSorted[T constraints.Ordered](options ...Option) *Sorted[T] {
	return NewSortedFunc[T](utils.Less[T], options...)
}

// NewSortedFunc creates an empty sorted set ordered by less.
// Items for which neither less(a, b) nor less(b, a) holds are treated as equal.
func NewSortedFunc[T any](less LessFn[T], options ...Option) *Sorted[T] {
	cfg := config{degree: DefaultDegree}
	for _, o := range options {
		o(&cfg)
	}

	return &Sorted[T]{
		tree: btree.NewG[T](cfg.degree, btree.LessFunc[T](less)),
	}
}

// SortedOf creates a sorted set and inserts every value in argument order
func SortedOf[T constraints.Ordered](first T, rest ...T) *Sorted[T] {
	s := NewSorted[T]()
	s.Insert(first)
	s.InsertSlice(rest)
	return s
}

// Insert is a no-op for an item already in the set
func (s *Sorted[T]) Insert(item T) (modified bool) {
	if s.tree.Has(item) {
		return false
	}

	s.tree.ReplaceOrInsert(item)
	return true
}

func (s *Sorted[T]) Remove(item T) bool {
	_, found := s.tree.Delete(item)
	return found
}

func (s *Sorted[T]) Clear() {
	s.tree.Clear(false)
}

func (s *Sorted[T]) Has(item T) bool {
	return s.tree.Has(item)
}

// Items returns the items in ascending order
func (s *Sorted[T]) Items() []T {
	items := make([]T, 0, s.tree.Len())
	s.tree.Ascend(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Ascend calls fn for every item in ascending order until fn returns false
func (s *Sorted[T]) Ascend(fn func(item T) bool) {
	s.tree.Ascend(btree.ItemIteratorG[T](fn))
}

func (s *Sorted[T]) Min() (T, error) {
	item, ok := s.tree.Min()
	if !ok {
		return utils.GetZero[T](), ErrEmpty
	}
	return item, nil
}

func (s *Sorted[T]) Max() (T, error) {
	item, ok := s.tree.Max()
	if !ok {
		return utils.GetZero[T](), ErrEmpty
	}
	return item, nil
}

func (s *Sorted[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	return insertSet[T](s, sourceSet)
}

func (s *Sorted[T]) InsertSlice(sourceSlice []T) (modified bool) {
	return insertSlice[T](s, sourceSlice)
}

func (s *Sorted[T]) Len() int {
	return s.tree.Len()
}

func (s *Sorted[T]) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	s.tree.Ascend(func(item T) bool {
		if !first {
			b.WriteString(" ")
		}
		first = false
		b.WriteString(fmt.Sprint(item))
		return true
	})
	b.WriteString("}")
	return b.String()
}
