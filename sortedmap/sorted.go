// Package sortedmap provides a map kept in ascending key order
// together with its literal constructors.
package sortedmap

import (
	"fmt"
	"strings"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"

	"github.com/denismitr/macroland/kv"
	"github.com/denismitr/macroland/utils"
)

const DefaultDegree = 32

type (
	Map[K constraints.Ordered, V any] struct {
		tree   *btree.BTreeG[kv.Pair[K, V]]
		degree int
	}

	config struct {
		degree int
	}

	Option func(c *config)

	ForEachFn[K constraints.Ordered, V any]      func(key K, value V, order int)
	ForEachUntilFn[K constraints.Ordered, V any] func(key K, value V, order int) bool
	FilterFn[K constraints.Ordered, V any]       func(key K, value V, order int) bool
	TransformerFn[K constraints.Ordered, V any]  func(key K, value V, order int) V
)

// WithDegree sets the degree of the underlying b-tree
func WithDegree(n int) Option {
	return func(c *config) {
		if n < 2 {
			n = 2
		}
		c.degree = n
	}
}

// New creates an empty map of K to V
func New[K constraints.Ordered, V any](options ...Option) *Map[K, V] {
	cfg := config{degree: DefaultDegree}
	for _, o := range options {
		o(&cfg)
	}

	return &Map[K, V]{
		tree:   btree.NewG[kv.Pair[K, V]](cfg.degree, lessByKey[K, V]),
		degree: cfg.degree,
	}
}

// Of creates a map and sets every pair in argument order,
// a repeated key keeps the last value
func Of[K constraints.Ordered, V any](first kv.Pair[K, V], rest ...kv.Pair[K, V]) *Map[K, V] {
	m := New[K, V]()
	m.Set(first.Key, first.Value)
	for _, p := range rest {
		m.Set(p.Key, p.Value)
	}
	return m
}

func lessByKey[K constraints.Ordered, V any](a, b kv.Pair[K, V]) bool {
	return utils.Less(a.Key, b.Key)
}

func probe[K constraints.Ordered, V any](key K) kv.Pair[K, V] {
	return kv.Pair[K, V]{Key: key}
}

// Set overwrites the value of an existing key
func (m *Map[K, V]) Set(key K, value V) (replaced bool) {
	_, replaced = m.tree.ReplaceOrInsert(kv.P(key, value))
	return replaced
}

// SetNX only sets a key that is not in the map yet
func (m *Map[K, V]) SetNX(key K, value V) (added bool) {
	if m.Has(key) {
		return false
	}

	m.tree.ReplaceOrInsert(kv.P(key, value))
	return true
}

func (m *Map[K, V]) HasGet(key K) (V, bool) {
	p, found := m.tree.Get(probe[K, V](key))
	if !found {
		return utils.GetZero[V](), false
	}

	return p.Value, true
}

func (m *Map[K, V]) Get(key K) V {
	v, _ := m.HasGet(key)
	return v
}

func (m *Map[K, V]) Has(key K) bool {
	return m.tree.Has(probe[K, V](key))
}

func (m *Map[K, V]) Remove(key K) (V, bool) {
	p, found := m.tree.Delete(probe[K, V](key))
	if !found {
		return utils.GetZero[V](), false
	}

	return p.Value, true
}

func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

func (m *Map[K, V]) Clear() {
	m.tree.Clear(false)
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	m.tree.Ascend(func(p kv.Pair[K, V]) bool {
		keys = append(keys, p.Key)
		return true
	})
	return keys
}

func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.tree.Len())
	m.tree.Ascend(func(p kv.Pair[K, V]) bool {
		values = append(values, p.Value)
		return true
	})
	return values
}

// Pairs returns all entries in ascending key order
func (m *Map[K, V]) Pairs() []kv.Pair[K, V] {
	pairs := make([]kv.Pair[K, V], 0, m.tree.Len())
	m.tree.Ascend(func(p kv.Pair[K, V]) bool {
		pairs = append(pairs, p)
		return true
	})
	return pairs
}

func (m *Map[K, V]) ForEach(f ForEachFn[K, V]) {
	order := 0
	m.tree.Ascend(func(p kv.Pair[K, V]) bool {
		f(p.Key, p.Value, order)
		order++
		return true
	})
}

func (m *Map[K, V]) ForEachUntil(ff ForEachUntilFn[K, V]) *Map[K, V] {
	order := 0
	m.tree.Ascend(func(p kv.Pair[K, V]) bool {
		canGoOn := ff(p.Key, p.Value, order)
		order++
		return canGoOn
	})

	return m
}

func (m *Map[K, V]) Transform(f TransformerFn[K, V]) *Map[K, V] {
	result := New[K, V](WithDegree(m.degree))
	m.ForEach(func(key K, value V, order int) {
		result.Set(key, f(key, value, order))
	})
	return result
}

func (m *Map[K, V]) Filter(f FilterFn[K, V]) *Map[K, V] {
	result := New[K, V](WithDegree(m.degree))
	m.ForEach(func(key K, value V, order int) {
		if f(key, value, order) {
			result.Set(key, value)
		}
	})
	return result
}

// Clone is a lazy copy-on-write clone of the map
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone(), degree: m.degree}
}

// Degree is the degree of the underlying b-tree
func (m *Map[K, V]) Degree() int {
	return m.degree
}

// Equal compares keys and values of both maps, values are compared with eq
func (m *Map[K, V]) Equal(other *Map[K, V], eq func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}

	equal := true
	m.tree.Ascend(func(p kv.Pair[K, V]) bool {
		v, found := other.HasGet(p.Key)
		equal = found && eq(p.Value, v)
		return equal
	})

	return equal
}

func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	m.tree.Ascend(func(p kv.Pair[K, V]) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(fmt.Sprintf("%v: %v", p.Key, p.Value))
		return true
	})
	b.WriteString("}")
	return b.String()
}
