// Package hashmap builds Go maps from key => value literals.
package hashmap

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/denismitr/macroland/kv"
)

// New creates an empty map of K to V
func New[K comparable, V any]() map[K]V {
	return make(map[K]V)
}

// Of creates a map and assigns every pair in argument order,
// a repeated key keeps the last value
func Of[K comparable, V any](first kv.Pair[K, V], rest ...kv.Pair[K, V]) map[K]V {
	m := make(map[K]V, len(rest)+1)
	m[first.Key] = first.Value
	for _, p := range rest {
		m[p.Key] = p.Value
	}
	return m
}

// Keys returns the keys of m in ascending order
func Keys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
