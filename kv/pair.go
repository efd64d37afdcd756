package kv

import "fmt"

// Pair is a single key => value entry of a map literal.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// P builds a Pair, it is the shorthand used in map literals:
//
//	hashmap.Of(kv.P("Uno", 1), kv.P("Dos", 2))
func P[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v: %v", p.Key, p.Value)
}
