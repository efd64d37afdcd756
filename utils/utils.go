package utils

import "golang.org/x/exp/constraints"

// GetZero returns the zero value of T
func GetZero[T any]() T {
	var result T
	return result
}

// Less is the natural ordering used by containers built over ordered types.
// NaN sorts before every other value and is equal to itself.
func Less[T constraints.Ordered](a, b T) bool {
	return a < b || (isNaN(a) && !isNaN(b))
}

func isNaN[T constraints.Ordered](x T) bool {
	return x != x
}
