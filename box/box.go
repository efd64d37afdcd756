// Package box moves a value to the heap in a single expression.
package box

// Of returns a pointer to a heap allocated copy of v.
// It is the same as new(T) followed by an assignment.
func Of[T any](v T) *T {
	p := new(T)
	*p = v
	return p
}
