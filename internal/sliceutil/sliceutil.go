// Package sliceutil provides generic helpers over slices.
package sliceutil

// Map returns the result of applying fn to every element of slice.
func Map[T any, U any](slice []T, fn func(T) U) []U {
	mapped := make([]U, len(slice))
	for i, elem := range slice {
		mapped[i] = fn(elem)
	}
	return mapped
}

// Filter returns the elements of slice for which keep returns true, in order.
// The result is never nil so that empty groupings render as empty lists.
func Filter[T any](slice []T, keep func(T) bool) []T {
	filtered := make([]T, 0, len(slice))
	for _, elem := range slice {
		if keep(elem) {
			filtered = append(filtered, elem)
		}
	}
	return filtered
}

// Any reports whether fn returns true for at least one element of slice.
func Any[T any](slice []T, fn func(T) bool) bool {
	for _, elem := range slice {
		if fn(elem) {
			return true
		}
	}
	return false
}
