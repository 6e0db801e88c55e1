// Copyright (c) Bence Cserna. All rights reserved.
// Licensed under the MIT License.

package dpq

import "cmp"

// A Comparator establishes the priority order between two items. It returns a
// negative number when a sorts before b, a positive number when b sorts before
// a, and zero when the two are tied. The queue breaks ties arbitrarily, so the
// relative order of equal-priority items is unspecified.
type Comparator[T any] func(a, b T) int

// A LessFunc reports whether a should sort before b. It must define a strict
// weak ordering.
type LessFunc[T any] func(a, b T) bool

// FromLess adapts a LessFunc into a [Comparator] for callers that only have a
// less-than relation. The resulting comparator calls less at most twice per
// comparison.
func FromLess[T any](less LessFunc[T]) Comparator[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Natural returns a [Comparator] for types with a built-in order.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}
