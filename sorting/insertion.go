// Package sorting implements the classic comparison sorts — insertion
// sort and merge sort — together with instrumented variants that count
// the comparisons and element moves each one performs.
package sorting

import "cmp"

// InsertionSort sorts a in place in non-decreasing order by growing a
// sorted prefix one element at a time. Worst case O(n²) comparisons
// and moves; O(n) on already-sorted input.
func InsertionSort[T cmp.Ordered](a []T) {
	for j := 1; j < len(a); j++ {
		key := a[j]
		i := j - 1
		for i >= 0 && a[i] > key {
			a[i+1] = a[i]
			i--
		}

		a[i+1] = key
	}
}

// InsertionSortFunc is InsertionSort with a caller-supplied ordering.
// The sort is stable: elements that compare equal keep their original
// relative order.
func InsertionSortFunc[T any](a []T, less func(x, y T) bool) {
	for j := 1; j < len(a); j++ {
		key := a[j]
		i := j - 1
		for i >= 0 && less(key, a[i]) {
			a[i+1] = a[i]
			i--
		}

		a[i+1] = key
	}
}
