package sorting

import "cmp"

// Merge combines the adjacent sorted runs a[p..q] and a[q+1..r]
// (inclusive bounds) into a single sorted run in linear time. Ties are
// broken in favor of the left run, which is what makes MergeSort
// stable. The textbook formulation guards the scan with ∞ sentinels;
// for an arbitrary ordered type no largest value exists, so exhaustion
// of either run is checked explicitly instead.
func Merge[T cmp.Ordered](a []T, p, q, r int) {
	mergeFunc(a, p, q, r, func(x, y T) bool { return x < y })
}

// MergeFunc is Merge with a caller-supplied ordering.
func MergeFunc[T any](a []T, p, q, r int, less func(x, y T) bool) {
	mergeFunc(a, p, q, r, less)
}

func mergeFunc[T any](a []T, p, q, r int, less func(x, y T) bool) {
	left := append([]T(nil), a[p:q+1]...)
	right := append([]T(nil), a[q+1:r+1]...)

	i, j := 0, 0
	for k := p; k <= r; k++ {
		switch {
		case i == len(left):
			a[k] = right[j]
			j++
		case j == len(right) || !less(right[j], left[i]):
			// Left element goes first on ties.
			a[k] = left[i]
			i++
		default:
			a[k] = right[j]
			j++
		}
	}
}

// MergeSort sorts a[p..r] (inclusive bounds) in place by divide and
// conquer: split at the midpoint, sort each half, Merge. O(n log n)
// comparisons in all cases. Sorting the whole slice is
// MergeSort(a, 0, len(a)-1); sorting a sorted slice leaves it unchanged.
func MergeSort[T cmp.Ordered](a []T, p, r int) {
	if p >= r {
		return
	}

	q := (p + r) / 2
	MergeSort(a, p, q)
	MergeSort(a, q+1, r)
	Merge(a, p, q, r)
}

// MergeSortFunc is MergeSort with a caller-supplied ordering.
// The sort is stable.
func MergeSortFunc[T any](a []T, p, r int, less func(x, y T) bool) {
	if p >= r {
		return
	}

	q := (p + r) / 2
	MergeSortFunc(a, p, q, less)
	MergeSortFunc(a, q+1, r, less)
	MergeFunc(a, p, q, r, less)
}
