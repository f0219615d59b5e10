package sorting

import "cmp"

// Costs counts the abstract operations a sort performs, for comparing
// observed running cost against the analytical growth rates:
// insertion sort is Θ(n²) in the worst case, merge sort Θ(n log n).
type Costs struct {
	Comparisons int
	Moves       int
}

// InsertionSortCosts sorts a in place and returns the operation counts.
func InsertionSortCosts[T cmp.Ordered](a []T) Costs {
	var c Costs
	for j := 1; j < len(a); j++ {
		key := a[j]
		c.Moves++
		i := j - 1
		for i >= 0 {
			c.Comparisons++
			if a[i] <= key {
				break
			}

			a[i+1] = a[i]
			c.Moves++
			i--
		}

		a[i+1] = key
		c.Moves++
	}

	return c
}

// MergeSortCosts sorts all of a in place and returns the operation
// counts.
func MergeSortCosts[T cmp.Ordered](a []T) Costs {
	var c Costs
	if len(a) > 1 {
		mergeSortCosts(a, 0, len(a)-1, &c)
	}

	return c
}

func mergeSortCosts[T cmp.Ordered](a []T, p, r int, c *Costs) {
	if p >= r {
		return
	}

	q := (p + r) / 2
	mergeSortCosts(a, p, q, c)
	mergeSortCosts(a, q+1, r, c)
	mergeCosts(a, p, q, r, c)
}

func mergeCosts[T cmp.Ordered](a []T, p, q, r int, c *Costs) {
	left := append([]T(nil), a[p:q+1]...)
	right := append([]T(nil), a[q+1:r+1]...)
	c.Moves += r - p + 1

	i, j := 0, 0
	for k := p; k <= r; k++ {
		take := -1
		switch {
		case i == len(left):
			take = 1
		case j == len(right):
			take = 0
		default:
			c.Comparisons++
			if right[j] < left[i] {
				take = 1
			} else {
				take = 0
			}
		}

		if take == 0 {
			a[k] = left[i]
			i++
		} else {
			a[k] = right[j]
			j++
		}
		c.Moves++
	}
}
