package sorting

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

func TestInsertionSort_Example(t *testing.T) {
	a := []int{5, 2, 4, 6, 1, 3}
	InsertionSort(a)

	expected := []int{1, 2, 3, 4, 5, 6}
	for i := range expected {
		if a[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, a)
		}
	}
}

func TestMergeSort_Example(t *testing.T) {
	a := []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	MergeSort(a, 0, len(a)-1)

	for i := range a {
		if a[i] != i+1 {
			t.Fatalf("expected [1..10], got %v", a)
		}
	}
}

func TestInsertionSort_IsSortingPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(200)
		a := make([]int, n)
		for i := range a {
			a[i] = rng.Intn(50)
		}

		original := append([]int(nil), a...)
		InsertionSort(a)
		checkSortedPermutation(t, original, a)
	}
}

func TestMergeSort_IsSortingPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(200)
		a := make([]int, n)
		for i := range a {
			a[i] = rng.Intn(50)
		}

		original := append([]int(nil), a...)
		if n > 0 {
			MergeSort(a, 0, n-1)
		}
		checkSortedPermutation(t, original, a)
	}
}

func TestMergeSort_Idempotent(t *testing.T) {
	a := []int{1, 2, 2, 3, 5, 8, 13}
	expected := append([]int(nil), a...)

	MergeSort(a, 0, len(a)-1)
	for i := range expected {
		if a[i] != expected[i] {
			t.Errorf("sorted input changed: expected %v, got %v", expected, a)
		}
	}
}

func TestMerge_SortedRuns(t *testing.T) {
	a := []int{9, 1, 3, 5, 2, 4, 6, 9}
	// Runs a[1..3] and a[4..6] are sorted; surrounding elements must
	// not be touched.
	Merge(a, 1, 3, 6)

	expected := []int{9, 1, 2, 3, 4, 5, 6, 9}
	for i := range expected {
		if a[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, a)
		}
	}
}

type record struct {
	key int
	seq int // original position, to observe stability
}

func TestMergeSortFunc_Stable(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := make([]record, 500)
	for i := range a {
		a[i] = record{key: rng.Intn(10), seq: i}
	}

	MergeSortFunc(a, 0, len(a)-1, func(x, y record) bool { return x.key < y.key })
	checkStable(t, a)
}

func TestInsertionSortFunc_Stable(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	a := make([]record, 500)
	for i := range a {
		a[i] = record{key: rng.Intn(10), seq: i}
	}

	InsertionSortFunc(a, func(x, y record) bool { return x.key < y.key })
	checkStable(t, a)
}

func TestInsertionSortCosts_QuadraticBound(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range []int{10, 100, 1000} {
		a := make([]int, n)
		for i := range a {
			a[i] = rng.Intn(n)
		}

		costs := InsertionSortCosts(a)
		if !sort.IntsAreSorted(a) {
			t.Fatalf("n=%d: output not sorted", n)
		}

		// At most one comparison per inner-loop shift plus one per
		// outer iteration.
		bound := n*(n-1)/2 + n
		if costs.Comparisons > bound {
			t.Errorf("n=%d: %d comparisons exceeds bound %d", n, costs.Comparisons, bound)
		}

		t.Logf("n=%d: insertion sort used %d comparisons, %d moves", n, costs.Comparisons, costs.Moves)
	}
}

func TestInsertionSortCosts_LinearOnSortedInput(t *testing.T) {
	n := 1000
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}

	costs := InsertionSortCosts(a)
	if costs.Comparisons != n-1 {
		t.Errorf("expected %d comparisons on sorted input, got %d", n-1, costs.Comparisons)
	}
}

func TestMergeSortCosts_LinearithmicBound(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for _, n := range []int{10, 100, 1000, 10000} {
		a := make([]int, n)
		for i := range a {
			a[i] = rng.Intn(n)
		}

		costs := MergeSortCosts(a)
		if !sort.IntsAreSorted(a) {
			t.Fatalf("n=%d: output not sorted", n)
		}

		// Each of the ~log2(n) levels merges n elements with at most
		// n comparisons.
		bound := int(float64(n)*math.Log2(float64(n))) + n
		if costs.Comparisons > bound {
			t.Errorf("n=%d: %d comparisons exceeds bound %d", n, costs.Comparisons, bound)
		}

		t.Logf("n=%d: merge sort used %d comparisons, %d moves", n, costs.Comparisons, costs.Moves)
	}
}

func checkSortedPermutation(t *testing.T, original, sorted []int) {
	t.Helper()

	if len(original) != len(sorted) {
		t.Fatalf("length changed from %d to %d", len(original), len(sorted))
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] > sorted[i] {
			t.Fatalf("not sorted at %d: %v", i, sorted)
		}
	}

	counts := make(map[int]int)
	for _, v := range original {
		counts[v]++
	}
	for _, v := range sorted {
		counts[v]--
	}
	for v, c := range counts {
		if c != 0 {
			t.Fatalf("not a permutation: value %d count off by %d", v, c)
		}
	}
}

func checkStable(t *testing.T, a []record) {
	t.Helper()

	for i := 1; i < len(a); i++ {
		if a[i-1].key > a[i].key {
			t.Fatalf("not sorted at %d", i)
		}
		if a[i-1].key == a[i].key && a[i-1].seq > a[i].seq {
			t.Fatalf("equal keys out of original order at %d", i)
		}
	}
}

func BenchmarkInsertionSort(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	input := make([]int, 1000)
	for i := range input {
		input[i] = rng.Int()
	}

	a := make([]int, len(input))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(a, input)
		InsertionSort(a)
	}
}

func BenchmarkMergeSort(b *testing.B) {
	rng := rand.New(rand.NewSource(8))
	input := make([]int, 1000)
	for i := range input {
		input[i] = rng.Int()
	}

	a := make([]int, len(input))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(a, input)
		MergeSort(a, 0, len(a)-1)
	}
}
