package train

import (
	"testing"
)

func TestSlicePool_Reuse(t *testing.T) {
	var pool SlicePool

	s := pool.Alloc(8)
	if len(s) != 8 {
		t.Fatalf("expected length 8, got %d", len(s))
	}

	s[0] = 1.0
	pool.Free(s)

	s2 := pool.Alloc(4)
	if len(s2) != 4 {
		t.Fatalf("expected length 4, got %d", len(s2))
	}

	for i, v := range s2 {
		if v != 0 {
			t.Errorf("reused slice not zeroed at %d: %v", i, v)
		}
	}
}

// BenchmarkSlicePoolAllocFree measures steady-state recycling.
func BenchmarkSlicePoolAllocFree(b *testing.B) {
	var pool SlicePool
	for i := 0; i < b.N; i++ {
		v := pool.Alloc(10)
		pool.Free(v)
	}
}
