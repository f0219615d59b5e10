package train

// SlicePool recycles float32 scratch buffers so that models do not
// allocate fresh prediction and residual slices on every step.
// The zero value is ready to use. It is not safe for concurrent use.
type SlicePool struct {
	pool [][]float32
}

// Alloc returns a zeroed slice of length n.
func (p *SlicePool) Alloc(n int) []float32 {
	if len(p.pool) > 0 {
		m := len(p.pool)
		next := p.pool[m-1]
		p.pool = p.pool[:m-1]
		return append(next, make([]float32, n)...)
	}

	return make([]float32, n)
}

// Free returns a slice obtained from Alloc to the pool.
func (p *SlicePool) Free(s []float32) {
	if cap(s) > 0 {
		p.pool = append(p.pool, s[:0])
	}
}
