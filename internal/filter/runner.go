package filter

import "sync"

// RowRunner splits the rows [0, n) of a pass into ranges and blocks until
// fn has returned for all of them. The ranges must cover [0, n) exactly
// once. *workerpool.Pool from go-highway satisfies this interface.
type RowRunner interface {
	ParallelFor(n int, fn func(start, end int))
}

// Sequential runs every pass on the calling goroutine.
var Sequential RowRunner = sequential{}

type sequential struct{}

func (sequential) ParallelFor(n int, fn func(start, end int)) {
	if n > 0 {
		fn(0, n)
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// scratchPool recycles horizontal pass buffers between calls.
var scratchPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{}
	},
}

// maxPooledScratch bounds the buffers kept by scratchPool (64MB).
const maxPooledScratch = 16 * 1024 * 1024

// getScratch returns a buffer of exactly n elements. The contents are
// unspecified; the horizontal pass overwrites every element it reads back.
func getScratch(n int) *floatBuffer {
	buf := scratchPool.Get().(*floatBuffer)
	if cap(buf.data) < n {
		buf.data = make([]float32, n)
	}
	buf.data = buf.data[:n]
	return buf
}

// putScratch returns a buffer to the pool.
func putScratch(buf *floatBuffer) {
	if cap(buf.data) > maxPooledScratch {
		return
	}
	scratchPool.Put(buf)
}
