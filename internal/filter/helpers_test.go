package filter

import (
	"math/rand/v2"

	"github.com/gogpu/atwt/internal/image"
)

// Test helper functions shared across filter tests.

// newTestPlane allocates a plane or panics.
func newTestPlane[T image.Sample](w, h, stride int) *image.Plane[T] {
	p, err := image.NewPlaneWithStride[T](w, h, stride)
	if err != nil {
		panic(err)
	}
	return p
}

// randomPlane fills a plane with uniform integers in [0, maxVal].
func randomPlane[T image.Sample](w, h, stride int, maxVal uint32, seed uint64) *image.Plane[T] {
	p := newTestPlane[T](w, h, stride)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for y := range h {
		row := p.Row(y)
		for x := range row {
			row[x] = T(rng.Uint32N(maxVal + 1))
		}
	}
	return p
}

// dyadicPlane fills a float plane with multiples of 1/256 in [0, 1].
// Every intermediate of the kernels is exact for such data.
func dyadicPlane(w, h int, seed uint64) *image.Plane[float32] {
	p := newTestPlane[float32](w, h, w)
	rng := rand.New(rand.NewPCG(seed, seed+1))
	for y := range h {
		row := p.Row(y)
		for x := range row {
			row[x] = float32(rng.IntN(257)) / 256
		}
	}
	return p
}

// chunkRunner splits rows into fixed size chunks and runs them in reverse
// order to catch passes that depend on row order.
type chunkRunner struct {
	chunk int
	calls int
}

func (r *chunkRunner) ParallelFor(n int, fn func(start, end int)) {
	var ranges [][2]int
	for start := 0; start < n; start += r.chunk {
		ranges = append(ranges, [2]int{start, min(start+r.chunk, n)})
	}
	for i := len(ranges) - 1; i >= 0; i-- {
		r.calls++
		fn(ranges[i][0], ranges[i][1])
	}
}

// reflectOnce is the single 101 reflection rule applied until in range.
func reflectOnce(pos, size int) int {
	if size == 1 {
		return 0
	}
	for pos < 0 || pos >= size {
		if pos < 0 {
			pos = -pos
		}
		if pos >= size {
			pos = 2*size - 2 - pos
		}
	}
	return pos
}

// naiveBlur computes the normalised 2D blur directly from the 5x5 outer
// product kernel using float64 arithmetic.
func naiveBlur[T image.Sample](src *image.Plane[T], step int) [][]float64 {
	out := make([][]float64, src.Height)
	for y := range src.Height {
		out[y] = make([]float64, src.Width)
		for x := range src.Width {
			var sum float64
			for j := range Taps {
				sy := reflectOnce(y+(j-2)*step, src.Height)
				for i := range Taps {
					sx := reflectOnce(x+(i-2)*step, src.Width)
					sum += float64(src.At(sx, sy)) * float64(Kernel[i]*Kernel[j])
				}
			}
			out[y][x] = sum / KernelMass
		}
	}
	return out
}
