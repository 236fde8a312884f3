package filter

import "github.com/gogpu/atwt/internal/image"

// Replace writes base + detail - neutral into dst.
// All three planes must have the same dimensions.
func Replace[T image.Sample](base, detail, dst *image.Plane[T], pol Policy, run RowRunner) {
	if run == nil {
		run = Sequential
	}
	run.ParallelFor(dst.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			b, d, out := base.Row(y), detail.Row(y), dst.Row(y)
			for x := range out {
				v := float32(b[x]) + float32(d[x]) - pol.Neutral
				out[x] = quantize[T](v, pol)
			}
		}
	})
}

// Subtract writes src - detail + neutral into dst. This is the low band
// left after removing a detail layer, and Replace(Subtract(s, d), d)
// reproduces s.
func Subtract[T image.Sample](src, detail, dst *image.Plane[T], pol Policy, run RowRunner) {
	if run == nil {
		run = Sequential
	}
	run.ParallelFor(dst.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			s, d, out := src.Row(y), detail.Row(y), dst.Row(y)
			for x := range out {
				v := float32(s[x]) - float32(d[x]) + pol.Neutral
				out[x] = quantize[T](v, pol)
			}
		}
	})
}
