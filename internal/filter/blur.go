package filter

import "github.com/gogpu/atwt/internal/image"

// Extract writes src - blur(src) + neutral into dst.
//
// The operation uses a two-pass separable algorithm:
//  1. Horizontal pass: convolve each row into an unnormalised float32
//     scratch plane
//  2. Vertical pass: convolve each column of the scratch plane, divide by
//     KernelMass and subtract from the source
//
// The second pass starts only after the first has finished on every row.
// src and dst must have the same dimensions and must not overlap.
func Extract[T image.Sample](src, dst *image.Plane[T], step int, pol Policy, run RowRunner) {
	if run == nil {
		run = Sequential
	}

	scratch := getScratch(src.Width * src.Height)
	defer putScratch(scratch)
	tmp := scratch.data

	run.ParallelFor(src.Height, func(y0, y1 int) {
		Horizontal(src, tmp, step, y0, y1)
	})
	run.ParallelFor(src.Height, func(y0, y1 int) {
		VerticalExtract(tmp, src, dst, step, pol, y0, y1)
	})
}

// Horizontal convolves rows [y0, y1) of src with the dilated kernel.
// Results are stored unnormalised in tmp with a stride of src.Width.
func Horizontal[T image.Sample](src *image.Plane[T], tmp []float32, step, y0, y1 int) {
	width := src.Width
	reach := Support(step)

	// Columns whose taps are all in range need no mirroring.
	lo, hi := reach, width-reach

	var idx [Taps]int
	for y := y0; y < y1; y++ {
		row := src.Row(y)
		out := tmp[y*width : (y+1)*width]

		for x := range width {
			if x >= lo && x < hi {
				out[x] = dot5(row, x-2*step, x-step, x, x+step, x+2*step)
				continue
			}
			tapIndices(&idx, x, step, width)
			out[x] = dot5(row, idx[0], idx[1], idx[2], idx[3], idx[4])
		}
	}
}

// VerticalExtract convolves columns of tmp for output rows [y0, y1),
// normalises by KernelMass and stores src - blurred + neutral in dst.
func VerticalExtract[T image.Sample](tmp []float32, src, dst *image.Plane[T], step int, pol Policy, y0, y1 int) {
	width, height := src.Width, src.Height

	var idx [Taps]int
	for y := y0; y < y1; y++ {
		tapIndices(&idx, y, step, height)
		r0 := tmp[idx[0]*width : idx[0]*width+width]
		r1 := tmp[idx[1]*width : idx[1]*width+width]
		r2 := tmp[idx[2]*width : idx[2]*width+width]
		r3 := tmp[idx[3]*width : idx[3]*width+width]
		r4 := tmp[idx[4]*width : idx[4]*width+width]

		srcRow := src.Row(y)
		dstRow := dst.Row(y)

		for x := range width {
			sum := r0[x] * Kernel[0]
			sum += r1[x] * Kernel[1]
			sum += r2[x] * Kernel[2]
			sum += r3[x] * Kernel[3]
			sum += r4[x] * Kernel[4]

			blurred := sum / KernelMass
			detail := float32(srcRow[x]) - blurred + pol.Neutral
			dstRow[x] = quantize[T](detail, pol)
		}
	}
}

// dot5 applies the kernel to five samples of row.
func dot5[T image.Sample](row []T, i0, i1, i2, i3, i4 int) float32 {
	sum := float32(row[i0]) * Kernel[0]
	sum += float32(row[i1]) * Kernel[1]
	sum += float32(row[i2]) * Kernel[2]
	sum += float32(row[i3]) * Kernel[3]
	sum += float32(row[i4]) * Kernel[4]
	return sum
}
