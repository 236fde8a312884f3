package atwt

import (
	"math/rand/v2"
	"testing"
)

// constantPlane returns a dense plane with every sample set to value.
func constantPlane(t testing.TB, format Format, w, h int, value float64) *Plane {
	t.Helper()
	p, err := NewPlane(format, w, h)
	if err != nil {
		t.Fatalf("NewPlane(%v, %d, %d): %v", format, w, h, err)
	}
	p.Fill(value)
	return p
}

// randomPlane fills a plane with reproducible samples over the full range
// of format. Float samples are multiples of 1/256 in [0, 1] so that every
// intermediate sum is exact in float32.
func randomPlane(t testing.TB, format Format, w, h int, seed uint64) *Plane {
	t.Helper()
	p, err := NewPlane(format, w, h)
	if err != nil {
		t.Fatalf("NewPlane(%v, %d, %d): %v", format, w, h, err)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for y := range h {
		for x := range w {
			if format.IsFloat() {
				p.Set(x, y, float64(rng.IntN(257))/256)
			} else {
				p.Set(x, y, float64(rng.IntN(int(format.Max())+1)))
			}
		}
	}
	return p
}

// impulsePlane returns a zero plane with value at (cx, cy).
func impulsePlane(t testing.TB, format Format, w, h, cx, cy int, value float64) *Plane {
	t.Helper()
	p := constantPlane(t, format, w, h, 0)
	p.Set(cx, cy, value)
	return p
}

// assertPlanesEqual fails if a and b differ in format, size or any sample.
func assertPlanesEqual(t testing.TB, got, want *Plane) {
	t.Helper()
	if got.Format() != want.Format() {
		t.Fatalf("format = %v, want %v", got.Format(), want.Format())
	}
	if !got.SameSize(want) {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	mismatches := 0
	for y := range want.Height() {
		for x := range want.Width() {
			if g, w := got.At(x, y), want.At(x, y); g != w {
				if mismatches < 5 {
					t.Errorf("(%d,%d) = %v, want %v", x, y, g, w)
				}
				mismatches++
			}
		}
	}
	if mismatches > 0 {
		t.Errorf("%d samples differ", mismatches)
	}
}

// assertAll fails unless every sample of p equals want.
func assertAll(t testing.TB, p *Plane, want float64) {
	t.Helper()
	for y := range p.Height() {
		for x := range p.Width() {
			if got := p.At(x, y); got != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

var acceptedFormats = []Format{Gray8, Gray10, Gray12, Gray16, GrayF32}
