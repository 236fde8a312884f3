package filter

import (
	"testing"

	"github.com/gogpu/atwt/internal/image"
)

func TestReplaceNeutralDetailIsIdentity(t *testing.T) {
	base := randomPlane[uint8](4, 4, 4, 255, 1)
	detail := newTestPlane[uint8](4, 4, 4)
	detail.Fill(128)
	dst := newTestPlane[uint8](4, 4, 4)

	Replace(base, detail, dst, PolicyFor(image.FormatGray8), nil)

	for i := range base.Pix {
		if dst.Pix[i] != base.Pix[i] {
			t.Errorf("sample %d = %d, want %d", i, dst.Pix[i], base.Pix[i])
		}
	}
}

func TestReplaceClamps(t *testing.T) {
	tests := []struct {
		name         string
		base, detail uint8
		want         uint8
	}{
		{"overflow", 200, 250, 255},
		{"underflow", 10, 20, 0},
		{"in range", 100, 140, 112},
	}

	pol := PolicyFor(image.FormatGray8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := newTestPlane[uint8](1, 1, 1)
			base.Fill(tt.base)
			detail := newTestPlane[uint8](1, 1, 1)
			detail.Fill(tt.detail)
			dst := newTestPlane[uint8](1, 1, 1)

			Replace(base, detail, dst, pol, nil)

			if got := dst.At(0, 0); got != tt.want {
				t.Errorf("Replace(%d, %d) = %d, want %d", tt.base, tt.detail, got, tt.want)
			}
		})
	}
}

func TestReplaceFloatRaw(t *testing.T) {
	base := newTestPlane[float32](2, 1, 2)
	base.Set(0, 0, 0.75)
	base.Set(1, 0, 0.25)
	detail := newTestPlane[float32](2, 1, 2)
	detail.Set(0, 0, 0.5)
	detail.Set(1, 0, -0.5)
	dst := newTestPlane[float32](2, 1, 2)

	Replace(base, detail, dst, PolicyFor(image.FormatGrayF32), nil)

	if got := dst.At(0, 0); got != 1.25 {
		t.Errorf("dst(0,0) = %v, want 1.25 (unclamped)", got)
	}
	if got := dst.At(1, 0); got != -0.25 {
		t.Errorf("dst(1,0) = %v, want -0.25 (unclamped)", got)
	}
}

func TestRoundTripInteger(t *testing.T) {
	tests := []struct {
		name   string
		format image.Format
	}{
		{"Gray10", image.FormatGray10},
		{"Gray12", image.FormatGray12},
		{"Gray16", image.FormatGray16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pol := PolicyFor(tt.format)
			maxVal := uint32(tt.format.Max())

			for radius := 1; radius <= 4; radius++ {
				src := randomPlane[uint16](31, 19, 33, maxVal, uint64(radius))
				detail := newTestPlane[uint16](31, 19, 31)
				low := newTestPlane[uint16](31, 19, 31)
				out := newTestPlane[uint16](31, 19, 31)

				Extract(src, detail, Step(radius), pol, nil)
				Subtract(src, detail, low, pol, nil)
				Replace(low, detail, out, pol, nil)

				for y := range src.Height {
					for x := range src.Width {
						if got, want := out.At(x, y), src.At(x, y); got != want {
							t.Fatalf("radius %d pixel (%d,%d) = %d, want %d", radius, x, y, got, want)
						}
					}
				}
			}
		})
	}
}

func TestRoundTripGray8Extremes(t *testing.T) {
	// Alternating 0/255 maximises detail clamping.
	src := newTestPlane[uint8](16, 16, 16)
	for y := range 16 {
		for x := range 16 {
			if (x+y)%2 == 0 {
				src.Set(x, y, 255)
			}
		}
	}
	pol := PolicyFor(image.FormatGray8)
	detail := newTestPlane[uint8](16, 16, 16)
	low := newTestPlane[uint8](16, 16, 16)
	out := newTestPlane[uint8](16, 16, 16)

	Extract(src, detail, 1, pol, nil)
	Subtract(src, detail, low, pol, nil)
	Replace(low, detail, out, pol, nil)

	for i := range src.Pix {
		if out.Pix[i] != src.Pix[i] {
			t.Fatalf("sample %d = %d, want %d", i, out.Pix[i], src.Pix[i])
		}
	}
}

func TestRoundTripFloat(t *testing.T) {
	pol := PolicyFor(image.FormatGrayF32)
	src := dyadicPlane(21, 14, 4)

	for radius := 1; radius <= 3; radius++ {
		detail := newTestPlane[float32](21, 14, 21)
		low := newTestPlane[float32](21, 14, 21)
		out := newTestPlane[float32](21, 14, 21)

		Extract(src, detail, Step(radius), pol, nil)
		Subtract(src, detail, low, pol, nil)
		Replace(low, detail, out, pol, nil)

		for i := range src.Pix {
			if out.Pix[i] != src.Pix[i] {
				t.Fatalf("radius %d sample %d = %v, want %v", radius, i, out.Pix[i], src.Pix[i])
			}
		}
	}
}

func TestCombineRunnerMatchesSequential(t *testing.T) {
	pol := PolicyFor(image.FormatGray16)
	a := randomPlane[uint16](10, 9, 10, 65535, 21)
	b := randomPlane[uint16](10, 9, 10, 65535, 22)

	want := newTestPlane[uint16](10, 9, 10)
	got := newTestPlane[uint16](10, 9, 10)

	Replace(a, b, want, pol, nil)
	Replace(a, b, got, pol, &chunkRunner{chunk: 2})
	for i := range want.Pix {
		if got.Pix[i] != want.Pix[i] {
			t.Fatalf("Replace sample %d = %d, want %d", i, got.Pix[i], want.Pix[i])
		}
	}

	Subtract(a, b, want, pol, nil)
	Subtract(a, b, got, pol, &chunkRunner{chunk: 4})
	for i := range want.Pix {
		if got.Pix[i] != want.Pix[i] {
			t.Fatalf("Subtract sample %d = %d, want %d", i, got.Pix[i], want.Pix[i])
		}
	}
}
