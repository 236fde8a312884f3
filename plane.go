package atwt

import (
	"fmt"
	"math"

	"github.com/gogpu/atwt/internal/image"
)

// Plane is a single-channel 2D grid of samples in one Format.
//
// Samples are stored in the smallest unsigned type holding the format's
// bit depth (uint8, uint16 or uint32) or in float32. Rows may be padded:
// row y starts at y*Stride() and padding samples are never read or
// written by the operations.
//
// A Plane is safe for concurrent reads.
type Plane struct {
	format Format

	// samples is one of *image.Plane[uint8], *image.Plane[uint16],
	// *image.Plane[uint32] or *image.Plane[float32], matching format.
	samples any
}

// NewPlane allocates a zeroed plane with Stride() == width.
func NewPlane(format Format, width, height int) (*Plane, error) {
	return NewPlaneWithStride(format, width, height, width)
}

// NewPlaneWithStride allocates a zeroed plane whose rows are stride samples
// apart. Stride must be at least width.
func NewPlaneWithStride(format Format, width, height, stride int) (*Plane, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("atwt: plane format %v: %w", format, ErrUnsupportedFormat)
	}

	var (
		samples any
		err     error
	)
	switch format.BytesPerSample() {
	case 1:
		samples, err = image.NewPlaneWithStride[uint8](width, height, stride)
	case 2:
		samples, err = image.NewPlaneWithStride[uint16](width, height, stride)
	default:
		if format.IsFloat() {
			samples, err = image.NewPlaneWithStride[float32](width, height, stride)
		} else {
			samples, err = image.NewPlaneWithStride[uint32](width, height, stride)
		}
	}
	if err != nil {
		return nil, err
	}
	return &Plane{format: format, samples: samples}, nil
}

// PlaneFromUint8 wraps 8-bit samples without copying.
func PlaneFromUint8(pix []uint8, width, height, stride int) (*Plane, error) {
	return wrapPlane(Gray8, pix, width, height, stride)
}

// PlaneFromUint16 wraps 9 to 16 bit samples without copying.
func PlaneFromUint16(pix []uint16, width, height, stride, bits int) (*Plane, error) {
	if bits < 9 || bits > 16 {
		return nil, fmt.Errorf("atwt: %d bits in 16-bit storage: %w", bits, ErrUnsupportedFormat)
	}
	return wrapPlane(IntegerFormat(bits), pix, width, height, stride)
}

// PlaneFromUint32 wraps 17 to 32 bit samples without copying. The
// frequency operations reject such planes.
func PlaneFromUint32(pix []uint32, width, height, stride, bits int) (*Plane, error) {
	if bits < 17 || bits > 32 {
		return nil, fmt.Errorf("atwt: %d bits in 32-bit storage: %w", bits, ErrUnsupportedFormat)
	}
	return wrapPlane(IntegerFormat(bits), pix, width, height, stride)
}

// PlaneFromFloat32 wraps float samples without copying.
func PlaneFromFloat32(pix []float32, width, height, stride int) (*Plane, error) {
	return wrapPlane(GrayF32, pix, width, height, stride)
}

func wrapPlane[T image.Sample](format Format, pix []T, width, height, stride int) (*Plane, error) {
	p, err := image.FromRaw(pix, width, height, stride)
	if err != nil {
		return nil, err
	}
	return &Plane{format: format, samples: p}, nil
}

// Format returns the sample format.
func (p *Plane) Format() Format {
	return p.format
}

// Width returns the plane width in samples.
func (p *Plane) Width() int {
	w, _ := p.Bounds()
	return w
}

// Height returns the plane height in samples.
func (p *Plane) Height() int {
	_, h := p.Bounds()
	return h
}

// Bounds returns the plane dimensions as (width, height).
func (p *Plane) Bounds() (int, int) {
	switch s := p.samples.(type) {
	case *image.Plane[uint8]:
		return s.Width, s.Height
	case *image.Plane[uint16]:
		return s.Width, s.Height
	case *image.Plane[uint32]:
		return s.Width, s.Height
	case *image.Plane[float32]:
		return s.Width, s.Height
	}
	return 0, 0
}

// Stride returns the distance between rows in samples.
func (p *Plane) Stride() int {
	switch s := p.samples.(type) {
	case *image.Plane[uint8]:
		return s.Stride
	case *image.Plane[uint16]:
		return s.Stride
	case *image.Plane[uint32]:
		return s.Stride
	case *image.Plane[float32]:
		return s.Stride
	}
	return 0
}

// SameSize returns true if both planes have the same dimensions.
func (p *Plane) SameSize(other *Plane) bool {
	w0, h0 := p.Bounds()
	w1, h1 := other.Bounds()
	return w0 == w1 && h0 == h1
}

// Uint8 returns the backing samples of an 8-bit plane, or nil.
func (p *Plane) Uint8() []uint8 {
	if s, ok := p.samples.(*image.Plane[uint8]); ok {
		return s.Pix
	}
	return nil
}

// Uint16 returns the backing samples of a 9 to 16 bit plane, or nil.
func (p *Plane) Uint16() []uint16 {
	if s, ok := p.samples.(*image.Plane[uint16]); ok {
		return s.Pix
	}
	return nil
}

// Uint32 returns the backing samples of a 17 to 32 bit plane, or nil.
func (p *Plane) Uint32() []uint32 {
	if s, ok := p.samples.(*image.Plane[uint32]); ok {
		return s.Pix
	}
	return nil
}

// Float32 returns the backing samples of a float plane, or nil.
func (p *Plane) Float32() []float32 {
	if s, ok := p.samples.(*image.Plane[float32]); ok {
		return s.Pix
	}
	return nil
}

// At returns the sample at (x, y) as float64, or 0 if out of bounds.
func (p *Plane) At(x, y int) float64 {
	switch s := p.samples.(type) {
	case *image.Plane[uint8]:
		return float64(s.At(x, y))
	case *image.Plane[uint16]:
		return float64(s.At(x, y))
	case *image.Plane[uint32]:
		return float64(s.At(x, y))
	case *image.Plane[float32]:
		return float64(s.At(x, y))
	}
	return 0
}

// Set stores v at (x, y). Integer formats round half away from zero and
// clamp to [0, Max]. Out of bounds writes are ignored.
func (p *Plane) Set(x, y int, v float64) {
	switch s := p.samples.(type) {
	case *image.Plane[uint8]:
		s.Set(x, y, uint8(p.clampSample(v)))
	case *image.Plane[uint16]:
		s.Set(x, y, uint16(p.clampSample(v)))
	case *image.Plane[uint32]:
		s.Set(x, y, uint32(p.clampSample(v)))
	case *image.Plane[float32]:
		s.Set(x, y, float32(v))
	}
}

// Fill sets every sample to v, with the rounding rules of Set.
func (p *Plane) Fill(v float64) {
	switch s := p.samples.(type) {
	case *image.Plane[uint8]:
		s.Fill(uint8(p.clampSample(v)))
	case *image.Plane[uint16]:
		s.Fill(uint16(p.clampSample(v)))
	case *image.Plane[uint32]:
		s.Fill(uint32(p.clampSample(v)))
	case *image.Plane[float32]:
		s.Fill(float32(v))
	}
}

func (p *Plane) clampSample(v float64) float64 {
	return math.Min(math.Max(math.Round(v), 0), p.format.Max())
}

// Clone returns a deep copy of the plane with the same stride.
func (p *Plane) Clone() *Plane {
	var samples any
	switch s := p.samples.(type) {
	case *image.Plane[uint8]:
		samples = s.Clone()
	case *image.Plane[uint16]:
		samples = s.Clone()
	case *image.Plane[uint32]:
		samples = s.Clone()
	case *image.Plane[float32]:
		samples = s.Clone()
	}
	return &Plane{format: p.format, samples: samples}
}

// ConvertTo returns a copy of the plane in another format.
//
// Integer to float maps [0, Max] to [0, 1]. Float to integer clamps to
// [0, 1] and scales to [0, Max] with rounding. Integer to integer rescales
// between the two ceilings.
func (p *Plane) ConvertTo(format Format) (*Plane, error) {
	w, h := p.Bounds()
	dst, err := NewPlane(format, w, h)
	if err != nil {
		return nil, err
	}

	srcMax, dstMax := p.format.Max(), format.Max()
	for y := range h {
		for x := range w {
			v := p.At(x, y)
			switch {
			case p.format.IsFloat() && format.IsFloat():
			case p.format.IsFloat():
				v = math.Min(math.Max(v, 0), 1) * dstMax
			case format.IsFloat():
				v /= srcMax
			default:
				v = v * dstMax / srcMax
			}
			dst.Set(x, y, v)
		}
	}
	return dst, nil
}

// newPlaneLike allocates a dense plane with the format and size of p.
func newPlaneLike(p *Plane) *Plane {
	w, h := p.Bounds()
	dst, err := NewPlane(p.format, w, h)
	if err != nil {
		// p was validated when it was built.
		panic(err)
	}
	return dst
}

// String returns a short description such as "Gray8 640x480".
func (p *Plane) String() string {
	w, h := p.Bounds()
	return fmt.Sprintf("%v %dx%d", p.format, w, h)
}
