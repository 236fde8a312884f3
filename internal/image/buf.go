package image

import "errors"

// Common errors for plane operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than the width.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// Sample is the set of storage types a plane can hold.
type Sample interface {
	~uint8 | ~uint16 | ~uint32 | ~float32
}

// Plane is a single-channel 2D array of samples.
//
// Pix holds the samples in row-major order. Row y starts at y*Stride and
// the elements between Width and Stride are padding that operations never
// read or write.
//
// Thread safety: a Plane is safe for concurrent reads. Writes to disjoint
// rows are safe without synchronization.
type Plane[T Sample] struct {
	Pix    []T
	Width  int
	Height int
	Stride int
}

// NewPlane allocates a zeroed plane with Stride == width.
func NewPlane[T Sample](width, height int) (*Plane[T], error) {
	return NewPlaneWithStride[T](width, height, width)
}

// NewPlaneWithStride allocates a zeroed plane with a custom stride in
// samples. Stride must be at least width.
func NewPlaneWithStride[T Sample](width, height, stride int) (*Plane[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width {
		return nil, ErrInvalidStride
	}
	return &Plane[T]{
		Pix:    make([]T, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
	}, nil
}

// FromRaw wraps existing samples without copying.
// The caller must keep pix valid for the lifetime of the plane. The last
// row only needs width samples, so pix may be shorter than stride*height.
func FromRaw[T Sample](pix []T, width, height, stride int) (*Plane[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width {
		return nil, ErrInvalidStride
	}
	required := (height-1)*stride + width
	if len(pix) < required {
		return nil, ErrDataTooSmall
	}
	return &Plane[T]{
		Pix:    pix[:required],
		Width:  width,
		Height: height,
		Stride: stride,
	}, nil
}

// Row returns the width samples of row y, or nil if y is out of bounds.
func (p *Plane[T]) Row(y int) []T {
	if y < 0 || y >= p.Height {
		return nil
	}
	start := y * p.Stride
	return p.Pix[start : start+p.Width]
}

// At returns the sample at (x, y), or zero if out of bounds.
func (p *Plane[T]) At(x, y int) T {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		var zero T
		return zero
	}
	return p.Pix[y*p.Stride+x]
}

// Set stores v at (x, y). Out of bounds writes are ignored.
func (p *Plane[T]) Set(x, y int, v T) {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return
	}
	p.Pix[y*p.Stride+x] = v
}

// Fill sets every sample to v. Padding is left untouched.
func (p *Plane[T]) Fill(v T) {
	for y := range p.Height {
		row := p.Row(y)
		for x := range row {
			row[x] = v
		}
	}
}

// Clone returns a deep copy with the same stride.
func (p *Plane[T]) Clone() *Plane[T] {
	pix := make([]T, len(p.Pix))
	copy(pix, p.Pix)
	return &Plane[T]{
		Pix:    pix,
		Width:  p.Width,
		Height: p.Height,
		Stride: p.Stride,
	}
}

// SameSize returns true if both planes have the same dimensions.
func SameSize[T, U Sample](a *Plane[T], b *Plane[U]) bool {
	return a.Width == b.Width && a.Height == b.Height
}
