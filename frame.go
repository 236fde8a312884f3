package atwt

import "fmt"

// Frame is an ordered set of planes sharing one Format, such as the Y, U
// and V planes of a video frame or the R, G and B planes of an image.
// Planes may differ in size.
type Frame struct {
	format Format
	planes []*Plane
}

// NewFrame groups planes into a frame. All planes must share one format.
func NewFrame(planes ...*Plane) (*Frame, error) {
	if len(planes) == 0 {
		return nil, ErrEmptyFrame
	}
	for i, p := range planes {
		if p == nil {
			return nil, fmt.Errorf("atwt: frame plane %d: %w", i, ErrNilPlane)
		}
		if p.format != planes[0].format {
			return nil, fmt.Errorf("atwt: frame plane %d is %v, plane 0 is %v: %w",
				i, p.format, planes[0].format, ErrNonConstantFormat)
		}
	}
	return &Frame{
		format: planes[0].format,
		planes: append([]*Plane(nil), planes...),
	}, nil
}

// Format returns the format shared by all planes.
func (f *Frame) Format() Format {
	return f.format
}

// NumPlanes returns the number of planes.
func (f *Frame) NumPlanes() int {
	return len(f.planes)
}

// Plane returns plane i.
func (f *Frame) Plane(i int) *Plane {
	return f.planes[i]
}

// Planes returns a copy of the plane list.
func (f *Frame) Planes() []*Plane {
	return append([]*Plane(nil), f.planes...)
}

// Width returns the width of plane 0.
func (f *Frame) Width() int {
	return f.planes[0].Width()
}

// Height returns the height of plane 0.
func (f *Frame) Height() int {
	return f.planes[0].Height()
}

// sameLayout reports whether two frames have the same plane count and
// per-plane dimensions.
func (f *Frame) sameLayout(other *Frame) bool {
	if len(f.planes) != len(other.planes) {
		return false
	}
	for i := range f.planes {
		if !f.planes[i].SameSize(other.planes[i]) {
			return false
		}
	}
	return true
}

// ConvertTo returns a copy of the frame with every plane converted.
func (f *Frame) ConvertTo(format Format) (*Frame, error) {
	out := make([]*Plane, len(f.planes))
	for i, p := range f.planes {
		c, err := p.ConvertTo(format)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return &Frame{format: format, planes: out}, nil
}
