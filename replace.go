package atwt

import (
	"fmt"

	"github.com/gogpu/atwt/internal/filter"
	"github.com/gogpu/atwt/internal/image"
)

// Replacer recombines a base plane with a detail plane: base + detail -
// neutral, rounded and clamped like Extractor output. It also performs the
// inverse, Subtract, which removes a detail band from a source plane.
//
// For integer formats Replace(Subtract(s, d), d) == s for any d produced by
// ExtractFrequency from s.
//
// A Replacer is immutable and safe for concurrent use.
type Replacer struct {
	format Format
	pol    filter.Policy
	run    filter.RowRunner
	opts   options
}

// NewReplacer validates format once so that Process can be applied to many
// plane pairs.
func NewReplacer(format Format, opts ...Option) (*Replacer, error) {
	if !format.IsAccepted() {
		return nil, fmt.Errorf("atwt: replace %v: %w", format, ErrUnsupportedFormat)
	}
	o := applyOptions(opts)
	Logger().Debug("replacer created", "format", format, "parallel", o.pool != nil)
	return &Replacer{
		format: format,
		pol:    filter.PolicyFor(format),
		run:    o.runner(),
		opts:   o,
	}, nil
}

// Format returns the format the replacer accepts.
func (r *Replacer) Format() Format { return r.format }

// Process returns base + detail - neutral as a new dense plane.
func (r *Replacer) Process(base, detail *Plane) (*Plane, error) {
	if err := r.check("replace", base, detail); err != nil {
		return nil, err
	}
	Logger().Debug("replace plane", "format", base.format,
		"width", base.Width(), "height", base.Height())

	dst := newPlaneLike(base)
	switch base.samples.(type) {
	case *image.Plane[uint8]:
		combineSamples(filter.Replace[uint8], base, detail, dst, r.pol, r.run)
	case *image.Plane[uint16]:
		combineSamples(filter.Replace[uint16], base, detail, dst, r.pol, r.run)
	case *image.Plane[float32]:
		combineSamples(filter.Replace[float32], base, detail, dst, r.pol, r.run)
	}
	return dst, nil
}

// Subtract returns src - detail + neutral as a new dense plane. It is the
// base band that Process recombines with detail.
func (r *Replacer) Subtract(src, detail *Plane) (*Plane, error) {
	if err := r.check("subtract", src, detail); err != nil {
		return nil, err
	}
	Logger().Debug("subtract plane", "format", src.format,
		"width", src.Width(), "height", src.Height())

	dst := newPlaneLike(src)
	switch src.samples.(type) {
	case *image.Plane[uint8]:
		combineSamples(filter.Subtract[uint8], src, detail, dst, r.pol, r.run)
	case *image.Plane[uint16]:
		combineSamples(filter.Subtract[uint16], src, detail, dst, r.pol, r.run)
	case *image.Plane[float32]:
		combineSamples(filter.Subtract[float32], src, detail, dst, r.pol, r.run)
	}
	return dst, nil
}

// ProcessFrame recombines base and detail frames plane by plane.
func (r *Replacer) ProcessFrame(base, detail *Frame) (*Frame, error) {
	return r.frames("replace", base, detail, r.Process)
}

// SubtractFrame removes detail from src plane by plane.
func (r *Replacer) SubtractFrame(src, detail *Frame) (*Frame, error) {
	return r.frames("subtract", src, detail, r.Subtract)
}

func (r *Replacer) frames(op string, a, b *Frame, fn func(a, b *Plane) (*Plane, error)) (*Frame, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("atwt: %s frame: %w", op, ErrNilPlane)
	}
	if a.format != b.format {
		return nil, fmt.Errorf("atwt: %s frame %v with %v: %w", op, a.format, b.format, ErrFormatMismatch)
	}
	if !a.sameLayout(b) {
		return nil, fmt.Errorf("atwt: %s frame: %w", op, ErrDimensionMismatch)
	}
	out := make([]*Plane, len(a.planes))
	err := r.opts.forEachPlane(len(a.planes), func(i int) error {
		p, err := fn(a.planes[i], b.planes[i])
		if err != nil {
			return fmt.Errorf("atwt: %s frame plane %d: %w", op, i, err)
		}
		out[i] = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Frame{format: a.format, planes: out}, nil
}

// check validates a plane pair in the order: presence, format agreement,
// format accepted by r, dimensions.
func (r *Replacer) check(op string, a, b *Plane) error {
	if a == nil || b == nil {
		return fmt.Errorf("atwt: %s: %w", op, ErrNilPlane)
	}
	if a.format != b.format {
		return fmt.Errorf("atwt: %s %v with %v: %w", op, a.format, b.format, ErrFormatMismatch)
	}
	if a.format != r.format {
		return fmt.Errorf("atwt: %s %v planes with %v replacer: %w", op, a.format, r.format, ErrNonConstantFormat)
	}
	if !a.SameSize(b) {
		return fmt.Errorf("atwt: %s %dx%d with %dx%d: %w", op,
			a.Width(), a.Height(), b.Width(), b.Height(), ErrDimensionMismatch)
	}
	return nil
}

func combineSamples[T image.Sample](
	fn func(a, b, dst *image.Plane[T], pol filter.Policy, run filter.RowRunner),
	a, b, dst *Plane, pol filter.Policy, run filter.RowRunner,
) {
	fn(a.samples.(*image.Plane[T]), b.samples.(*image.Plane[T]), dst.samples.(*image.Plane[T]), pol, run)
}

// ReplaceFrequency returns base + detail - neutral.
//
// base and detail must have the same format and dimensions. The format
// must be 8-16 bit integer or 32 bit float.
func ReplaceFrequency(base, detail *Plane, opts ...Option) (*Plane, error) {
	r, err := pairReplacer("replace", base, detail, opts)
	if err != nil {
		return nil, err
	}
	return r.Process(base, detail)
}

// SubtractFrequency returns src - detail + neutral, the inverse of
// ReplaceFrequency with respect to detail.
func SubtractFrequency(src, detail *Plane, opts ...Option) (*Plane, error) {
	r, err := pairReplacer("subtract", src, detail, opts)
	if err != nil {
		return nil, err
	}
	return r.Subtract(src, detail)
}

func pairReplacer(op string, a, b *Plane, opts []Option) (*Replacer, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("atwt: %s: %w", op, ErrNilPlane)
	}
	if a.format != b.format {
		return nil, fmt.Errorf("atwt: %s %v with %v: %w", op, a.format, b.format, ErrFormatMismatch)
	}
	return NewReplacer(a.format, opts...)
}
