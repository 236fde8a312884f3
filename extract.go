package atwt

import (
	"fmt"

	"github.com/gogpu/atwt/internal/filter"
	"github.com/gogpu/atwt/internal/image"
)

// Extractor isolates the detail band of planes at one wavelet scale.
//
// The detail is src - blur(src) + neutral, where blur is the separable
// [1 4 6 4 1]/16 kernel with taps 2^(radius-1) samples apart and mirror
// boundaries that do not repeat the edge sample. Integer results are
// rounded half away from zero and clamped to [0, Max]; float results are
// stored unclamped.
//
// An Extractor is immutable and safe for concurrent use.
type Extractor struct {
	format Format
	radius int
	step   int
	pol    filter.Policy
	run    filter.RowRunner
	opts   options
}

// NewExtractor validates format and radius once so that Process can be
// applied to many planes.
func NewExtractor(format Format, radius int, opts ...Option) (*Extractor, error) {
	if radius < 1 || radius > MaxRadius {
		return nil, fmt.Errorf("atwt: radius %d: %w", radius, ErrInvalidRadius)
	}
	if !format.IsAccepted() {
		return nil, fmt.Errorf("atwt: extract %v: %w", format, ErrUnsupportedFormat)
	}
	o := applyOptions(opts)
	Logger().Debug("extractor created", "format", format, "radius", radius,
		"parallel", o.pool != nil)
	return &Extractor{
		format: format,
		radius: radius,
		step:   filter.Step(radius),
		pol:    filter.PolicyFor(format),
		run:    o.runner(),
		opts:   o,
	}, nil
}

// Format returns the format the extractor accepts.
func (e *Extractor) Format() Format { return e.format }

// Radius returns the wavelet scale.
func (e *Extractor) Radius() int { return e.radius }

// Step returns the distance between kernel taps, 2^(radius-1).
func (e *Extractor) Step() int { return e.step }

// Process returns the detail band of src as a new dense plane of the same
// format and size. src is not modified.
func (e *Extractor) Process(src *Plane) (*Plane, error) {
	if src == nil {
		return nil, fmt.Errorf("atwt: extract: %w", ErrNilPlane)
	}
	if src.format != e.format {
		return nil, fmt.Errorf("atwt: extract %v plane with %v extractor: %w",
			src.format, e.format, ErrNonConstantFormat)
	}

	w, h := src.Bounds()
	log := Logger()
	log.Debug("extract plane", "format", src.format, "width", w, "height", h,
		"radius", e.radius, "step", e.step)
	if !filter.SingleReflection(e.step, w) || !filter.SingleReflection(e.step, h) {
		log.Warn("kernel support exceeds plane, boundary taps fold more than once",
			"width", w, "height", h, "step", e.step)
	}

	dst := newPlaneLike(src)
	switch src.samples.(type) {
	case *image.Plane[uint8]:
		extractSamples[uint8](src, dst, e.step, e.pol, e.run)
	case *image.Plane[uint16]:
		extractSamples[uint16](src, dst, e.step, e.pol, e.run)
	case *image.Plane[float32]:
		extractSamples[float32](src, dst, e.step, e.pol, e.run)
	default:
		return nil, fmt.Errorf("atwt: extract %v: %w", src.format, ErrUnsupportedFormat)
	}
	return dst, nil
}

// ProcessFrame extracts every plane of f independently.
func (e *Extractor) ProcessFrame(f *Frame) (*Frame, error) {
	if f == nil {
		return nil, fmt.Errorf("atwt: extract frame: %w", ErrNilPlane)
	}
	out := make([]*Plane, len(f.planes))
	err := e.opts.forEachPlane(len(f.planes), func(i int) error {
		d, err := e.Process(f.planes[i])
		if err != nil {
			return fmt.Errorf("atwt: extract frame plane %d: %w", i, err)
		}
		out[i] = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Frame{format: f.format, planes: out}, nil
}

func extractSamples[T image.Sample](src, dst *Plane, step int, pol filter.Policy, run filter.RowRunner) {
	filter.Extract(src.samples.(*image.Plane[T]), dst.samples.(*image.Plane[T]), step, pol, run)
}

// ExtractFrequency returns the detail band of src at the given radius.
//
// Radius must be in [1, MaxRadius]. Larger radii isolate coarser detail:
// the kernel taps are 2^(radius-1) samples apart.
//
// Example:
//
//	detail, err := atwt.ExtractFrequency(luma, 1)
//	if err != nil {
//		return err
//	}
//	base, _ := atwt.SubtractFrequency(luma, detail)
func ExtractFrequency(src *Plane, radius int, opts ...Option) (*Plane, error) {
	if src == nil {
		return nil, fmt.Errorf("atwt: extract: %w", ErrNilPlane)
	}
	e, err := NewExtractor(src.format, radius, opts...)
	if err != nil {
		return nil, err
	}
	return e.Process(src)
}
