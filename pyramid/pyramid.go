// Package pyramid splits a plane into a stack of À Trous detail bands plus
// a residual base, and sums them back.
//
// Band r holds the detail removed at radius r from what was left after
// bands 1..r-1. Recomposing adds the bands back onto the base in reverse
// order; for integer formats the result is bit-identical to the source.
package pyramid

import (
	"errors"
	"fmt"

	"github.com/gogpu/atwt"
)

// ErrInvalidLevels is returned when levels is outside [1, atwt.MaxRadius].
var ErrInvalidLevels = errors.New("pyramid: levels must be >= 1 and <= atwt.MaxRadius")

// Decomposition is the result of Decompose.
type Decomposition struct {
	// Details holds one band per level; Details[0] is radius 1.
	Details []*atwt.Plane

	// Base is the source with every detail band removed.
	Base *atwt.Plane

	opts []atwt.Option
}

// Levels returns the number of detail bands.
func (d *Decomposition) Levels() int {
	return len(d.Details)
}

// Decompose extracts levels detail bands from src at radii 1..levels.
// Options apply to every extraction and to Recompose.
func Decompose(src *atwt.Plane, levels int, opts ...atwt.Option) (*Decomposition, error) {
	if src == nil {
		return nil, fmt.Errorf("pyramid: decompose: %w", atwt.ErrNilPlane)
	}
	st, err := newStages(src.Format(), levels, opts)
	if err != nil {
		return nil, err
	}

	log := atwt.Logger()
	d := &Decomposition{Details: make([]*atwt.Plane, levels), opts: opts}
	cur := src
	for i, e := range st.extractors {
		detail, err := e.Process(cur)
		if err != nil {
			return nil, fmt.Errorf("pyramid: level %d: %w", i+1, err)
		}
		if cur, err = st.replacer.Subtract(cur, detail); err != nil {
			return nil, fmt.Errorf("pyramid: level %d: %w", i+1, err)
		}
		d.Details[i] = detail
		log.Debug("pyramid level", "level", i+1, "step", e.Step())
	}
	d.Base = cur
	return d, nil
}

// Recompose adds every detail band back onto Base.
func (d *Decomposition) Recompose() (*atwt.Plane, error) {
	if d.Base == nil {
		return nil, fmt.Errorf("pyramid: recompose: %w", atwt.ErrNilPlane)
	}
	r, err := atwt.NewReplacer(d.Base.Format(), d.opts...)
	if err != nil {
		return nil, err
	}

	out := d.Base
	for i := len(d.Details) - 1; i >= 0; i-- {
		if out, err = r.Process(out, d.Details[i]); err != nil {
			return nil, fmt.Errorf("pyramid: level %d: %w", i+1, err)
		}
	}
	return out, nil
}

// FrameDecomposition is the result of DecomposeFrame.
type FrameDecomposition struct {
	// Details holds one frame of bands per level; Details[0] is radius 1.
	Details []*atwt.Frame

	// Base is the source frame with every detail band removed.
	Base *atwt.Frame

	opts []atwt.Option
}

// Levels returns the number of detail bands.
func (d *FrameDecomposition) Levels() int {
	return len(d.Details)
}

// DecomposeFrame decomposes every plane of f.
func DecomposeFrame(f *atwt.Frame, levels int, opts ...atwt.Option) (*FrameDecomposition, error) {
	if f == nil {
		return nil, fmt.Errorf("pyramid: decompose frame: %w", atwt.ErrNilPlane)
	}
	st, err := newStages(f.Format(), levels, opts)
	if err != nil {
		return nil, err
	}

	d := &FrameDecomposition{Details: make([]*atwt.Frame, levels), opts: opts}
	cur := f
	for i, e := range st.extractors {
		detail, err := e.ProcessFrame(cur)
		if err != nil {
			return nil, fmt.Errorf("pyramid: level %d: %w", i+1, err)
		}
		if cur, err = st.replacer.SubtractFrame(cur, detail); err != nil {
			return nil, fmt.Errorf("pyramid: level %d: %w", i+1, err)
		}
		d.Details[i] = detail
	}
	d.Base = cur
	return d, nil
}

// Recompose adds every detail frame back onto Base.
func (d *FrameDecomposition) Recompose() (*atwt.Frame, error) {
	return RecomposeFrame(d.Base, d.Details, d.opts...)
}

// RecomposeFrame adds details back onto base in reverse order. It is used
// for bands read back from disk; details[0] must be the radius 1 band.
func RecomposeFrame(base *atwt.Frame, details []*atwt.Frame, opts ...atwt.Option) (*atwt.Frame, error) {
	if base == nil {
		return nil, fmt.Errorf("pyramid: recompose frame: %w", atwt.ErrNilPlane)
	}
	r, err := atwt.NewReplacer(base.Format(), opts...)
	if err != nil {
		return nil, err
	}

	out := base
	for i := len(details) - 1; i >= 0; i-- {
		if out, err = r.ProcessFrame(out, details[i]); err != nil {
			return nil, fmt.Errorf("pyramid: level %d: %w", i+1, err)
		}
	}
	return out, nil
}

// stages holds the per-level extractors and the shared replacer, built
// once so format and radius errors surface before any band is computed.
type stages struct {
	extractors []*atwt.Extractor
	replacer   *atwt.Replacer
}

func newStages(format atwt.Format, levels int, opts []atwt.Option) (*stages, error) {
	if levels < 1 || levels > atwt.MaxRadius {
		return nil, fmt.Errorf("pyramid: %d levels: %w", levels, ErrInvalidLevels)
	}
	r, err := atwt.NewReplacer(format, opts...)
	if err != nil {
		return nil, err
	}
	st := &stages{extractors: make([]*atwt.Extractor, levels), replacer: r}
	for i := range st.extractors {
		if st.extractors[i], err = atwt.NewExtractor(format, i+1, opts...); err != nil {
			return nil, err
		}
	}
	return st, nil
}
