package filter

import (
	"math"

	"github.com/gogpu/atwt/internal/image"
)

// Policy carries the per-format arithmetic of the pixel operations.
type Policy struct {
	// Neutral is the value representing zero signal.
	Neutral float32

	// Max is the integer ceiling used for clamping.
	Max float64

	// Integer selects round-half-away-from-zero and clamping to [0, Max].
	// Float results are stored unclamped.
	Integer bool
}

// PolicyFor returns the policy for a format.
func PolicyFor(f image.Format) Policy {
	return Policy{
		Neutral: float32(f.Neutral()),
		Max:     f.Max(),
		Integer: !f.IsFloat(),
	}
}

// quantize converts an intermediate value to the output sample type.
func quantize[T image.Sample](v float32, pol Policy) T {
	if !pol.Integer {
		return T(v)
	}
	// math.Round rounds half away from zero.
	q := math.Round(float64(v))
	if q < 0 {
		q = 0
	} else if q > pol.Max {
		q = pol.Max
	}
	return T(q)
}
