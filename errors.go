package atwt

import (
	"errors"

	"github.com/gogpu/atwt/internal/filter"
	"github.com/gogpu/atwt/internal/image"
)

// MaxRadius is the largest radius accepted by ExtractFrequency.
const MaxRadius = filter.MaxRadius

// Configuration errors. They are returned before any sample is processed
// and no output plane is produced.
var (
	// ErrInvalidRadius is returned when radius is outside [1, MaxRadius].
	ErrInvalidRadius = errors.New("atwt: radius must be >= 1 and <= MaxRadius")

	// ErrUnsupportedFormat is returned for formats other than 8-16 bit
	// integer or 32 bit float.
	ErrUnsupportedFormat = errors.New("atwt: only 8-16 bit integer or 32 bit float input is accepted")

	// ErrNonConstantFormat is returned when a plane does not have the format
	// an Extractor or Replacer was built for, or when the planes of a frame
	// differ in format.
	ErrNonConstantFormat = errors.New("atwt: only input with constant format is accepted")

	// ErrFormatMismatch is returned when base and detail formats differ.
	ErrFormatMismatch = errors.New("atwt: base and detail must have the same format")

	// ErrDimensionMismatch is returned when base and detail dimensions differ.
	ErrDimensionMismatch = errors.New("atwt: base and detail must have the same dimensions")

	// ErrNilPlane is returned when a required plane or frame is nil.
	ErrNilPlane = errors.New("atwt: nil plane")

	// ErrEmptyFrame is returned for frames without planes.
	ErrEmptyFrame = errors.New("atwt: frame has no planes")
)

// Plane construction errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = image.ErrInvalidDimensions

	// ErrInvalidStride is returned when stride is less than width.
	ErrInvalidStride = image.ErrInvalidStride

	// ErrDataTooSmall is returned when a sample slice is too short.
	ErrDataTooSmall = image.ErrDataTooSmall
)
