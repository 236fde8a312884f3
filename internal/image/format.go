// Package image provides sample plane storage for atwt.
//
// A plane is a single-channel 2D grid of samples with a row stride that may
// exceed its width. Planes are generic over the sample type so the filter
// kernels can be instantiated once per representation.
package image

import "fmt"

// SampleType distinguishes integer from floating point samples.
type SampleType uint8

const (
	// SampleInteger is an unsigned integer sample.
	SampleInteger SampleType = iota

	// SampleFloat is an IEEE 754 floating point sample.
	SampleFloat
)

// String returns a string representation of the sample type.
func (s SampleType) String() string {
	switch s {
	case SampleInteger:
		return "Integer"
	case SampleFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// Format describes the pixel representation of a plane.
//
// Integer formats with 1..8 bits are stored as uint8, 9..16 bits as uint16
// and 17..32 bits as uint32. Float formats are stored as float32 and must
// have 32 bits.
type Format struct {
	Sample SampleType
	Bits   int
}

// Predefined formats.
var (
	// FormatGray8 is 8-bit unsigned integer samples.
	FormatGray8 = Format{Sample: SampleInteger, Bits: 8}

	// FormatGray10 is 10-bit unsigned integer samples in 16-bit storage.
	FormatGray10 = Format{Sample: SampleInteger, Bits: 10}

	// FormatGray12 is 12-bit unsigned integer samples in 16-bit storage.
	FormatGray12 = Format{Sample: SampleInteger, Bits: 12}

	// FormatGray16 is 16-bit unsigned integer samples.
	FormatGray16 = Format{Sample: SampleInteger, Bits: 16}

	// FormatGray32 is 32-bit unsigned integer samples. The kernels handle it
	// but the public operations do not accept it.
	FormatGray32 = Format{Sample: SampleInteger, Bits: 32}

	// FormatGrayF32 is 32-bit float samples with nominal range [0, 1].
	FormatGrayF32 = Format{Sample: SampleFloat, Bits: 32}
)

// IntegerFormat returns an integer format with the given bit depth.
func IntegerFormat(bits int) Format {
	return Format{Sample: SampleInteger, Bits: bits}
}

// IsValid returns true if the format has a storage type.
func (f Format) IsValid() bool {
	switch f.Sample {
	case SampleInteger:
		return f.Bits >= 1 && f.Bits <= 32
	case SampleFloat:
		return f.Bits == 32
	default:
		return false
	}
}

// IsAccepted returns true if the format is one of the representations the
// frequency operations accept: 8..16 bit integer or 32-bit float.
func (f Format) IsAccepted() bool {
	switch f.Sample {
	case SampleInteger:
		return f.Bits >= 8 && f.Bits <= 16
	case SampleFloat:
		return f.Bits == 32
	default:
		return false
	}
}

// IsFloat returns true for floating point formats.
func (f Format) IsFloat() bool {
	return f.Sample == SampleFloat
}

// BytesPerSample returns the storage size of one sample.
// Returns 0 for invalid formats.
func (f Format) BytesPerSample() int {
	if !f.IsValid() {
		return 0
	}
	switch {
	case f.Sample == SampleFloat:
		return 4
	case f.Bits <= 8:
		return 1
	case f.Bits <= 16:
		return 2
	default:
		return 4
	}
}

// Neutral returns the value representing zero signal: 0 for float formats,
// 2^(bits-1) for integer formats.
func (f Format) Neutral() float64 {
	if f.Sample == SampleFloat {
		return 0
	}
	return float64(uint64(1) << (f.Bits - 1))
}

// Max returns the representable ceiling: 1.0 for float formats,
// 2^bits - 1 for integer formats.
func (f Format) Max() float64 {
	if f.Sample == SampleFloat {
		return 1
	}
	return float64((uint64(1) << f.Bits) - 1)
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatGray16:
		return "Gray16"
	case FormatGrayF32:
		return "GrayF32"
	}
	if f.Sample == SampleInteger {
		return fmt.Sprintf("Gray%d", f.Bits)
	}
	return fmt.Sprintf("%s%d", f.Sample, f.Bits)
}
