package atwt

import "github.com/gogpu/atwt/internal/image"

// Format describes the sample representation of a plane: integer or float
// samples and their bit depth.
type Format = image.Format

// SampleType distinguishes integer from floating point samples.
type SampleType = image.SampleType

// Sample types.
const (
	SampleInteger = image.SampleInteger
	SampleFloat   = image.SampleFloat
)

// Formats accepted by the frequency operations.
var (
	// Gray8 is 8-bit unsigned integer samples, neutral 128.
	Gray8 = image.FormatGray8

	// Gray10 is 10-bit samples in 16-bit storage, neutral 512.
	Gray10 = image.FormatGray10

	// Gray12 is 12-bit samples in 16-bit storage, neutral 2048.
	Gray12 = image.FormatGray12

	// Gray16 is 16-bit unsigned integer samples, neutral 32768.
	Gray16 = image.FormatGray16

	// GrayF32 is 32-bit float samples, neutral 0, nominal range [0, 1].
	GrayF32 = image.FormatGrayF32
)

// IntegerFormat returns an integer format with the given bit depth.
// Depths outside 8..16 produce planes the operations reject.
func IntegerFormat(bits int) Format {
	return image.IntegerFormat(bits)
}
