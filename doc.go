// Package atwt separates planar images into frequency bands with the
// À Trous ("with holes") wavelet transform.
//
// # Overview
//
// A band at scale r is the difference between a plane and the plane
// blurred with the 5-tap binomial kernel [1 4 6 4 1]/16, applied
// horizontally then vertically with 2^(r-1)-1 holes between taps. The
// difference is offset by a neutral value (half the integer range, or 0
// for float) so it fits the same sample format as the source.
//
// # Quick Start
//
//	import "github.com/gogpu/atwt"
//
//	src, _ := atwt.PlaneFromUint8(pix, 640, 480, 640)
//
//	// Fine detail (radius 1, adjacent taps).
//	detail, _ := atwt.ExtractFrequency(src, 1)
//
//	// Everything but that detail.
//	base, _ := atwt.SubtractFrequency(src, detail)
//
//	// base + detail - neutral restores src exactly.
//	restored, _ := atwt.ReplaceFrequency(base, detail)
//
// # Formats
//
// Integer samples of 8 to 16 bits and 32-bit float samples are accepted.
// Integer results are rounded half away from zero and clamped to the
// format range. Float results are not clamped.
//
// # Boundaries
//
// Taps that fall outside the plane are reflected about the edge sample
// without repeating it: index -1 reads 1, index -2 reads 2. When the tap
// distance exceeds the plane size the reflection is applied repeatedly.
//
// # Parallelism
//
// Operations are single-threaded by default. WithPool splits each pass by
// rows across a worker pool; output is identical.
//
// # Multi-scale
//
// Package pyramid stacks ExtractFrequency over radii 1..n to produce a
// full decomposition whose bands sum back to the source.
package atwt

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = ""
)
