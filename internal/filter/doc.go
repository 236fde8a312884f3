// Package filter implements the À Trous wavelet kernels.
//
// This package contains the per-plane numeric core:
//   - Dilated separable blur with the fixed [1 4 6 4 1] kernel
//   - Detail extraction (source - blur + neutral)
//   - Detail replacement (base + detail - neutral) and its counterpart,
//     low band subtraction (source - detail + neutral)
//
// All kernels are generic over the sample type and parameterised by a
// Policy carrying the neutral value, the integer ceiling and whether
// results are rounded and clamped. Out of range taps are resolved by
// 101 mirroring (reflect without repeating the edge sample).
//
// The horizontal pass accumulates into an unnormalised float32 scratch
// plane; the vertical pass divides by the 2D kernel mass (256). For
// sample types of 16 bits or less every intermediate value is exact in
// float32, so integer round trips are bit exact.
package filter
