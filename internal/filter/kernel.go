package filter

// Taps is the number of kernel taps per axis.
const Taps = 5

// KernelSum is the sum of the 1D kernel weights.
const KernelSum = 16

// KernelMass is the sum of the separable 2D kernel weights (16 * 16).
const KernelMass = KernelSum * KernelSum

// MaxRadius is the largest supported decomposition radius. The step for
// this radius (2^29) still fits a 32-bit int with room for 2*step offsets.
const MaxRadius = 30

// Kernel is the B3-spline weight sequence used on both axes.
var Kernel = [Taps]float32{1, 4, 6, 4, 1}

// Step returns the tap spacing for a radius: 2^(radius-1).
// Radius must be in [1, MaxRadius].
func Step(radius int) int {
	return 1 << (radius - 1)
}

// Support returns the distance from the center to the outermost tap.
func Support(step int) int {
	return 2 * step
}

// SingleReflection reports whether every tap of a kernel with the given
// step lands in range after at most one mirror reflection on an axis of
// the given size.
func SingleReflection(step, size int) bool {
	return Support(step) < size
}
