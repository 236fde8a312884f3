package filter

// Mirror resolves a possibly out of range coordinate on an axis of the
// given size using 101 reflection: -1 maps to 1, size maps to size-2.
//
// Offsets further out than one plane length keep reflecting off both
// edges. The extension is periodic with period 2*(size-1), so the fold is
// computed directly. An axis of size 1 always resolves to 0.
func Mirror(pos, size int) int {
	if pos >= 0 && pos < size {
		return pos
	}
	if size <= 1 {
		return 0
	}

	if pos < 0 {
		pos = -pos
	}
	if pos < size {
		return pos
	}

	period := 2 * (size - 1)
	pos %= period
	if pos >= size {
		pos = period - pos
	}
	return pos
}

// tapIndices fills idx with the mirrored coordinates of the five taps
// centred on pos.
func tapIndices(idx *[Taps]int, pos, step, size int) {
	for k := range Taps {
		idx[k] = Mirror(pos+(k-2)*step, size)
	}
}
