package difficulty

import "math/bits"

// Difficulty bounds accepted by the simulator
const (
	DifficultyMin = 1
	DifficultyMax = 16
)

// LeadingZeroBits counts the zero bits at the most significant end of digest,
// reading it as a big-endian bit string of bitWidth bits. A digest that is zero
// across the whole width counts as bitWidth. Bytes past bitWidth are ignored and
// a digest shorter than bitWidth is treated as zero-padded on the right.
func LeadingZeroBits(digest []byte, bitWidth int) int {
	if bitWidth <= 0 {
		return 0
	}

	count := 0
	for _, b := range digest {
		if count >= bitWidth {
			break
		}
		if b == 0 {
			count += 8
			continue
		}
		count += bits.LeadingZeros8(b)
		if count > bitWidth {
			return bitWidth
		}
		return count
	}

	// every inspected bit was zero
	return bitWidth
}

// MeetsTarget reports whether count satisfies target
func MeetsTarget(count, target int) bool {
	return count >= target
}

// InRange reports whether target is an accepted difficulty
func InRange(target int) bool {
	return target >= DifficultyMin && target <= DifficultyMax
}
