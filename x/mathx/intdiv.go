package mathx

import "golang.org/x/exp/constraints"

// RoundDiv returns floor((a + b/2)/b), classic rounding for positives.
// b == 0 yields 0.
func RoundDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// FitsU16 reports whether v is representable as a uint16.
func FitsU16[T constraints.Unsigned](v T) bool {
	return uint64(v) <= 0xFFFF
}
