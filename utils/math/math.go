package math

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

func DivCeil[T constraints.Integer](dividend, divisor T) T {
	base := dividend / divisor
	if dividend%divisor == 0 {
		return base
	}
	return base + 1
}

func DivFloor[T constraints.Integer](dividend, divisor T) T {
	return dividend / divisor
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Log2Floor returns floor(log2(n)) for n >= 1, and 0 otherwise.
func Log2Floor[T constraints.Integer](n T) int {
	if n <= 0 {
		return 0
	}
	return bits.Len64(uint64(n)) - 1
}

// Log2Ceil returns ceil(log2(n)) for n >= 1, and 0 otherwise.
func Log2Ceil[T constraints.Integer](n T) int {
	if n <= 1 {
		return 0
	}
	return bits.Len64(uint64(n - 1))
}
