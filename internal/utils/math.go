package utils

import (
	"math/rand"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// PickRandom returns a uniformly chosen element of the slice using rnd,
// which must yield values in [0, 1). Returns the zero value for empty input.
func PickRandom[T any](items []T, rnd func() float64) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	idx := int(rnd() * float64(len(items)))
	if idx >= len(items) {
		idx = len(items) - 1
	}
	return items[idx]
}
