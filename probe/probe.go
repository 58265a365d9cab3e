// Package probe builds quantum-circuit descriptions, one builder per test
// type. Data-derived builders (Randomness, Hardening, KEMProperties) map
// input bytes to gate structure through a SHA-256 digest and are fully
// deterministic given their input. Fixed-structure builders (ShorOptimized,
// KrylovOptimized, SuperpositionOptimized, NonCommutativity) always emit the
// same gate list; the seed drawn from the supplied random source is cosmetic
// identification only and never alters gate structure.
package probe

import (
	"errors"
	"math/rand"
)

// ErrEmptyInput is returned by data-derived builders when the byte sequence
// they would index into is empty.
var ErrEmptyInput = errors.New("empty input sample")

func clamp(v, lo, hi int) int {
	return min(hi, max(lo, v))
}

// randomSeed draws the cosmetic seed attached to fixed-structure circuits.
func randomSeed(rng *rand.Rand) int64 {
	return rng.Int63n(1000000)
}

// byteAngle maps a byte linearly onto [0, scale): 0x00 -> 0, 0xff -> scale.
func byteAngle(b byte, scale float64) float64 {
	return float64(b) / 255 * scale
}
