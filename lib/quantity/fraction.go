package quantity

import (
	"fmt"
	"math"
)

// relative tolerance of the continued fraction approximation
const fractionTolerance = 1e-6

// largest denominator that still reads as a kitchen fraction
const maxDenominator = 8

// FormatFraction renders a decimal as a mixed fraction ("1 1/2",
// "3/4") using continued fraction approximation, restricted to
// denominators of 8 or less. ok is false for whole numbers,
// non-positive values and values no such fraction approximates within
// tolerance; callers are expected to fall back to a decimal rendering.
func FormatFraction(x float64) (string, bool) {
	if x <= 0 {
		return "", false
	}

	whole := math.Floor(x)
	num, den, ok := approximate(x-whole, x*fractionTolerance)
	if !ok || num == 0 || num == den {
		return "", false
	}

	if whole > 0 {
		return fmt.Sprintf("%d %d/%d", int64(whole), num, den), true
	}
	return fmt.Sprintf("%d/%d", num, den), true
}

// approximate finds the best rational approximation num/den of frac
// (0 <= frac < 1) via the continued fraction expansion, giving up once
// the denominator exceeds maxDenominator. The remainder is treated as
// converged when it gets too close to zero to safely invert.
func approximate(frac, tolerance float64) (num, den int64, ok bool) {
	h1, h2 := 1.0, 0.0
	k1, k2 := 0.0, 1.0
	b := frac

	for {
		a := math.Floor(b)
		h1, h2 = a*h1+h2, h1
		k1, k2 = a*k1+k2, k1
		if k1 > maxDenominator {
			return 0, 0, false
		}
		if math.Abs(frac-h1/k1) <= tolerance {
			break
		}
		remainder := b - a
		if remainder < 1e-12 {
			break
		}
		b = 1 / remainder
	}

	if math.Abs(frac-h1/k1) > tolerance {
		return 0, 0, false
	}
	return int64(h1), int64(k1), true
}
