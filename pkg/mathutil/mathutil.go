// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoSignChange indicates a bisection bracket whose endpoints do not
// straddle a root.
var ErrNoSignChange = errors.New("bracket endpoints have the same sign")

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Clamp limits val to the interval [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampInt limits val to the interval [lo, hi].
func ClampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Bisect finds a root of f on the bracket [lo, hi] by bisection. The function
// values at the endpoints must have opposite signs (an endpoint that is
// already a root is returned directly). The search stops when the bracket
// width falls below tolerance or after maxIterations halvings, so it always
// terminates on a finite bracket.
func Bisect(f func(float64) float64, lo, hi, tolerance float64, maxIterations int) (float64, error) {
	if lo > hi {
		lo, hi = hi, lo
	}

	fLo := f(lo)
	fHi := f(hi)
	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	if math.IsNaN(fLo) || math.IsNaN(fHi) {
		return math.NaN(), fmt.Errorf("bracket [%v, %v] evaluates to NaN", lo, hi)
	}
	if (fLo > 0) == (fHi > 0) {
		return math.NaN(), fmt.Errorf("%w on [%v, %v]", ErrNoSignChange, lo, hi)
	}

	for i := 0; i < maxIterations && hi-lo > tolerance; i++ {
		mid := lo + (hi-lo)/2
		fMid := f(mid)
		if fMid == 0 {
			return mid, nil
		}
		if (fMid > 0) == (fLo > 0) {
			lo = mid
			fLo = fMid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2, nil
}
