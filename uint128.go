package decimal4j

import (
	"fmt"
	"math"
	"math/bits"
)

// signBoundary is 2^63, the magnitude of math.MinInt64.
const signBoundary = uint64(1) << 63

// absU64 returns |x| as a uint64, correctly handling math.MinInt64 (whose
// magnitude does not fit in an int64).
func absU64(x int64) uint64 {
	if x >= 0 {
		return uint64(x)
	}
	return -uint64(x)
}

// mul128 returns the exact 128-bit magnitude product of a and b (treated as
// signed values) as (hi, lo), via math/bits (the idiomatic Go replacement
// for the hand-rolled 32-bit-limb widening multiply decimal4j's Java
// original needs; spec.md §4.6, SPEC_FULL.md §3).
func mul128(a, b int64) (neg bool, hi, lo uint64) {
	neg = (a < 0) != (b < 0)
	hi, lo = bits.Mul64(absU64(a), absU64(b))
	return neg, hi, lo
}

// mulHiLo returns the exact 128-bit product of two uint64 magnitudes.
func mulHiLo(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// div128 divides the unsigned 128-bit value (hi, lo) by d and returns the
// quotient and remainder. ok is false when the quotient does not fit in 64
// bits (bits.Div64 would panic), signaling the caller to fall back to
// math/big.
func div128(hi, lo, d uint64) (q, r uint64, ok bool) {
	if d == 0 || hi >= d {
		return 0, 0, false
	}
	q, r = bits.Div64(hi, lo, d)
	return q, r, true
}

// signedFromMag reconstructs an int64 from a sign and magnitude, reporting
// ok=false if the magnitude does not fit.
func signedFromMag(neg bool, mag uint64) (int64, bool) {
	if neg {
		if mag > signBoundary {
			return 0, false
		}
		if mag == signBoundary {
			return math.MinInt64, true
		}
		return -int64(mag), true
	}
	if mag >= signBoundary {
		return 0, false
	}
	return int64(mag), true
}

// combineSigned finalizes a sign/magnitude pair into an int64, raising
// ErrOverflow in Checked mode or wrapping (two's-complement reinterpret) in
// Unchecked mode when the magnitude does not fit.
func combineSigned(neg bool, mag uint64, ovf OverflowMode) (int64, error) {
	if v, ok := signedFromMag(neg, mag); ok {
		return v, nil
	}
	if ovf == Checked {
		return 0, fmt.Errorf("%w: magnitude %d does not fit in int64", ErrOverflow, mag)
	}
	if neg {
		return -int64(mag), nil
	}
	return int64(mag), nil
}
