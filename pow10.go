package decimal4j

import (
	"fmt"
	"math/big"
)

// mulPow10 computes u * 10^shift for shift >= 0, applying ovf. Shifts
// beyond the tabulated range (shift > MaxScale) overflow for any nonzero u
// in Checked mode; in Unchecked mode the result wraps as if computed
// modulo 2^64.
func mulPow10(u int64, shift int, ovf OverflowMode) (int64, error) {
	switch {
	case shift <= 0:
		return u, nil
	case u == 0:
		return 0, nil
	}
	if shift <= MaxScale {
		if ovf == Checked {
			return mulChecked(u, pow10[shift])
		}
		return u * pow10[shift], nil
	}
	if ovf == Checked {
		return 0, fmt.Errorf("%w: %d * 10^%d", ErrOverflow, u, shift)
	}
	return wrapPow10(u, shift), nil
}

// wrapPow10 computes u * 10^shift modulo 2^64, for shift beyond the
// tabulated range, via binary exponentiation over uint64 (which wraps
// silently in Go, matching two's-complement overflow).
func wrapPow10(u int64, shift int) int64 {
	p, base, n := uint64(1), uint64(10), shift
	for n > 0 {
		if n&1 == 1 {
			p *= base
		}
		base *= base
		n >>= 1
	}
	return u * int64(p)
}

// divPow10Rounded computes round(u / 10^shift) for shift >= 0, per rnd,
// applying ovf to the (rare) case where rounding pushes the magnitude past
// int64 range.
func divPow10Rounded(u int64, shift int, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	if shift <= 0 {
		return u, nil
	}
	neg := u < 0
	mag := absU64(u)
	if shift > MaxScale {
		// Beyond the tabulated range, |u| (< 10^19) is always smaller than
		// the divisor 10^shift, so the quotient is always 0; math/big
		// handles the (rare) exact-half classification against a divisor
		// that doesn't fit in a uint64.
		if mag == 0 {
			return 0, nil
		}
		divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(shift)), nil)
		inc, err := roundingIncrement(rnd, neg, false, truncatedPartBig(new(big.Int).SetUint64(mag), divisor))
		if err != nil {
			return 0, fmt.Errorf("%d / 10^%d: %w", u, shift, err)
		}
		return combineSigned(neg, uint64(inc), ovf)
	}
	d := uint64(pow10[shift])
	q, r := mag/d, mag%d
	if r != 0 {
		inc, err := roundingIncrement(rnd, neg, q%2 == 1, truncatedPart(r, d))
		if err != nil {
			return 0, fmt.Errorf("%d / 10^%d: %w", u, shift, err)
		}
		q += uint64(inc)
	}
	return combineSigned(neg, q, ovf)
}

// mulPow10Signed multiplies u by 10^n; a negative n means divide by
// 10^(-n) instead, rounding per rnd.
func mulPow10Signed(u int64, n int32, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	if n >= 0 {
		return mulPow10(u, int(n), ovf)
	}
	return divPow10Rounded(u, int(-n), rnd, ovf)
}

// divPow10SignedOp divides u by 10^n; a negative n means multiply by
// 10^(-n) instead.
func divPow10SignedOp(u int64, n int32, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	if n >= 0 {
		return divPow10Rounded(u, int(n), rnd, ovf)
	}
	return mulPow10(u, int(-n), ovf)
}

// divByPow10WithSign divides u1 by divisor == ±10^k (recognized by the
// caller), reusing the pow10 fast path instead of a general 128-bit
// division; used by divFixed's power-of-ten specialization (spec.md §4.5).
func divByPow10WithSign(u1 int64, k int, divisorNeg bool, scale int, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	shift := scale - k
	// u1 is rounded before the sign flip, so the directed modes that depend
	// on the result's sign swap when the divisor is negative.
	r := rnd
	if divisorNeg && rnd == Ceiling {
		r = Floor
	} else if divisorNeg && rnd == Floor {
		r = Ceiling
	}
	var res int64
	var err error
	if shift >= 0 {
		res, err = mulPow10(u1, shift, ovf)
	} else {
		res, err = divPow10Rounded(u1, -shift, r, ovf)
	}
	if err != nil {
		return 0, fmt.Errorf("divide(%d, 10^%d): %w", u1, k, err)
	}
	if divisorNeg {
		return negOp(res, ovf)
	}
	return res, nil
}
