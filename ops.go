package decimal4j

import "fmt"

// avgFixed computes round((u1+u2)/2) without computing u1+u2 directly,
// which could overflow int64 even though both operands and the true
// average fit. u1/2 and u2/2 each fit trivially; their sum can only be off
// by the combined truncated remainders, which are in {-2,-1,0,1,2}.
func avgFixed(u1, u2 int64, rnd RoundingMode) (int64, error) {
	half1, rem1 := u1/2, u1%2
	half2, rem2 := u2/2, u2%2
	base := half1 + half2
	remSum := rem1 + rem2

	switch remSum {
	case 0:
		return base, nil
	case 2:
		return base + 1, nil
	case -2:
		return base - 1, nil
	default:
		// The true average is base + remSum/2; t is it truncated towards zero.
		t, neg := base, remSum < 0
		if remSum > 0 && base < 0 {
			t, neg = base+1, true
		} else if remSum < 0 && base > 0 {
			t, neg = base-1, false
		}
		inc, err := roundingIncrement(rnd, neg, t%2 != 0, PartEqualToHalf)
		if err != nil {
			return 0, fmt.Errorf("avg(%d, %d): %w", u1, u2, err)
		}
		if neg {
			return t - inc, nil
		}
		return t + inc, nil
	}
}

// shiftLeftFixed computes u << n (u * 2^n) with overflow detection; n must
// be nonnegative (spec.md §4.10's shiftLeft/shiftRight are a power-of-two
// scaling pair, distinct from the power-of-ten scale of the decimal
// itself).
func shiftLeftFixed(u int64, n int32, ovf OverflowMode) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: shift %d", ErrExponentRange, n)
	}
	if n == 0 || u == 0 {
		return u, nil
	}
	if n >= 64 {
		if ovf == Checked {
			return 0, fmt.Errorf("%w: %d << %d", ErrOverflow, u, n)
		}
		return 0, nil
	}
	shifted := u << uint(n)
	if ovf == Checked && shifted>>uint(n) != u {
		return 0, fmt.Errorf("%w: %d << %d", ErrOverflow, u, n)
	}
	return shifted, nil
}

// shiftRightFixed computes round(u / 2^n); shifting right can never
// overflow int64 since it only shrinks the magnitude.
func shiftRightFixed(u int64, n int32, rnd RoundingMode) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: shift %d", ErrExponentRange, n)
	}
	if n == 0 || u == 0 {
		return u, nil
	}
	neg := u < 0
	mag := absU64(u)
	var q, r uint64
	if n >= 64 {
		q, r = 0, mag
	} else {
		q = mag >> uint(n)
		r = mag & ((uint64(1) << uint(n)) - 1)
	}
	if r != 0 {
		var half uint64
		if n <= 64 {
			half = uint64(1) << uint(n-1)
		}
		var part TruncatedPart
		switch {
		case n > 64 || r < half:
			part = PartLessThanHalf
		case r == half:
			part = PartEqualToHalf
		default:
			part = PartGreaterThanHalf
		}
		inc, err := roundingIncrement(rnd, neg, q%2 == 1, part)
		if err != nil {
			return 0, fmt.Errorf("shiftRight(%d, %d): %w", u, n, err)
		}
		q += uint64(inc)
	}
	return combineSigned(neg, q, Unchecked)
}

// roundFixed rounds off the trailing (scale-precision) fractional digits of
// u and re-pads with zeros, keeping the value at the same scale (decimal4j's
// DecimalArithmetic.round(uDecimal, precision)).
func roundFixed(u int64, scale, precision int, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	if precision < 0 || precision >= scale {
		return u, nil
	}
	shift := scale - precision
	divided, err := divPow10Rounded(u, shift, rnd, ovf)
	if err != nil {
		return 0, fmt.Errorf("round(%d, %d): %w", u, precision, err)
	}
	return mulPow10(divided, shift, ovf)
}
