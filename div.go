package decimal4j

import (
	"fmt"
	"math/big"
)

// divFixed computes round(u1 * 10^scale / u2), the unscaled quotient of
// two decimal values sharing scale. A power-of-ten divisor is recognized
// and delegated to pow10.go's cheaper shift path (spec.md §4.5). Otherwise,
// when |u1| <= maxInteger(s) the numerator u1*10^scale fits in 64 bits and
// is computed with plain uint64 multiply/divide (the fast path spec.md
// §4.5 describes); every other case goes through the exact 128-bit
// numerator, falling back further to math/big only if even that overflows.
func divFixed(u1, u2 int64, scale int, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	if u2 == 0 {
		return 0, fmt.Errorf("%w: %d / 0", ErrDivByZero, u1)
	}
	if u1 == 0 {
		return 0, nil
	}
	if k, ok := pow10Exponent(u2); ok {
		return divByPow10WithSign(u1, k, u2 < 0, scale, rnd, ovf)
	}

	neg := (u1 < 0) != (u2 < 0)
	m1 := absU64(u1)
	m2 := absU64(u2)
	d := uint64(pow10[scale])

	limit := uint64(maxUnscaled(scale))
	if u1 < 0 {
		limit = absU64(minUnscaled(scale))
	}
	if m1 <= limit {
		numerator := m1 * d
		q, r := numerator/m2, numerator%m2
		if r != 0 {
			inc, err := roundingIncrement(rnd, neg, q%2 == 1, truncatedPart(r, m2))
			if err != nil {
				return 0, fmt.Errorf("divide(%d, %d): %w", u1, u2, err)
			}
			q += uint64(inc)
		}
		return combineSigned(neg, q, ovf)
	}

	hi, lo := mulHiLo(m1, d)
	q, r, ok := div128(hi, lo, m2)
	if !ok {
		return divFixedBig(u1, u2, neg, hi, lo, m2, rnd, ovf)
	}
	if r != 0 {
		inc, err := roundingIncrement(rnd, neg, q%2 == 1, truncatedPart(r, m2))
		if err != nil {
			return 0, fmt.Errorf("divide(%d, %d): %w", u1, u2, err)
		}
		q += uint64(inc)
	}
	return combineSigned(neg, q, ovf)
}

// divFixedBig is the math/big fallback for the rare case where u1*10^scale
// needs more than 64 bits even after dividing by u2.
func divFixedBig(u1, u2 int64, neg bool, hi, lo, m2 uint64, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	num := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
	num.Or(num, new(big.Int).SetUint64(lo))
	den := new(big.Int).SetUint64(m2)
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(num, den, r)
	if r.Sign() != 0 {
		inc, err := roundingIncrement(rnd, neg, q.Bit(0) == 1, truncatedPartBig(r, den))
		if err != nil {
			return 0, fmt.Errorf("divide(%d, %d): %w", u1, u2, err)
		}
		if inc == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	return combineFromBig(neg, q, ovf, fmt.Sprintf("divide(%d, %d)", u1, u2))
}

// invertFixed computes round(10^(2*scale) / u), the unscaled reciprocal of
// a decimal value at scale, by reusing divFixed with the representation of
// 1 as the numerator.
func invertFixed(u int64, scale int, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	return divFixed(pow10[scale], u, scale, rnd, ovf)
}
