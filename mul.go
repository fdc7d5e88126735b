package decimal4j

import (
	"fmt"
	"math/big"
)

// mulFixed computes round(u1 * u2 / 10^scale), the unscaled product of two
// decimal values sharing scale. Where decimal4j's Java original splits the
// multiplication at scale 9 because Java has no widening 64-bit multiply,
// this uses math/bits.Mul64 to form the exact 128-bit magnitude product
// directly and needs no split (see DESIGN.md).
func mulFixed(u1, u2 int64, scale int, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	if u1 == 0 || u2 == 0 {
		return 0, nil
	}
	neg, hi, lo := mul128(u1, u2)
	d := uint64(pow10[scale])

	q, r, ok := div128(hi, lo, d)
	if !ok {
		return mulFixedBig(u1, u2, neg, hi, lo, scale, rnd, ovf)
	}
	if r != 0 {
		inc, err := roundingIncrement(rnd, neg, q%2 == 1, truncatedPart(r, d))
		if err != nil {
			return 0, fmt.Errorf("multiply(%d, %d): %w", u1, u2, err)
		}
		q += uint64(inc)
	}
	return combineSigned(neg, q, ovf)
}

// mulFixedBig is the math/big fallback for the rare case where the product
// needs more than 64 bits even after dividing by 10^scale.
func mulFixedBig(u1, u2 int64, neg bool, hi, lo uint64, scale int, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	prod := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
	prod.Or(prod, new(big.Int).SetUint64(lo))
	d := big.NewInt(pow10[scale])
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(prod, d, r)
	if r.Sign() != 0 {
		inc, err := roundingIncrement(rnd, neg, q.Bit(0) == 1, truncatedPartBig(r, d))
		if err != nil {
			return 0, fmt.Errorf("multiply(%d, %d): %w", u1, u2, err)
		}
		if inc == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	return combineFromBig(neg, q, ovf, fmt.Sprintf("multiply(%d, %d)", u1, u2))
}

// sqrFixed computes round(u*u / 10^scale); squaring is multiply with both
// factors equal, so it shares mulFixed's exact 128-bit path.
func sqrFixed(u int64, scale int, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	return mulFixed(u, u, scale, rnd, ovf)
}
