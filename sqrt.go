package decimal4j

import (
	"fmt"
	"math/bits"
	"math/big"
)

// sqrtFixed computes round(sqrt(u * 10^scale)), the unscaled square root
// of a nonnegative decimal value at scale. The integer square root itself
// is delegated to math/big.Int.Sqrt (a Newton iteration in the standard
// library) over the exact 128-bit radicand; no hand-rolled non-restoring
// loop across a pair of uint64 words is used. See DESIGN.md.
func sqrtFixed(u int64, scale int, rnd RoundingMode) (int64, error) {
	if u < 0 {
		return 0, fmt.Errorf("%w: %d", ErrSqrtNegative, u)
	}
	if u == 0 {
		return 0, nil
	}
	hi, lo := bits.Mul64(uint64(u), uint64(pow10[scale]))
	radicand := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
	radicand.Or(radicand, new(big.Int).SetUint64(lo))

	root := new(big.Int).Sqrt(radicand)
	rem := new(big.Int).Sub(radicand, new(big.Int).Mul(root, root))

	r := root.Uint64()
	if rem.Sign() != 0 {
		gap := new(big.Int).Add(new(big.Int).Lsh(root, 1), big.NewInt(1))
		inc, err := roundingIncrement(rnd, false, r%2 == 1, truncatedPartBig(rem, gap))
		if err != nil {
			return 0, fmt.Errorf("sqrt(%d): %w", u, err)
		}
		r += uint64(inc)
	}
	return int64(r), nil
}
