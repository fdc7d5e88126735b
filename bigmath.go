package decimal4j

import (
	"fmt"
	"math/big"
)

// This file holds the math/big helpers shared by the rare-overflow paths in
// mul.go, div.go, pow.go, and convert.go: once a computation's exact
// magnitude no longer fits in 64 (or 128) bits, falling through to math/big
// for that one step is simpler and more obviously correct than extending
// the 128-bit fast path further.

var twoPow64 = new(big.Int).Lsh(big.NewInt(1), 64)

// truncatedPartBig is the math/big analogue of truncatedPart, for
// remainders too large to fit in a uint64 (the Pow and conversion slow
// paths).
func truncatedPartBig(remainder, divisor *big.Int) TruncatedPart {
	if remainder.Sign() == 0 {
		return PartZero
	}
	half := new(big.Int).Rsh(divisor, 1)
	cmp := remainder.Cmp(half)
	switch {
	case cmp == 0 && divisor.Bit(0) == 0:
		return PartEqualToHalf
	case cmp <= 0:
		return PartLessThanHalf
	default:
		return PartGreaterThanHalf
	}
}

// combineFromBig finalizes a nonnegative magnitude computed via math/big
// into a signed int64: ErrOverflow in Checked mode, or the low 64 bits
// (two's-complement reinterpretation) in Unchecked mode, when it doesn't
// fit. opDesc names the operation and operands for the error message.
func combineFromBig(neg bool, mag *big.Int, ovf OverflowMode, opDesc string) (int64, error) {
	signed := mag
	if neg {
		signed = new(big.Int).Neg(mag)
	}
	if signed.IsInt64() {
		return signed.Int64(), nil
	}
	if ovf == Checked {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, opDesc)
	}
	mod := new(big.Int).Mod(signed, twoPow64)
	return int64(mod.Uint64()), nil
}
