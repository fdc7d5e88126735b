package decimal4j

import (
	"fmt"
	"math"
	"math/bits"
)

// This file ports decimal4j's org.decimal4j.arithmetic.Checked (MIT,
// Copyright (c) 2015-2021 decimal4j/tools4j, Marco Terzer) to Go: the
// overflow tests are the same leading-zero-count / sign-bit-XOR tricks
// (Hacker's Delight), adapted from Java's Long.numberOfLeadingZeros to
// math/bits.LeadingZeros64.

func addChecked(a, b int64) (int64, error) {
	r := a + b
	if (a^b) >= 0 && (a^r) < 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return r, nil
}

func subChecked(a, b int64) (int64, error) {
	r := a - b
	if (a^b) < 0 && (a^r) < 0 {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return r, nil
}

// mulChecked multiplies a and b, raising ErrOverflow if the mathematical
// product does not fit in an int64. The leading-zero gate accepts or
// rejects the common case without computing a division; only the narrow
// band in between needs the exact a*b == r/a check.
func mulChecked(a, b int64) (int64, error) {
	leadingZeros := bits.LeadingZeros64(uint64(a)) + bits.LeadingZeros64(uint64(^a)) +
		bits.LeadingZeros64(uint64(b)) + bits.LeadingZeros64(uint64(^b))
	r := a * b
	if leadingZeros > 65 {
		return r, nil
	}
	if leadingZeros < 64 || (a < 0 && b == math.MinInt64) || (a != 0 && r/a != b) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return r, nil
}

// divChecked divides a by b, raising ErrDivByZero for b == 0 and
// ErrOverflow for the single representable-overflow case MinInt64 / -1.
func divChecked(a, b int64) (int64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d / 0", ErrDivByZero, a)
	}
	if b == -1 && a == math.MinInt64 {
		return 0, fmt.Errorf("%w: %d / %d", ErrOverflow, a, b)
	}
	return a / b, nil
}

// divWrap divides a by b without an overflow check: division by zero is
// always fatal regardless of overflow mode (there is no two's-complement
// wraparound for it), but MinInt64 / -1 is left to Go's defined behavior,
// which yields MinInt64 unchanged.
func divWrap(a, b int64) (int64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d / 0", ErrDivByZero, a)
	}
	return a / b, nil
}

func negChecked(a int64) (int64, error) {
	r := -a
	if a != 0 && (a^r) >= 0 {
		return 0, fmt.Errorf("%w: negate(%d)", ErrOverflow, a)
	}
	return r, nil
}

func absChecked(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, fmt.Errorf("%w: abs(%d)", ErrOverflow, a)
	}
	if a < 0 {
		return -a, nil
	}
	return a, nil
}

// addOp, subOp, mulOp, divOp, negOp, and absOp dispatch to the checked or
// wrapping variant of each primitive based on ovf, so the higher-level
// operations in this package don't need to branch themselves.

func addOp(a, b int64, ovf OverflowMode) (int64, error) {
	if ovf == Checked {
		return addChecked(a, b)
	}
	return a + b, nil
}

func subOp(a, b int64, ovf OverflowMode) (int64, error) {
	if ovf == Checked {
		return subChecked(a, b)
	}
	return a - b, nil
}

func mulOp(a, b int64, ovf OverflowMode) (int64, error) {
	if ovf == Checked {
		return mulChecked(a, b)
	}
	return a * b, nil
}

func divOp(a, b int64, ovf OverflowMode) (int64, error) {
	if ovf == Checked {
		return divChecked(a, b)
	}
	return divWrap(a, b)
}

func negOp(a int64, ovf OverflowMode) (int64, error) {
	if ovf == Checked {
		return negChecked(a)
	}
	return -a, nil
}

func absOp(a int64, ovf OverflowMode) (int64, error) {
	if ovf == Checked {
		return absChecked(a)
	}
	if a < 0 {
		return -a, nil
	}
	return a, nil
}
