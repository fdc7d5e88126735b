package decimal4j

import (
	"fmt"
	"math/big"
	"sync"
)

// Arithmetic binds a fixed (scale, rounding mode, overflow mode) triple to
// the package's stateless int64 operations, mirroring decimal4j's Java
// DecimalArithmetic contract (spec.md §4.10/§6). Instances are memoized by
// [NewArithmetic]: every caller asking for the same configuration gets the
// same *Arithmetic, so it is safe to compare pointers and safe to share
// across goroutines (it carries no mutable state of its own).
type Arithmetic struct {
	scale    int
	rounding RoundingMode
	overflow OverflowMode
}

var (
	registryMu sync.Mutex
	registry   [MaxScale + 1][numRoundingModes][2]*Arithmetic
)

// NewArithmetic returns the memoized Arithmetic for (scale, rounding,
// overflow), validating each field.
func NewArithmetic(scale int, rounding RoundingMode, overflow OverflowMode) (*Arithmetic, error) {
	if scale < MinScale || scale > MaxScale {
		return nil, fmt.Errorf("%w: %d", ErrScaleRange, scale)
	}
	if !rounding.valid() {
		return nil, fmt.Errorf("decimal4j: invalid rounding mode %d", rounding)
	}
	if overflow != Unchecked && overflow != Checked {
		return nil, fmt.Errorf("decimal4j: invalid overflow mode %d", overflow)
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	slot := &registry[scale][rounding][overflow]
	if *slot == nil {
		*slot = &Arithmetic{scale: scale, rounding: rounding, overflow: overflow}
	}
	return *slot, nil
}

// Scale, Rounding, and Overflow report the instance's configuration.
func (a *Arithmetic) Scale() int              { return a.scale }
func (a *Arithmetic) Rounding() RoundingMode  { return a.rounding }
func (a *Arithmetic) Overflow() OverflowMode  { return a.overflow }

// One returns the unscaled representation of the value 1.
func (a *Arithmetic) One() int64 { return pow10[a.scale] }

// Add returns x + y.
func (a *Arithmetic) Add(x, y int64) (int64, error) { return addOp(x, y, a.overflow) }

// Subtract returns x - y.
func (a *Arithmetic) Subtract(x, y int64) (int64, error) { return subOp(x, y, a.overflow) }

// Multiply returns round(x * y / 10^scale).
func (a *Arithmetic) Multiply(x, y int64) (int64, error) {
	return mulFixed(x, y, a.scale, a.rounding, a.overflow)
}

// Square returns round(x * x / 10^scale).
func (a *Arithmetic) Square(x int64) (int64, error) {
	return sqrFixed(x, a.scale, a.rounding, a.overflow)
}

// Divide returns round(x * 10^scale / y).
func (a *Arithmetic) Divide(x, y int64) (int64, error) {
	return divFixed(x, y, a.scale, a.rounding, a.overflow)
}

// Invert returns round(1/x) represented at scale.
func (a *Arithmetic) Invert(x int64) (int64, error) {
	return invertFixed(x, a.scale, a.rounding, a.overflow)
}

// Sqrt returns round(sqrt(x)); x must be nonnegative.
func (a *Arithmetic) Sqrt(x int64) (int64, error) { return sqrtFixed(x, a.scale, a.rounding) }

// Pow returns round(x^n) for n in [-999999999, 999999999].
func (a *Arithmetic) Pow(x int64, n int32) (int64, error) {
	return powFixed(x, a.scale, n, a.rounding, a.overflow)
}

// Avg returns round((x+y)/2).
func (a *Arithmetic) Avg(x, y int64) (int64, error) { return avgFixed(x, y, a.rounding) }

// Negate returns -x.
func (a *Arithmetic) Negate(x int64) (int64, error) { return negOp(x, a.overflow) }

// Abs returns |x|.
func (a *Arithmetic) Abs(x int64) (int64, error) { return absOp(x, a.overflow) }

// Precision returns the number of significant decimal digits in x,
// treating 0 as having one digit.
func (a *Arithmetic) Precision(x int64) int { return precision(x) }

// Round zeroes out the digits of x past precision fractional digits
// (0 <= precision <= scale), keeping the same scale.
func (a *Arithmetic) Round(x int64, precision int) (int64, error) {
	return roundFixed(x, a.scale, precision, a.rounding, a.overflow)
}

// ShiftLeft returns x * 2^n.
func (a *Arithmetic) ShiftLeft(x int64, n int32) (int64, error) {
	return shiftLeftFixed(x, n, a.overflow)
}

// ShiftRight returns round(x / 2^n).
func (a *Arithmetic) ShiftRight(x int64, n int32) (int64, error) {
	return shiftRightFixed(x, n, a.rounding)
}

// MultiplyByPowerOfTen returns x * 10^n (n may be negative).
func (a *Arithmetic) MultiplyByPowerOfTen(x int64, n int32) (int64, error) {
	return mulPow10Signed(x, n, a.rounding, a.overflow)
}

// DivideByPowerOfTen returns round(x / 10^n) (n may be negative).
func (a *Arithmetic) DivideByPowerOfTen(x int64, n int32) (int64, error) {
	return divPow10SignedOp(x, n, a.rounding, a.overflow)
}

// Compare returns -1, 0, or 1 as x is less than, equal to, or greater than
// y; unscaled values at the same scale compare the same as their decimal
// values.
func (a *Arithmetic) Compare(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// FromLong converts an integer value v into its unscaled representation at
// scale.
func (a *Arithmetic) FromLong(v int64) (int64, error) { return mulPow10(v, a.scale, a.overflow) }

// ToLong truncates x to its integer part.
func (a *Arithmetic) ToLong(x int64) int64 {
	q, _ := divPow10Rounded(x, a.scale, Down, Unchecked)
	return q
}

// FromDouble converts f into its unscaled representation at scale.
func (a *Arithmetic) FromDouble(f float64) (int64, error) {
	return fromDoubleFixed(f, a.scale, a.rounding, a.overflow)
}

// ToDouble converts x into a float64, rounding per the instance's rounding
// mode.
func (a *Arithmetic) ToDouble(x int64) (float64, error) {
	return toDoubleFixed(x, a.scale, a.rounding)
}

// FromUnscaled converts an unscaled value at srcScale into the
// representation at scale.
func (a *Arithmetic) FromUnscaled(unscaled int64, srcScale int) (int64, error) {
	return rescale(unscaled, srcScale, a.scale, a.rounding, a.overflow)
}

// ToUnscaled converts x into the unscaled representation at dstScale.
func (a *Arithmetic) ToUnscaled(x int64, dstScale int) (int64, error) {
	return rescale(x, a.scale, dstScale, a.rounding, a.overflow)
}

// FromBigInt converts an arbitrary-precision (coefficient, scale) pair (the
// closest stdlib analogue to java.math.BigDecimal) into the representation
// at scale.
func (a *Arithmetic) FromBigInt(coef *big.Int, coefScale int) (int64, error) {
	return fromBigInt(coef, coefScale, a.scale, a.rounding, a.overflow)
}

// ToBigInt returns the (coefficient, scale) pair for x.
func (a *Arithmetic) ToBigInt(x int64) (*big.Int, int) { return toBigInt(x, a.scale) }

// Parse parses s as a decimal literal into its representation at scale.
func (a *Arithmetic) Parse(s string) (int64, error) { return parseDecimal(s, a.scale, a.rounding) }

// ToString renders x at scale as a plain decimal string.
func (a *Arithmetic) ToString(x int64) string { return formatDecimal(x, a.scale) }
