package decimal4j

import (
	"fmt"
	"math"
	"math/big"
)

// rescale computes the unscaled value representing the same decimal at
// dstScale instead of srcScale: multiply or divide by 10^|dstScale-srcScale|
// with rounding (spec.md §4.9 unscaledToUnscaled).
func rescale(u int64, srcScale, dstScale int, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	switch {
	case dstScale == srcScale:
		return u, nil
	case dstScale > srcScale:
		return mulPow10(u, dstScale-srcScale, ovf)
	default:
		return divPow10Rounded(u, srcScale-dstScale, rnd, ovf)
	}
}

// fromDoubleFixed converts a float64 into an unscaled value at scale. A
// float64 is an exact dyadic rational, which big.Rat.SetFloat64 captures
// without any precision loss; multiplying by 10^scale and rounding the
// resulting ratio to an integer is therefore bit-exact for every float64
// input, including adversarial literals like 0.99999999999999994.
//
// A magnitude outside int64's representable range is an input-domain
// failure (spec.md §4.9), not an overflow governed by ovf: it is rejected
// with ErrValueRange unconditionally, in both overflow modes, the same way
// decimal4j's fromDouble rejects it regardless of checked/unchecked.
func fromDoubleFixed(f float64, scale int, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, f)
	}
	rat := new(big.Rat).SetFloat64(f)
	num := new(big.Int).Mul(rat.Num(), big.NewInt(pow10[scale]))
	den := rat.Denom()

	neg := num.Sign() < 0
	numAbs := new(big.Int).Abs(num)
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(numAbs, den, r)
	if r.Sign() != 0 {
		inc, err := roundingIncrement(rnd, neg, q.Bit(0) == 1, truncatedPartBig(r, den))
		if err != nil {
			return 0, fmt.Errorf("fromDouble(%v): %w", f, err)
		}
		if inc == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	limit := new(big.Int).Lsh(big.NewInt(1), 63)
	if (neg && q.Cmp(limit) > 0) || (!neg && q.Cmp(limit) >= 0) {
		return 0, fmt.Errorf("%w: fromDouble(%v)", ErrValueRange, f)
	}
	return combineFromBig(neg, q, ovf, fmt.Sprintf("fromDouble(%v)", f))
}

// bigFloatMode maps a RoundingMode onto the closest big.RoundingMode for
// toDoubleFixed. HalfDown has no equivalent among big.Float's six modes (it
// and ToNearestEven agree everywhere except an exact tie between two
// adjacent float64 values, vanishingly rare for a base-10 source value);
// Unnecessary is resolved by ToNearestEven plus an explicit exactness
// check. See DESIGN.md.
func bigFloatMode(rnd RoundingMode) big.RoundingMode {
	switch rnd {
	case Down:
		return big.ToZero
	case Up:
		return big.AwayFromZero
	case Floor:
		return big.ToNegativeInf
	case Ceiling:
		return big.ToPositiveInf
	case HalfUp:
		return big.ToNearestAway
	default: // HalfDown, HalfEven, Unnecessary
		return big.ToNearestEven
	}
}

// toDoubleFixed converts an unscaled value at scale into the nearest
// float64 under rnd, using math/big.Float's native IEEE-754-style rounding
// modes (spec.md §4.9 toDouble).
func toDoubleFixed(u int64, scale int, rnd RoundingMode) (float64, error) {
	if u == 0 {
		return 0, nil
	}
	rat := new(big.Rat).SetFrac(big.NewInt(u), big.NewInt(pow10[scale]))
	bf := new(big.Float).SetPrec(53).SetMode(bigFloatMode(rnd)).SetRat(rat)
	f, _ := bf.Float64()
	if rnd == Unnecessary {
		back := new(big.Rat).SetFloat64(f)
		if back.Cmp(rat) != 0 {
			return 0, fmt.Errorf("%w: toDouble(%d)", ErrRoundingNecessary, u)
		}
	}
	return f, nil
}

// fromBigInt converts an arbitrary-precision (coefficient, scale) pair (the
// same representation java.math.BigDecimal uses internally, the closest
// stdlib analogue Go has to BigDecimal) into an unscaled int64 at dstScale
// (spec.md §4.9 fromBigDecimal).
func fromBigInt(coef *big.Int, coefScale, dstScale int, rnd RoundingMode, ovf OverflowMode) (int64, error) {
	shift := dstScale - coefScale
	neg := coef.Sign() < 0
	mag := new(big.Int).Abs(coef)

	if shift > 0 {
		mag.Mul(mag, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(shift)), nil))
	} else if shift < 0 {
		div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-shift)), nil)
		q, r := new(big.Int), new(big.Int)
		q.QuoRem(mag, div, r)
		if r.Sign() != 0 {
			inc, err := roundingIncrement(rnd, neg, q.Bit(0) == 1, truncatedPartBig(r, div))
			if err != nil {
				return 0, fmt.Errorf("fromBigInt: %w", err)
			}
			if inc == 1 {
				q.Add(q, big.NewInt(1))
			}
		}
		mag = q
	}
	return combineFromBig(neg, mag, ovf, "fromBigInt")
}

// toBigInt returns the (coefficient, scale) pair for u at scale; this is
// an exact, rounding-free conversion since the source and target scale are
// always the same (spec.md §4.9 toBigDecimal).
func toBigInt(u int64, scale int) (*big.Int, int) {
	return big.NewInt(u), scale
}

// parseDecimal parses s as a decimal literal (optional sign, digits,
// optional '.' fraction, optional exponent) and returns its unscaled value
// at scale, rounding per rnd if s carries more fractional digits than
// scale allows. Unlike a two-tier fast/slow parser, this always accumulates
// into a math/big.Int coefficient directly; see DESIGN.md for why that
// one-tier design is preferred here.
func parseDecimal(s string, scale int, rnd RoundingMode) (int64, error) {
	if scale < MinScale || scale > MaxScale {
		return 0, fmt.Errorf("%w: %d", ErrScaleRange, scale)
	}
	i, width := 0, len(s)
	neg := false
	if i < width && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	coef := new(big.Int)
	hasDigits := false
	ten := big.NewInt(10)
	for i < width && s[i] >= '0' && s[i] <= '9' {
		hasDigits = true
		coef.Mul(coef, ten)
		coef.Add(coef, big.NewInt(int64(s[i]-'0')))
		i++
	}

	fracDigits := 0
	if i < width && s[i] == '.' {
		i++
		for i < width && s[i] >= '0' && s[i] <= '9' {
			hasDigits = true
			coef.Mul(coef, ten)
			coef.Add(coef, big.NewInt(int64(s[i]-'0')))
			fracDigits++
			i++
		}
	}

	exp := 0
	if i < width && (s[i] == 'e' || s[i] == 'E') {
		i++
		expNeg := false
		if i < width && (s[i] == '+' || s[i] == '-') {
			expNeg = s[i] == '-'
			i++
		}
		expStart := i
		for i < width && s[i] >= '0' && s[i] <= '9' {
			exp = exp*10 + int(s[i]-'0')
			i++
		}
		if i == expStart {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		if expNeg {
			exp = -exp
		}
	}

	if i != width || !hasDigits {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	if neg && coef.Sign() != 0 {
		coef.Neg(coef)
	}
	return fromBigInt(coef, fracDigits-exp, scale, rnd, Checked)
}

// formatDecimal renders u at scale as a plain decimal string, writing
// digits from the back of a fixed buffer, the same approach Decimal's
// String method uses, generalized to take scale as a parameter instead of
// a struct field.
func formatDecimal(u int64, scale int) string {
	var buf [24]byte
	pos := len(buf)
	mag := absU64(u)
	s := scale
	for {
		pos--
		buf[pos] = byte(mag%10) + '0'
		mag /= 10
		if s > 0 {
			s--
			if s == 0 {
				pos--
				buf[pos] = '.'
				if mag == 0 {
					pos--
					buf[pos] = '0'
				}
			}
		}
		if mag == 0 && s == 0 {
			break
		}
	}
	if u < 0 {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
