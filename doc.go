// Package decimal4j implements fixed-point decimal arithmetic on a single
// 64-bit signed integer storage word, ported from the Java decimal4j
// arithmetic kernel.
//
// # Representation
//
// A decimal value is an unscaled int64 u paired with a scale s in [0, 18];
// its mathematical value is u * 10^-s. The scale is not carried by the
// int64 itself; callers track it alongside, typically by binding it to an
// [Arithmetic] instance via [NewArithmetic].
//
// # Operations
//
// Every arithmetic operation is a free function taking raw int64 unscaled
// values plus whatever (scale, rounding, overflow) configuration it needs,
// and an [Arithmetic] value is a thin, memoized binding of that
// configuration to method form. Multiplication, division, square root, and
// power each compute an exact wide intermediate (128 bits via math/bits,
// or arbitrary precision via math/big when that is not enough) before
// rounding back to the target scale exactly once, so results are bit-exact
// across every (scale, rounding, overflow) configuration rather than
// accumulating intermediate rounding error.
//
// # Rounding
//
// [RoundingMode] has eight values: Up, Down, Ceiling, Floor, HalfUp,
// HalfDown, HalfEven, and Unnecessary (which rejects any inexact result).
// [OverflowMode] selects whether overflow wraps (Unchecked, matching plain
// int64 semantics) or raises [ErrOverflow] (Checked).
//
// # Errors
//
// Every fallible operation returns an error wrapping one of the sentinels
// in this package (ErrOverflow, ErrDivByZero, ErrRoundingNecessary,
// ErrScaleRange, ErrExponentRange, ErrInvalidFormat, ErrSqrtNegative,
// ErrValueRange); callers distinguish failure categories with errors.Is
// rather than by comparing messages. The one exception is NewArithmetic's
// error for an invalid rounding or overflow mode, which wraps no sentinel.
package decimal4j
