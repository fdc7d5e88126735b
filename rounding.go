package decimal4j

// truncatedPart classifies |remainder| against |divisor|/2 without ever
// computing 2*remainder, which could overflow for the largest divisors.
// divisor must be positive; remainder is the absolute value of a value in
// [0, divisor).
func truncatedPart(remainder, divisor uint64) TruncatedPart {
	if remainder == 0 {
		return PartZero
	}
	half := divisor / 2
	switch {
	case divisor%2 == 0 && remainder == half:
		return PartEqualToHalf
	case remainder <= half:
		return PartLessThanHalf
	default:
		return PartGreaterThanHalf
	}
}

// roundingIncrement returns 0 or 1: how much to add to the magnitude of a
// truncated result to apply mode. neg is the sign of the mathematical
// result; truncatedOdd is whether the least-significant digit retained by
// truncation is odd (needed only by HalfEven). It returns ErrRoundingNecessary
// for Unnecessary when part is not PartZero.
func roundingIncrement(mode RoundingMode, neg, truncatedOdd bool, part TruncatedPart) (int64, error) {
	if part == PartZero {
		return 0, nil
	}
	switch mode {
	case Up:
		return 1, nil
	case Down:
		return 0, nil
	case Ceiling:
		if !neg {
			return 1, nil
		}
		return 0, nil
	case Floor:
		if neg {
			return 1, nil
		}
		return 0, nil
	case HalfUp:
		if part == PartLessThanHalf {
			return 0, nil
		}
		return 1, nil
	case HalfDown:
		if part == PartGreaterThanHalf {
			return 1, nil
		}
		return 0, nil
	case HalfEven:
		switch part {
		case PartGreaterThanHalf:
			return 1, nil
		case PartEqualToHalf:
			if truncatedOdd {
				return 1, nil
			}
			return 0, nil
		default:
			return 0, nil
		}
	default: // Unnecessary
		return 0, ErrRoundingNecessary
	}
}
