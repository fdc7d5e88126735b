package decimal4j

import (
	"math"
	"testing"
)

func TestMul128(t *testing.T) {
	neg, hi, lo := mul128(1_000_000_000, 1_000_000_000)
	if neg || hi != 0 || lo != 1_000_000_000_000_000_000 {
		t.Errorf("mul128(1e9,1e9) = neg=%v hi=%d lo=%d, want false 0 1e18", neg, hi, lo)
	}
	neg, hi, lo = mul128(math.MinInt64, 1)
	if !neg || hi != 0 || lo != signBoundary {
		t.Errorf("mul128(MinInt64,1) = neg=%v hi=%d lo=%d, want true 0 2^63", neg, hi, lo)
	}
	neg, _, _ = mul128(-5, 5)
	if !neg {
		t.Errorf("mul128(-5,5): neg = false, want true")
	}
	neg, _, _ = mul128(-5, -5)
	if neg {
		t.Errorf("mul128(-5,-5): neg = true, want false")
	}
}

func TestDiv128(t *testing.T) {
	q, r, ok := div128(0, 1_000_000_000_000_000_000, 1_000_000_000)
	if !ok || q != 1_000_000_000 || r != 0 {
		t.Errorf("div128(0,1e18,1e9) = q=%d r=%d ok=%v, want 1e9 0 true", q, r, ok)
	}
	if _, _, ok := div128(5, 3, 2); ok {
		t.Errorf("div128(5,3,2): ok = true, want false (hi >= d)")
	}
	if _, _, ok := div128(0, 7, 0); ok {
		t.Errorf("div128(0,7,0): ok = true, want false (division by zero)")
	}
}

func TestSignedFromMag(t *testing.T) {
	if v, ok := signedFromMag(true, signBoundary); !ok || v != math.MinInt64 {
		t.Errorf("signedFromMag(true, 2^63) = %d, %v, want MinInt64, true", v, ok)
	}
	if _, ok := signedFromMag(false, signBoundary); ok {
		t.Errorf("signedFromMag(false, 2^63): ok = true, want false")
	}
	if _, ok := signedFromMag(true, signBoundary+1); ok {
		t.Errorf("signedFromMag(true, 2^63+1): ok = true, want false")
	}
	if v, ok := signedFromMag(false, 42); !ok || v != 42 {
		t.Errorf("signedFromMag(false, 42) = %d, %v, want 42, true", v, ok)
	}
}

func TestCombineSigned(t *testing.T) {
	if v, err := combineSigned(true, signBoundary, Unchecked); err != nil || v != math.MinInt64 {
		t.Errorf("combineSigned(true, 2^63, Unchecked) = %d, %v, want MinInt64, nil", v, err)
	}
	if _, err := combineSigned(false, signBoundary, Checked); err == nil {
		t.Errorf("combineSigned(false, 2^63, Checked): want ErrOverflow")
	}
	if v, err := combineSigned(false, signBoundary, Unchecked); err != nil || v != math.MinInt64 {
		t.Errorf("combineSigned(false, 2^63, Unchecked) = %d, %v, want MinInt64, nil (wraps)", v, err)
	}
}
