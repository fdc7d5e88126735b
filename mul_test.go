package decimal4j

import (
	"math"
	"testing"
)

func TestMulFixedBoundaryScenarios(t *testing.T) {
	// spec.md §8 boundary scenarios 1 and 2.
	tests := []struct {
		name  string
		u1    int64
		u2    int64
		scale int
		want  int64
	}{
		{"1e6 * 1e6 at scale 6", 1_000_000, 1_000_000, 6, 1_000_000},
		{"2e6 * 3.5e6 at scale 6", 2_000_000, 3_500_000, 6, 7_000_000},
	}
	for _, tt := range tests {
		got, err := mulFixed(tt.u1, tt.u2, tt.scale, HalfUp, Unchecked)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: mulFixed = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestMulFixedZeroAndSign(t *testing.T) {
	if got, err := mulFixed(0, 12345, 2, HalfUp, Unchecked); err != nil || got != 0 {
		t.Errorf("mulFixed(0, 12345) = %d, %v, want 0, nil", got, err)
	}
	got, err := mulFixed(-200, 300, 2, HalfUp, Unchecked) // (-2.00)*(3.00) = -6.00
	if err != nil || got != -600 {
		t.Errorf("mulFixed(-200, 300, scale 2) = %d, %v, want -600, nil", got, err)
	}
}

func TestMulFixedRounding(t *testing.T) {
	// 1.05 * 1.05 = 1.1025, rounded to scale 2.
	got, err := mulFixed(105, 105, 2, HalfUp, Unchecked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 110 {
		t.Errorf("mulFixed(105,105,scale2,HalfUp) = %d, want 110", got)
	}
	got, err = mulFixed(105, 105, 2, Down, Unchecked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 110 {
		t.Errorf("mulFixed(105,105,scale2,Down) = %d, want 110 (1.1025 truncates to 1.10)", got)
	}
}

func TestMulFixedOverflow(t *testing.T) {
	// scenario 6: multiply(INT64_MAX, 2) fails under CHECKED, wraps under UNCHECKED.
	if _, err := mulFixed(math.MaxInt64, 2, 0, Down, Checked); err == nil {
		t.Errorf("mulFixed(MaxInt64, 2, Checked) expected overflow error")
	}
	got, err := mulFixed(math.MaxInt64, 2, 0, Down, Unchecked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -2 {
		t.Errorf("mulFixed(MaxInt64, 2, Unchecked) = %d, want -2", got)
	}
}

func TestSqrFixedMatchesMul(t *testing.T) {
	for _, u := range []int64{0, 1, -1, 12345, -999999} {
		want, werr := mulFixed(u, u, 4, HalfEven, Checked)
		got, gerr := sqrFixed(u, 4, HalfEven, Checked)
		if (werr == nil) != (gerr == nil) || got != want {
			t.Errorf("sqrFixed(%d) = %d, %v; mulFixed(%d,%d) = %d, %v", u, got, gerr, u, u, want, werr)
		}
	}
}
