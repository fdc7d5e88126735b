package decimal4j

import (
	"errors"
	"math"
	"testing"
)

func TestMulChecked(t *testing.T) {
	tests := []struct {
		a, b    int64
		want    int64
		wantErr bool
	}{
		{1_000_000, 1_000_000, 1_000_000_000_000, false},
		{2_000_000, 3_500_000, 7_000_000_000_000, false},
		{math.MaxInt64, 2, 0, true},
		{math.MinInt64, -1, 0, true},
		{math.MinInt64, 1, math.MinInt64, false},
		{0, math.MaxInt64, 0, false},
	}
	for _, tt := range tests {
		got, err := mulChecked(tt.a, tt.b)
		if (err != nil) != tt.wantErr {
			t.Fatalf("mulChecked(%d,%d): err=%v, wantErr=%v", tt.a, tt.b, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("mulChecked(%d,%d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if tt.wantErr && !errors.Is(err, ErrOverflow) {
			t.Errorf("mulChecked(%d,%d): err = %v, want wrapping ErrOverflow", tt.a, tt.b, err)
		}
	}
}

func TestAddSubChecked(t *testing.T) {
	if _, err := addChecked(math.MaxInt64, 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("addChecked(MaxInt64,1): err = %v, want ErrOverflow", err)
	}
	if _, err := subChecked(math.MinInt64, 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("subChecked(MinInt64,1): err = %v, want ErrOverflow", err)
	}
	if got, err := addChecked(2, 3); err != nil || got != 5 {
		t.Errorf("addChecked(2,3) = %d, %v, want 5, nil", got, err)
	}
}

func TestDivChecked(t *testing.T) {
	if _, err := divChecked(5, 0); !errors.Is(err, ErrDivByZero) {
		t.Errorf("divChecked(5,0): err = %v, want ErrDivByZero", err)
	}
	if _, err := divChecked(math.MinInt64, -1); !errors.Is(err, ErrOverflow) {
		t.Errorf("divChecked(MinInt64,-1): err = %v, want ErrOverflow", err)
	}
	if got, err := divChecked(7, 2); err != nil || got != 3 {
		t.Errorf("divChecked(7,2) = %d, %v, want 3, nil", got, err)
	}
}

func TestNegAbsChecked(t *testing.T) {
	if _, err := negChecked(math.MinInt64); !errors.Is(err, ErrOverflow) {
		t.Errorf("negChecked(MinInt64): err = %v, want ErrOverflow", err)
	}
	if _, err := absChecked(math.MinInt64); !errors.Is(err, ErrOverflow) {
		t.Errorf("absChecked(MinInt64): err = %v, want ErrOverflow", err)
	}
	if got, err := absChecked(-5); err != nil || got != 5 {
		t.Errorf("absChecked(-5) = %d, %v, want 5, nil", got, err)
	}
}

func TestUncheckedWrap(t *testing.T) {
	if got, err := addOp(math.MaxInt64, 1, Unchecked); err != nil || got != math.MinInt64 {
		t.Errorf("addOp(MaxInt64,1,Unchecked) = %d, %v, want MinInt64, nil", got, err)
	}
	if got, err := negOp(math.MinInt64, Unchecked); err != nil || got != math.MinInt64 {
		t.Errorf("negOp(MinInt64,Unchecked) = %d, %v, want MinInt64, nil", got, err)
	}
}
