package decimal4j

import "testing"

func TestNewArithmeticMemoized(t *testing.T) {
	a1, err := NewArithmetic(2, HalfUp, Unchecked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a2, err := NewArithmetic(2, HalfUp, Unchecked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a1 != a2 {
		t.Errorf("NewArithmetic(2,HalfUp,Unchecked) returned distinct instances, want the same pointer")
	}
	a3, _ := NewArithmetic(2, Down, Unchecked)
	if a1 == a3 {
		t.Errorf("NewArithmetic with a different rounding mode returned the same instance")
	}
}

func TestNewArithmeticValidation(t *testing.T) {
	if _, err := NewArithmetic(MaxScale+1, HalfUp, Unchecked); err == nil {
		t.Errorf("NewArithmetic(scale out of range): want error")
	}
	if _, err := NewArithmetic(2, RoundingMode(99), Unchecked); err == nil {
		t.Errorf("NewArithmetic(invalid rounding mode): want error")
	}
	if _, err := NewArithmetic(2, HalfUp, OverflowMode(99)); err == nil {
		t.Errorf("NewArithmetic(invalid overflow mode): want error")
	}
}

func TestArithmeticFacade(t *testing.T) {
	a, err := NewArithmetic(2, HalfUp, Unchecked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x, err := a.Parse("12.34")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	y, err := a.Parse("1.00")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sum, err := a.Add(x, y)
	if err != nil || a.ToString(sum) != "13.34" {
		t.Errorf("Add(12.34, 1.00) = %d (%s), %v, want 13.34", sum, a.ToString(sum), err)
	}
	prod, err := a.Multiply(x, y)
	if err != nil || a.ToString(prod) != "12.34" {
		t.Errorf("Multiply(12.34, 1.00) = %d (%s), %v, want 12.34", prod, a.ToString(prod), err)
	}
	if a.Compare(x, y) != 1 || a.Compare(y, x) != -1 || a.Compare(x, x) != 0 {
		t.Errorf("Compare inconsistent for x=%d y=%d", x, y)
	}
}

func TestArithmeticFromToLong(t *testing.T) {
	a, err := NewArithmetic(2, Down, Unchecked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, err := a.FromLong(7)
	if err != nil || a.ToString(u) != "7.00" {
		t.Errorf("FromLong(7) = %d (%s), %v, want 7.00", u, a.ToString(u), err)
	}
	if got := a.ToLong(u); got != 7 {
		t.Errorf("ToLong(7.00) = %d, want 7", got)
	}
}

func TestArithmeticPrecision(t *testing.T) {
	a, err := NewArithmetic(2, HalfUp, Unchecked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := a.Precision(12345); got != 5 {
		t.Errorf("Precision(12345) = %d, want 5", got)
	}
	if got := a.Precision(0); got != 1 {
		t.Errorf("Precision(0) = %d, want 1", got)
	}
}

func TestArithmeticOne(t *testing.T) {
	a, err := NewArithmetic(3, HalfUp, Unchecked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.One() != 1000 {
		t.Errorf("One() at scale 3 = %d, want 1000", a.One())
	}
}
