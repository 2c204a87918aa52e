package domain

import (
	"math/big"
	"testing"
)

func TestNewRationalNormalizes(t *testing.T) {
	cases := []struct {
		num, den int64
		wantNum  string
		wantDen  string
	}{
		{6, 8, "3", "4"},
		{-6, 8, "-3", "4"},
		{6, -8, "-3", "4"},
		{-6, -8, "3", "4"},
		{0, 5, "0", "1"},
		{0, -5, "0", "1"},
		{10, 4, "5", "2"},
		{7, 1, "7", "1"},
		{100, 10, "10", "1"},
	}

	for _, c := range cases {
		r, err := NewRationalFromInt64(c.num, c.den)
		if err != nil {
			t.Fatalf("NewRational(%d, %d): unexpected error: %v", c.num, c.den, err)
		}
		if got := r.Num().String(); got != c.wantNum {
			t.Errorf("NewRational(%d, %d): num = %s, want %s", c.num, c.den, got, c.wantNum)
		}
		if got := r.Den().String(); got != c.wantDen {
			t.Errorf("NewRational(%d, %d): den = %s, want %s", c.num, c.den, got, c.wantDen)
		}
	}
}

func TestNewRationalZeroDenominator(t *testing.T) {
	_, err := NewRationalFromInt64(3, 0)
	if err == nil {
		t.Fatalf("expected error for zero denominator")
	}
	if !IsKind(err, KindDivisionByZero) {
		t.Fatalf("expected KindDivisionByZero, got %v", err)
	}
}

func TestNewRationalReducedInvariant(t *testing.T) {
	// gcd(|num|, den) must be 1 after construction, den > 0.
	for num := int64(-12); num <= 12; num++ {
		for den := int64(-12); den <= 12; den++ {
			if den == 0 {
				continue
			}
			r, err := NewRationalFromInt64(num, den)
			if err != nil {
				t.Fatalf("NewRational(%d, %d): %v", num, den, err)
			}
			if r.Den().Sign() <= 0 {
				t.Fatalf("NewRational(%d, %d): denominator not positive: %s", num, den, r.Den())
			}
			g := gcd(r.Num(), r.Den())
			if g.Cmp(big.NewInt(1)) != 0 {
				t.Fatalf("NewRational(%d, %d): not reduced, gcd = %s", num, den, g)
			}
		}
	}
}

func TestGCD(t *testing.T) {
	cases := []struct {
		a, b int64
		want int64
	}{
		{12, 8, 4},
		{8, 12, 4},
		{-12, 8, 4},
		{12, -8, 4},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{1, 1, 1},
	}

	for _, c := range cases {
		got := gcd(big.NewInt(c.a), big.NewInt(c.b))
		if got.Int64() != c.want {
			t.Errorf("gcd(%d, %d) = %s, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestGCDDoesNotMutateArguments(t *testing.T) {
	a := big.NewInt(12)
	b := big.NewInt(8)
	_ = gcd(a, b)
	if a.Int64() != 12 || b.Int64() != 8 {
		t.Fatalf("gcd mutated its arguments: a=%s b=%s", a, b)
	}
}

func TestRationalImmutability(t *testing.T) {
	r, err := NewRationalFromInt64(1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating accessor results must not reach the Rational.
	r.Num().SetInt64(99)
	r.Den().SetInt64(99)

	if r.String() != "1/2" {
		t.Fatalf("Rational mutated through accessor: %s", r)
	}
}

func TestRationalFloat64(t *testing.T) {
	r, err := NewRationalFromInt64(1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Float64(); got != 0.5 {
		t.Fatalf("Float64(1/2) = %v, want 0.5", got)
	}
}

func TestRationalZeroValue(t *testing.T) {
	// The zero value behaves as 0/1 everywhere instead of panicking.
	var r Rational

	if got := r.String(); got != "0/1" {
		t.Fatalf("zero value String() = %q, want 0/1", got)
	}
	if r.Sign() != 0 || !r.IsInt() {
		t.Fatalf("zero value should be integer zero")
	}
	if got := r.Num().String(); got != "0" {
		t.Fatalf("zero value Num() = %s", got)
	}
	if got := r.Den().String(); got != "1" {
		t.Fatalf("zero value Den() = %s", got)
	}
	if r.Float64() != 0 {
		t.Fatalf("zero value Float64() = %v", r.Float64())
	}

	zero, _ := NewRationalFromInt64(0, 5)
	if !r.Equal(zero) {
		t.Fatalf("zero value should equal 0/1")
	}

	if got := Expand(r); got.Decimal != "0" || got.Period != 0 {
		t.Fatalf("Expand(zero value) = %+v", got)
	}
	if got := Mixed(r); got != "0/1" {
		t.Fatalf("Mixed(zero value) = %q", got)
	}
	if got := Simplified(r); got != "0/1" {
		t.Fatalf("Simplified(zero value) = %q", got)
	}
}

func TestRationalEqual(t *testing.T) {
	a, _ := NewRationalFromInt64(2, 4)
	b, _ := NewRationalFromInt64(1, 2)
	c, _ := NewRationalFromInt64(1, 3)

	if !a.Equal(b) {
		t.Fatalf("2/4 should equal 1/2")
	}
	if a.Equal(c) {
		t.Fatalf("1/2 should not equal 1/3")
	}
}
