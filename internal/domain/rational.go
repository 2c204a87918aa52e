package domain

import (
	"math/big"
)

// Rational is an exact signed rational number kept in lowest terms.
//
// Invariants, established by NewRational and preserved by every operation:
//   - the denominator is strictly positive; the sign lives in the numerator
//   - gcd(|num|, den) == 1
//   - zero is represented as 0/1
//
// The zero value Rational{} is 0/1. A Rational is immutable once
// constructed; the accessors return copies so callers can never violate the
// invariants through aliasing.
type Rational struct {
	num *big.Int
	den *big.Int
}

// parts returns the components, mapping the zero value to 0/1. The returned
// ints are shared and must not be mutated.
func (r Rational) parts() (num, den *big.Int) {
	if r.num == nil || r.den == nil {
		return bigZero, bigOne
	}
	return r.num, r.den
}

// NewRational builds a normalized Rational from num/den.
// A zero denominator fails with KindDivisionByZero.
func NewRational(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, &OpError{
			Op:   "domain.new_rational",
			Kind: KindDivisionByZero,
			Err:  ErrDivisionByZero,
		}
	}

	if num.Sign() == 0 {
		return Rational{num: big.NewInt(0), den: big.NewInt(1)}, nil
	}

	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)

	// Sign moves to the numerator.
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	g := gcd(n, d)
	n.Quo(n, g)
	d.Quo(d, g)

	return Rational{num: n, den: d}, nil
}

// NewRationalFromInt64 is a convenience wrapper for small constants.
func NewRationalFromInt64(num, den int64) (Rational, error) {
	return NewRational(big.NewInt(num), big.NewInt(den))
}

// gcd returns the non-negative greatest common divisor of a and b using the
// Euclidean algorithm over absolute values. Neither argument is mutated.
// gcd(0, 0) never occurs in practice because denominators are never zero.
func gcd(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, x.Mod(x, y)
	}
	return x
}

// Num returns a copy of the numerator (carries the sign).
func (r Rational) Num() *big.Int {
	num, _ := r.parts()
	return new(big.Int).Set(num)
}

// Den returns a copy of the denominator (always positive).
func (r Rational) Den() *big.Int {
	_, den := r.parts()
	return new(big.Int).Set(den)
}

// Sign returns -1, 0, or +1.
func (r Rational) Sign() int {
	num, _ := r.parts()
	return num.Sign()
}

// IsInt reports whether the reduced denominator is 1.
func (r Rational) IsInt() bool {
	_, den := r.parts()
	return den.Cmp(bigOne) == 0
}

// Equal reports exact equality. Both values are reduced, so comparing the
// components suffices.
func (r Rational) Equal(other Rational) bool {
	rn, rd := r.parts()
	on, od := other.parts()
	return rn.Cmp(on) == 0 && rd.Cmp(od) == 0
}

// Float64 returns the nearest floating-point approximation. This is the only
// lossy conversion in the domain; it backs scientific notation and nothing
// else.
func (r Rational) Float64() float64 {
	num, den := r.parts()
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	return f
}

// String renders "num/den" ("-3/4", "0/1").
func (r Rational) String() string {
	num, den := r.parts()
	return num.String() + "/" + den.String()
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)
)
