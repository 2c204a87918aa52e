package domain

import (
	"math/big"
	"strings"
)

// Expansion is the decimal expansion of a Rational. Period is the length of
// the minimal repeating block, 0 for terminating decimals. For repeating
// expansions Decimal uses parenthesis notation ("0.1(6)"); integers render
// with no decimal point ("2").
type Expansion struct {
	Decimal string
	Period  int
}

// Expand converts a Rational to its decimal expansion by long division,
// detecting cycle onset and period by tracking the first digit position at
// which each remainder was seen. Distinct remainders are strictly fewer than
// the denominator, so the loop terminates within den−1 iterations.
func Expand(r Rational) Expansion {
	if r.Sign() == 0 {
		return Expansion{Decimal: "0", Period: 0}
	}

	rnum, den := r.parts()
	num := new(big.Int).Abs(rnum)

	intPart, rem := new(big.Int).QuoRem(num, den, new(big.Int))

	var b strings.Builder
	if r.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(intPart.String())

	if rem.Sign() == 0 {
		return Expansion{Decimal: b.String(), Period: 0}
	}

	// Long division: seen maps each remainder to the digit position at which
	// it first produced a digit. A recurring remainder marks the cycle onset.
	seen := make(map[string]int)
	var digits []byte
	digit := new(big.Int)

	for rem.Sign() != 0 {
		key := rem.String()
		if start, ok := seen[key]; ok {
			b.WriteByte('.')
			b.Write(digits[:start])
			b.WriteByte('(')
			b.Write(digits[start:])
			b.WriteByte(')')
			return Expansion{Decimal: b.String(), Period: len(digits) - start}
		}
		seen[key] = len(digits)

		rem.Mul(rem, bigTen)
		digit.Quo(rem, den)
		rem.Mod(rem, den)
		digits = append(digits, byte('0'+digit.Int64()))
	}

	b.WriteByte('.')
	b.Write(digits)
	return Expansion{Decimal: b.String(), Period: 0}
}
