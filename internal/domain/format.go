package domain

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Simplified renders the reduced fraction as "num/den". The denominator is
// always positive and is kept even when it is 1 ("2/1"); the integer-alone
// rendering belongs to Mixed.
func Simplified(r Rational) string {
	return r.String()
}

// Mixed renders r as a mixed number: integer part plus proper fraction
// remainder ("2 + 1/2"). A proper fraction is identical to its simplified
// form; an exact integer renders alone ("2", "-2"). The sign is carried on
// the integer part only ("-5/2" → "-2 + 1/2").
func Mixed(r Rational) string {
	num, den := r.parts()

	absNum := new(big.Int).Abs(num)
	if absNum.Cmp(den) < 0 {
		return Simplified(r)
	}

	intPart, rem := new(big.Int).QuoRem(absNum, den, new(big.Int))

	sign := ""
	if r.Sign() < 0 {
		sign = "-"
	}

	if rem.Sign() == 0 {
		return sign + intPart.String()
	}
	return fmt.Sprintf("%s%s + %s/%s", sign, intPart, rem, den)
}

// Scientific renders r in exponential notation with the given number of
// mantissa digits ("5.0000000000e-1" for 1/2 at 10 digits). The exponent is
// written without zero padding. This goes through float64 and is the one
// deliberately approximate representation in the system; everything else
// stays exact.
func Scientific(r Rational, digits int) string {
	if digits < 1 {
		digits = DefaultScientificDigits
	}

	s := strconv.FormatFloat(r.Float64(), 'e', digits, 64)

	mantissa, exp, _ := strings.Cut(s, "e")
	expSign := ""
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		if exp[0] == '-' {
			expSign = "-"
		} else {
			expSign = "+"
		}
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}

	return mantissa + "e" + expSign + exp
}
