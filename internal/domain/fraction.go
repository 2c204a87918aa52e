package domain

import (
	"math/big"
	"regexp"
	"strings"
)

// Fraction grammar: optional sign on either operand, denominator must not
// start with 0 (which also excludes a literal zero denominator).
var reFraction = regexp.MustCompile(`^-?\d+/-?[1-9]\d*$`)

// Fraction-shaped input whose denominator digits are all zero ("3/0",
// "5/-0", "3/00"). Reported as division by zero, not as a format error.
var reFractionZeroDen = regexp.MustCompile(`^-?\d+/-?0+$`)

// IsFraction reports whether s matches the fraction grammar.
func IsFraction(s string) bool {
	return reFraction.MatchString(s)
}

// ParseFraction parses an "a/b" string into a Rational.
//
// The effective sign is the XOR of the operand signs and ends up on the
// numerator. A zero denominator literal is rejected as KindDivisionByZero,
// a distinct error from the format rejection, even though the grammar
// already excludes it.
func ParseFraction(s string) (Rational, error) {
	if !reFraction.MatchString(s) {
		if reFractionZeroDen.MatchString(s) {
			return Rational{}, &OpError{
				Op:    "domain.parse_fraction",
				Kind:  KindDivisionByZero,
				Input: s,
				Err:   ErrDivisionByZero,
			}
		}
		return Rational{}, &OpError{
			Op:    "domain.parse_fraction",
			Kind:  KindInvalidFormat,
			Input: s,
			Err:   ErrInvalidFormat,
		}
	}

	numStr, denStr, _ := strings.Cut(s, "/")

	num, ok := new(big.Int).SetString(numStr, 10)
	if !ok {
		return Rational{}, &OpError{
			Op:    "domain.parse_fraction",
			Kind:  KindInvalidFormat,
			Input: s,
			Err:   ErrInvalidFormat,
		}
	}
	den, ok := new(big.Int).SetString(denStr, 10)
	if !ok {
		return Rational{}, &OpError{
			Op:    "domain.parse_fraction",
			Kind:  KindInvalidFormat,
			Input: s,
			Err:   ErrInvalidFormat,
		}
	}

	if den.Sign() == 0 {
		return Rational{}, &OpError{
			Op:    "domain.parse_fraction",
			Kind:  KindDivisionByZero,
			Input: s,
			Err:   ErrDivisionByZero,
		}
	}

	return NewRational(num, den)
}
