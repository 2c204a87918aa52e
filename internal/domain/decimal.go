package domain

import (
	"math/big"
	"regexp"
)

// DecimalForm identifies which surface notation a decimal string used.
type DecimalForm string

const (
	FormPlain    DecimalForm = "plain"    // 1.25
	FormParen    DecimalForm = "paren"    // 0.1(6)
	FormEllipsis DecimalForm = "ellipsis" // 0.333...
)

// The three decimal grammars. The parenthesis form allows an empty
// non-repeating prefix ("0.(3)"). The ellipsis form treats the whole shown
// fractional part as the repeating block starting at the decimal point; that
// is a convention of the notation, not an inference.
var (
	reDecimalParen    = regexp.MustCompile(`^(-?)(\d+)\.(\d*)\((\d+)\)$`)
	reDecimalEllipsis = regexp.MustCompile(`^(-?)(\d+)\.(\d+)\.\.\.$`)
	reDecimalPlain    = regexp.MustCompile(`^(-?)(\d+)\.(\d+)$`)
)

// IsDecimal reports whether s matches any of the decimal grammars.
func IsDecimal(s string) bool {
	return reDecimalParen.MatchString(s) ||
		reDecimalEllipsis.MatchString(s) ||
		reDecimalPlain.MatchString(s)
}

// ParsedDecimal is the result of ParseDecimal. Value is fully reduced;
// RawNum/RawDen keep the pre-reduction reconstruction so callers can render
// annotations like "15/10 = 3/2".
type ParsedDecimal struct {
	Value  Rational
	RawNum *big.Int
	RawDen *big.Int
	Form   DecimalForm
}

// ParseDecimal parses a decimal string into an exact Rational by algebraic
// reconstruction. Floating point is never involved, so repeating notations
// round-trip exactly and an all-nines block collapses to the next integer
// ("0.(9)" parses to 1/1).
//
// Accepted forms:
//
//	intPart.fracPart             numerator intPart‖fracPart, denominator 10^len(fracPart)
//	intPart.nonRep(rep)          numerator intPart‖nonRep‖rep − intPart‖nonRep,
//	                             denominator len(rep) nines followed by len(nonRep) zeros
//	intPart.rep...               numerator intPart‖rep − intPart, denominator len(rep) nines
//
// Anything else fails with KindInvalidFormat.
func ParseDecimal(s string) (ParsedDecimal, error) {
	if m := reDecimalParen.FindStringSubmatch(s); m != nil {
		neg, intPart, nonRep, rep := m[1] == "-", m[2], m[3], m[4]
		num := new(big.Int).Sub(digitsInt(intPart+nonRep+rep), digitsInt(intPart+nonRep))
		den := repeatingDenominator(len(rep), len(nonRep))
		return newParsedDecimal(s, FormParen, neg, num, den)
	}

	if m := reDecimalEllipsis.FindStringSubmatch(s); m != nil {
		neg, intPart, rep := m[1] == "-", m[2], m[3]
		num := new(big.Int).Sub(digitsInt(intPart+rep), digitsInt(intPart))
		den := repeatingDenominator(len(rep), 0)
		return newParsedDecimal(s, FormEllipsis, neg, num, den)
	}

	if m := reDecimalPlain.FindStringSubmatch(s); m != nil {
		neg, intPart, frac := m[1] == "-", m[2], m[3]
		num := digitsInt(intPart + frac)
		den := pow10(len(frac))
		return newParsedDecimal(s, FormPlain, neg, num, den)
	}

	return ParsedDecimal{}, &OpError{
		Op:    "domain.parse_decimal",
		Kind:  KindInvalidFormat,
		Input: s,
		Err:   ErrInvalidFormat,
	}
}

func newParsedDecimal(input string, form DecimalForm, neg bool, num, den *big.Int) (ParsedDecimal, error) {
	if neg {
		num.Neg(num)
	}

	val, err := NewRational(num, den)
	if err != nil {
		return ParsedDecimal{}, &OpError{
			Op:    "domain.parse_decimal",
			Kind:  KindInvalidFormat,
			Input: input,
			Err:   err,
		}
	}

	return ParsedDecimal{Value: val, RawNum: num, RawDen: den, Form: form}, nil
}

// digitsInt converts a digit string to a big.Int. The grammars guarantee the
// string is non-empty and all ASCII digits.
func digitsInt(digits string) *big.Int {
	n, _ := new(big.Int).SetString(digits, 10)
	return n
}

// pow10 returns 10^n.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// repeatingDenominator returns nines nines followed by zeros zeros, i.e.
// (10^nines − 1) · 10^zeros. This is the denominator of the standard
// algebraic identity for repeating decimals.
func repeatingDenominator(nines, zeros int) *big.Int {
	d := pow10(nines)
	d.Sub(d, bigOne)
	return d.Mul(d, pow10(zeros))
}
