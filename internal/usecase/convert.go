// Package usecase orchestrates the domain converters into the operations the
// CLI and TUI consume.
package usecase

import (
	"fmt"

	"github.com/afuentes/fracto/internal/domain"
)

// FractionConversion is the full set of representations derived from a
// fraction input. Mixed is empty when it would equal Simplified.
type FractionConversion struct {
	Simplified string `json:"simplified"`
	Decimal    string `json:"decimal"`
	Period     int    `json:"period"`
	Scientific string `json:"scientific"`
	Mixed      string `json:"mixed,omitempty"`
}

// DecimalConversion is the fraction reconstructed from a decimal input.
// Integer is set when the reduced denominator is 1, otherwise Fraction is;
// Fraction carries a "raw = simplified" annotation when reduction changed
// the reconstruction.
type DecimalConversion struct {
	Integer  string `json:"integer,omitempty"`
	Fraction string `json:"fraction,omitempty"`
}

// Converter exposes the conversion entry points. It is stateless apart from
// output preferences, so a single value is safe for concurrent use.
type Converter struct {
	cfg domain.Config
}

func NewConverter(cfg domain.Config) *Converter {
	return &Converter{cfg: cfg}
}

// Classify reports which grammar the input matches, fraction first.
func (c *Converter) Classify(input string) domain.InputKind {
	return domain.Classify(input)
}

// ConvertFraction parses an "a/b" input and derives every representation.
func (c *Converter) ConvertFraction(input string) (FractionConversion, error) {
	r, err := domain.ParseFraction(input)
	if err != nil {
		return FractionConversion{}, err
	}

	exp := domain.Expand(r)

	out := FractionConversion{
		Simplified: domain.Simplified(r),
		Decimal:    exp.Decimal,
		Period:     exp.Period,
		Scientific: domain.Scientific(r, c.cfg.Output.ScientificDigits),
	}

	if mixed := domain.Mixed(r); mixed != out.Simplified {
		out.Mixed = mixed
	}

	return out, nil
}

// ConvertDecimal parses a decimal input and reconstructs the exact fraction.
func (c *Converter) ConvertDecimal(input string) (DecimalConversion, error) {
	parsed, err := domain.ParseDecimal(input)
	if err != nil {
		return DecimalConversion{}, err
	}

	if parsed.Value.IsInt() {
		return DecimalConversion{Integer: parsed.Value.Num().String()}, nil
	}

	simplified := domain.Simplified(parsed.Value)
	raw := fmt.Sprintf("%s/%s", parsed.RawNum, parsed.RawDen)
	if raw != simplified {
		return DecimalConversion{Fraction: fmt.Sprintf("%s = %s", raw, simplified)}, nil
	}
	return DecimalConversion{Fraction: simplified}, nil
}

// Convert classifies the input and returns the labeled result list the
// presentation layer renders. Unrecognized input fails with
// KindInvalidFormat.
func (c *Converter) Convert(input string) ([]domain.Result, error) {
	switch c.Classify(input) {
	case domain.KindFraction:
		fc, err := c.ConvertFraction(input)
		if err != nil {
			return nil, err
		}

		decimalLabel := "Decimal"
		if fc.Period > 0 {
			decimalLabel = fmt.Sprintf("Decimal (period %d)", fc.Period)
		}

		results := []domain.Result{
			{Label: "Simplified", Value: fc.Simplified},
			{Label: decimalLabel, Value: fc.Decimal},
		}
		if fc.Mixed != "" {
			results = append(results, domain.Result{Label: "Mixed number", Value: fc.Mixed})
		}
		results = append(results, domain.Result{Label: "Scientific", Value: fc.Scientific})
		return results, nil

	case domain.KindDecimal:
		dc, err := c.ConvertDecimal(input)
		if err != nil {
			return nil, err
		}
		if dc.Integer != "" {
			return []domain.Result{{Label: "Integer", Value: dc.Integer}}, nil
		}
		return []domain.Result{{Label: "Fraction", Value: dc.Fraction}}, nil

	default:
		// Neither grammar matches. A fraction-shaped input with a zero
		// denominator still gets the distinct division-by-zero error.
		if _, err := domain.ParseFraction(input); domain.IsKind(err, domain.KindDivisionByZero) {
			return nil, err
		}
		return nil, &domain.OpError{
			Op:    "usecase.convert",
			Kind:  domain.KindInvalidFormat,
			Input: input,
			Err:   domain.ErrInvalidFormat,
		}
	}
}
