package usecase

import (
	"testing"

	"github.com/afuentes/fracto/internal/domain"
)

func newTestConverter() *Converter {
	return NewConverter(domain.DefaultConfig())
}

func TestConvertFraction(t *testing.T) {
	cases := []struct {
		input string
		want  FractionConversion
	}{
		{
			input: "2/4",
			want: FractionConversion{
				Simplified: "1/2",
				Decimal:    "0.5",
				Period:     0,
				Scientific: "5.0000000000e-1",
			},
		},
		{
			input: "4/6",
			want: FractionConversion{
				Simplified: "2/3",
				Decimal:    "0.(6)",
				Period:     1,
				Scientific: "6.6666666667e-1",
			},
		},
		{
			input: "10/4",
			want: FractionConversion{
				Simplified: "5/2",
				Decimal:    "2.5",
				Period:     0,
				Scientific: "2.5000000000e+0",
				Mixed:      "2 + 1/2",
			},
		},
		{
			input: "-10/4",
			want: FractionConversion{
				Simplified: "-5/2",
				Decimal:    "-2.5",
				Period:     0,
				Scientific: "-2.5000000000e+0",
				Mixed:      "-2 + 1/2",
			},
		},
	}

	conv := newTestConverter()
	for _, c := range cases {
		got, err := conv.ConvertFraction(c.input)
		if err != nil {
			t.Fatalf("ConvertFraction(%q): unexpected error: %v", c.input, err)
		}
		if got != c.want {
			t.Errorf("ConvertFraction(%q) = %+v, want %+v", c.input, got, c.want)
		}
	}
}

func TestConvertFractionOmitsEqualMixed(t *testing.T) {
	conv := newTestConverter()
	got, err := conv.ConvertFraction("1/2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Mixed != "" {
		t.Fatalf("Mixed should be omitted for a proper fraction, got %q", got.Mixed)
	}
}

func TestConvertDecimal(t *testing.T) {
	cases := []struct {
		input string
		want  DecimalConversion
	}{
		{"0.(3)", DecimalConversion{Fraction: "1/3"}},
		{"1.5", DecimalConversion{Fraction: "15/10 = 3/2"}},
		{"0.9999...", DecimalConversion{Integer: "1"}},
		{"0.(9)", DecimalConversion{Integer: "1"}},
		{"2.0", DecimalConversion{Integer: "2"}},
		{"-2.5", DecimalConversion{Fraction: "-25/10 = -5/2"}},
	}

	conv := newTestConverter()
	for _, c := range cases {
		got, err := conv.ConvertDecimal(c.input)
		if err != nil {
			t.Fatalf("ConvertDecimal(%q): unexpected error: %v", c.input, err)
		}
		if got != c.want {
			t.Errorf("ConvertDecimal(%q) = %+v, want %+v", c.input, got, c.want)
		}
	}
}

func TestConvertLabels(t *testing.T) {
	conv := newTestConverter()

	results, err := conv.Convert("4/6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Result{
		{Label: "Simplified", Value: "2/3"},
		{Label: "Decimal (period 1)", Value: "0.(6)"},
		{Label: "Scientific", Value: "6.6666666667e-1"},
	}
	if len(results) != len(want) {
		t.Fatalf("Convert(4/6) = %+v, want %+v", results, want)
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("Convert(4/6)[%d] = %+v, want %+v", i, results[i], want[i])
		}
	}
}

func TestConvertMixedIncluded(t *testing.T) {
	conv := newTestConverter()

	results, err := conv.Convert("10/4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, r := range results {
		if r.Label == "Mixed number" && r.Value == "2 + 1/2" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Convert(10/4) missing mixed number: %+v", results)
	}
}

func TestConvertDecimalInput(t *testing.T) {
	conv := newTestConverter()

	results, err := conv.Convert("0.9999...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Label != "Integer" || results[0].Value != "1" {
		t.Fatalf("Convert(0.9999...) = %+v", results)
	}
}

func TestConvertUnrecognized(t *testing.T) {
	conv := newTestConverter()

	_, err := conv.Convert("not a number")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidFormat) {
		t.Fatalf("expected KindInvalidFormat, got %v", err)
	}
}

func TestConvertZeroDenominator(t *testing.T) {
	conv := newTestConverter()

	for _, input := range []string{"3/0", "5/-0"} {
		_, err := conv.Convert(input)
		if err == nil {
			t.Fatalf("Convert(%q): expected error", input)
		}
		if !domain.IsKind(err, domain.KindDivisionByZero) {
			t.Fatalf("Convert(%q): expected KindDivisionByZero, got %v", input, err)
		}
	}
}

func TestClassifyFractionFirst(t *testing.T) {
	conv := newTestConverter()

	cases := []struct {
		input string
		want  domain.InputKind
	}{
		{"2/4", domain.KindFraction},
		{"0.1(6)", domain.KindDecimal},
		{"x", domain.KindUnrecognized},
	}
	for _, c := range cases {
		if got := conv.Classify(c.input); got != c.want {
			t.Errorf("Classify(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestConverterRespectsScientificDigits(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Output.ScientificDigits = 4

	conv := NewConverter(cfg)
	got, err := conv.ConvertFraction("1/2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Scientific != "5.0000e-1" {
		t.Fatalf("Scientific = %q, want 4 mantissa digits", got.Scientific)
	}
}
