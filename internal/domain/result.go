package domain

// InputKind classifies a raw input string against the two grammars.
type InputKind string

const (
	KindFraction     InputKind = "fraction"
	KindDecimal      InputKind = "decimal"
	KindUnrecognized InputKind = "unrecognized"
)

// Classify matches input against the fraction grammar first, then the
// decimal grammars.
func Classify(input string) InputKind {
	switch {
	case IsFraction(input):
		return KindFraction
	case IsDecimal(input):
		return KindDecimal
	default:
		return KindUnrecognized
	}
}

// Result is one labeled representation of a conversion, ready for a list
// renderer ("Simplified" → "1/2").
type Result struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
