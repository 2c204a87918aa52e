package tui

import (
	"errors"

	"github.com/afuentes/fracto/internal/domain"
)

// userMessage maps core errors to the short hints shown under the input.
// The TUI policy is "no results plus a hint" rather than a hard error.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindInvalidFormat:
			return "Not a fraction or a decimal"
		case domain.KindDivisionByZero:
			return "Denominator cannot be zero"
		case domain.KindInvalidConfig:
			return "Invalid config (see logs)"
		default:
			return "Unexpected error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}
