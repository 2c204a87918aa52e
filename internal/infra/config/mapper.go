package config

import (
	"fmt"
	"strings"

	"github.com/afuentes/fracto/internal/domain"
)

// Mantissa digits beyond float64 precision are meaningless noise.
const maxScientificDigits = 17

func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if yc.Output.ScientificDigits != nil {
		d := *yc.Output.ScientificDigits
		if d < 1 || d > maxScientificDigits {
			return domain.Config{}, invalidField(path, "output.scientific_digits",
				fmt.Sprintf("must be between 1 and %d, got %d", maxScientificDigits, d))
		}
		cfg.Output.ScientificDigits = d
	}

	if f := strings.TrimSpace(yc.Output.Format); f != "" {
		switch f {
		case domain.FormatPretty, domain.FormatJSON:
			cfg.Output.Format = f
		default:
			return domain.Config{}, invalidField(path, "output.format",
				fmt.Sprintf("unsupported format %q (expected pretty|json)", f))
		}
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
