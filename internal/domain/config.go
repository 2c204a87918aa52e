package domain

// DefaultScientificDigits is the mantissa precision used when no config
// overrides it.
const DefaultScientificDigits = 10

// Output format names accepted by the CLI.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Config represents the minimal fracto configuration loaded from config.yaml.
type Config struct {
	Output OutputConfig
}

type OutputConfig struct {
	// ScientificDigits is the number of mantissa digits in scientific
	// notation.
	ScientificDigits int

	// Format is the default CLI output format: pretty or json.
	Format string
}

// DefaultConfig provides sane defaults if config.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			ScientificDigits: DefaultScientificDigits,
			Format:           FormatPretty,
		},
	}
}
