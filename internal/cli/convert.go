package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/afuentes/fracto/internal/domain"
	"github.com/afuentes/fracto/internal/infra/config"
	"github.com/afuentes/fracto/internal/usecase"
)

func convertCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a fraction (\"2/4\") or decimal (\"0.1(6)\", \"0.333...\") one-shot",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.LoadDefault()
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Output.Format
			}

			conv := usecase.NewConverter(cfg)

			input := args[0]
			results, err := conv.Convert(input)
			if err != nil {
				return err
			}

			return printResults(os.Stdout, input, conv.Classify(input), results, format)
		},
	}

	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from config)")
	return c
}

func printResults(w io.Writer, input string, kind domain.InputKind, results []domain.Result, format string) error {
	switch format {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"input":   input,
			"kind":    kind,
			"results": results,
		}
		return enc.Encode(payload)
	case domain.FormatPretty, "":
		printPrettyResults(w, input, kind, results)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyResults(w io.Writer, input string, kind domain.InputKind, results []domain.Result) {
	fmt.Fprintf(w, "Input: %s (%s)\n\n", input, kind)

	width := 0
	for _, r := range results {
		if len(r.Label) > width {
			width = len(r.Label)
		}
	}
	for _, r := range results {
		fmt.Fprintf(w, "  %-*s  %s\n", width, r.Label, r.Value)
	}
}
