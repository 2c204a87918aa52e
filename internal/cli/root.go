package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/afuentes/fracto/internal/infra/config"
	"github.com/afuentes/fracto/internal/infra/logger"
	"github.com/afuentes/fracto/internal/ui/tui"
	"github.com/afuentes/fracto/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "fracto",
		Short:        "fracto — fraction ↔ decimal converter",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cleanup, _ := logger.Setup(logger.Config{Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			cfg, err := config.LoadDefault()
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Converter: usecase.NewConverter(cfg),
				Logger:    logger.L(),
				Debug:     debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to the fracto log file")

	cmd.AddCommand(convertCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
