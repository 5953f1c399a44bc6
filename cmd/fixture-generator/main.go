// Package main provides the CLI of fixture-generator.
//
// The factory package builds fixtures at test time; the CLI checks the
// metadata feeding it ahead of time:
//   - check loads Go packages and validates every fixture struct tag
//   - overrides validates YAML configuration files, optionally against
//     the loaded packages
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "fixture-generator",
		Short: "Check fixture metadata of Go packages",
		Long: `fixture-generator validates the metadata the factory package reads when
it manufactures test fixtures: fixture struct tags and YAML override files.

Both commands exit with a non-zero status when an error is found.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.newCheckCmd(),
		a.newOverridesCmd(),
	)

	return root
}
