// Package cli implements the tensortypes command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tensor-types/tensortypes/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the tensortypes CLI.
// Defaults for the config path and verbosity come from the TENSORTYPES_*
// environment variables.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	envDefaults, envErr := config.FromEnv()
	if envErr == nil {
		opts.Verbose = envDefaults.Verbose
	}

	cmd := &cobra.Command{
		Use:           "tensortypes",
		Short:         "Validate tensors against declared shapes and kinds",
		Long:          "tensortypes inspects IDX tensor files and checks them against the expected shapes and element kinds declared in a dimensions config.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if envErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring TENSORTYPES environment: %v\n", envErr)
			}
			logLevel := slog.LevelInfo
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			})
			slog.SetDefault(slog.New(handler))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "verbose output")

	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts, envDefaults.ConfigPath))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
