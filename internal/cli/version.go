package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tensortypes %s\n", version)
		},
	}
}
