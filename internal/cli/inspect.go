package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tensor-types/tensortypes/internal/idx"
	"github.com/tensor-types/tensortypes/param"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.idx>",
		Short: "Print the shape and element kind of an IDX tensor file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("reading tensor", "path", args[0])
			raw, err := idx.ReadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shape: %v\n", raw.Shape())
			fmt.Fprintf(out, "kind: %s\n", raw.DType())
			fmt.Fprintf(out, "elements: %s\n", param.Format(param.Dim(raw.NumElements())))
			return nil
		},
	}
}
