package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tensor-types/tensortypes/config"
	"github.com/tensor-types/tensortypes/internal/idx"
	"github.com/tensor-types/tensortypes/typed"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	ConfigPath string
	TypeName   string
}

// NewCheckCommand creates the check command. defaultConfig seeds the
// --config flag, typically from TENSORTYPES_CONFIG.
func NewCheckCommand(rootOpts *RootOptions, defaultConfig string) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <file.idx>",
		Short: "Validate an IDX tensor file against a configured wrapper type",
		Long: `Validate the shape and element kind of an IDX tensor file against
the expectations a dimensions config declares for a wrapper type.

Example:
  tensortypes check --config dims.yaml --type EncoderInput input.idx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", defaultConfig, "path to the dimensions config (YAML)")
	cmd.Flags().StringVar(&opts.TypeName, "type", "", "wrapper type name to validate against (required)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions, path string) error {
	if opts.ConfigPath == "" {
		return fmt.Errorf("no dimensions config: pass --config or set TENSORTYPES_CONFIG")
	}

	slog.Debug("loading config", "path", opts.ConfigPath)
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	dims, ok := cfg.Dims(opts.TypeName)
	if !ok {
		return fmt.Errorf("type %s is not declared in %s", opts.TypeName, opts.ConfigPath)
	}
	kind, _ := cfg.Kind(opts.TypeName)

	slog.Debug("reading tensor", "path", path)
	raw, err := idx.ReadFile(path)
	if err != nil {
		return err
	}

	if err := typed.Validate(opts.TypeName, raw, dims, kind); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %s matches %v %s\n", opts.TypeName, dims, kind)
	return nil
}
