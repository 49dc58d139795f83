package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/consoleclean/cmd/consoleclean/opts"
	"github.com/walteh/consoleclean/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewScanCmd creates the scan command
func NewScanCmd(factory OptsFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List files containing console statements without modifying them",
		RunE: func(cmd *cobra.Command, args []string) error {
			ro, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			return RunScan(cmd.Context(), ro)
		},
	}

	return cmd
}

// RunScan executes the detection walk only.
func RunScan(ctx context.Context, ro *opts.RootOpts) error {
	logger := zerolog.Ctx(ctx)

	op, err := operation.NewScanOperation(operation.Options{
		Fs:       ro.Fs,
		Config:   ro.Config,
		Reporter: ro.Reporter,
	})
	if err != nil {
		return errors.Errorf("creating scan operation: %w", err)
	}

	runner := operation.NewRunner(logger)
	if err := runner.Run(ctx, op); err != nil {
		return errors.Errorf("running scan: %w", err)
	}

	return nil
}
