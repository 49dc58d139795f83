package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/consoleclean/cmd/consoleclean/opts"
	"github.com/walteh/consoleclean/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// OptsFactory builds the shared command dependencies after flag parsing.
type OptsFactory func(ctx context.Context) (*opts.RootOpts, error)

// NewCleanupCmd creates the cleanup command
func NewCleanupCmd(factory OptsFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Rewrite console.* statements into structured logger calls",
		Long: `Cleanup runs the full pipeline. It will:
1. Walk the tree and collect files containing console statements
2. Insert the logger import line where it is missing
3. Rewrite each console call into its structured equivalent
4. Print a summary and verify no target calls remain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ro, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			return RunCleanup(cmd.Context(), ro)
		},
	}

	return cmd
}

// RunCleanup executes the cleanup operation with the given dependencies.
func RunCleanup(ctx context.Context, ro *opts.RootOpts) error {
	logger := zerolog.Ctx(ctx)

	op, err := operation.NewCleanupOperation(operation.Options{
		Fs:       ro.Fs,
		Config:   ro.Config,
		Reporter: ro.Reporter,
	})
	if err != nil {
		return errors.Errorf("creating cleanup operation: %w", err)
	}

	runner := operation.NewRunner(logger)
	if err := runner.Run(ctx, op); err != nil {
		return errors.Errorf("running cleanup: %w", err)
	}

	return nil
}
