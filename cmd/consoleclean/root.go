package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/consoleclean/cmd/consoleclean/commands"
	"github.com/walteh/consoleclean/cmd/consoleclean/opts"
	"github.com/walteh/consoleclean/pkg/config"
	"github.com/walteh/consoleclean/pkg/report"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	rootDir    string
	dryRun     bool
	debug      bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	fs := afero.NewOsFs()

	cfg, err := config.Load(ctx, fs, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// Flags override the config file
	if rootDir != "" {
		cfg.Root = rootDir
	}
	if dryRun {
		cfg.DryRun = true
	}

	return &opts.RootOpts{
		Fs:       fs,
		Config:   cfg,
		Reporter: report.New(os.Stdout, *zerolog.Ctx(ctx)),
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: probe .consoleclean.{yaml,yml,hcl,toml})")
	cmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "directory to scan (default: current directory)")
	cmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "report changes without writing files")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

// newRootCmd builds the root command with its subcommands
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consoleclean",
		Short: "Replace console.* statements with structured logging calls",
		Long: `consoleclean scans a source tree for console.* statements, rewrites
them into structured logger calls (logError, logWarn, logInfo, logDebug),
and inserts the logger import line when it is missing.

Without a subcommand it runs the full cleanup on the current directory.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default action is the full cleanup.
			ro, err := buildRootOpts(cmd.Context())
			if err != nil {
				return err
			}
			return commands.RunCleanup(cmd.Context(), ro)
		},
	}

	addRootFlags(cmd)
	cmd.AddCommand(commands.NewCleanupCmd(buildRootOpts))
	cmd.AddCommand(commands.NewScanCmd(buildRootOpts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// buildRootOpts defers dependency construction until a command actually
// runs, after flag parsing.
func buildRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	setupLogging()
	return newRootOpts(ctx)
}
