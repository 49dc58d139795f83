// Package operation implements the cleanup pipeline: walk, detect,
// rewrite, report.
package operation

import (
	"context"

	"github.com/spf13/afero"
	"github.com/walteh/consoleclean/pkg/config"
	"github.com/walteh/consoleclean/pkg/report"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single runnable unit of work.
type Operation interface {
	// Name returns the operation name for logging
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies shared by all operations.
type Options struct {
	// Fs is the filesystem all reads and writes go through
	Fs afero.Fs
	// Config is the cleanup configuration
	Config *config.Config
	// Reporter renders user-facing progress and the final summary
	Reporter *report.Reporter
}

// ✅ validate checks that all required dependencies are present.
func (o Options) validate() error {
	if o.Fs == nil {
		return errors.New("filesystem is required")
	}
	if o.Config == nil {
		return errors.New("config is required")
	}
	if o.Reporter == nil {
		return errors.New("reporter is required")
	}
	return nil
}
