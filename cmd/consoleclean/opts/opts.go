package opts

import (
	"github.com/spf13/afero"
	"github.com/walteh/consoleclean/pkg/config"
	"github.com/walteh/consoleclean/pkg/report"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Fs       afero.Fs
	Config   *config.Config
	Reporter *report.Reporter
}
