// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/consoleclean/pkg/classify"
	"github.com/walteh/consoleclean/pkg/imports"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete cleanup configuration. Every field has
// a working default: the tool runs with no config file at all.
type Config struct {
	// Root is the directory the cleanup walks (default ".")
	Root string `json:"root,omitempty" yaml:"root,omitempty"`

	// DryRun runs the full pipeline without writing any file
	DryRun bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`

	// ExcludedDirs replaces the built-in excluded directory names
	ExcludedDirs []string `json:"exclude_dirs,omitempty" yaml:"exclude_dirs,omitempty"`

	// ExcludeGlobs are extra doublestar patterns for files to skip
	ExcludeGlobs []string `json:"exclude_globs,omitempty" yaml:"exclude_globs,omitempty"`

	// Extensions replaces the built-in source extension set
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// LoggerModule is the in-tree path of the logger below src
	LoggerModule string `json:"logger_module,omitempty" yaml:"logger_module,omitempty"`

	// ImportNames are the functions named in the inserted import line
	ImportNames []string `json:"import_names,omitempty" yaml:"import_names,omitempty"`
}

// 📛 DefaultFiles are the config file names probed when none is given,
// in order.
var DefaultFiles = []string{
	".consoleclean.yaml",
	".consoleclean.yml",
	".consoleclean.hcl",
	".consoleclean.toml",
}

// 🏭 Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Root:         ".",
		LoggerModule: imports.DefaultLoggerModule,
	}
}

// 🎯 Load loads the configuration from a file. An empty path probes the
// DefaultFiles names under the current directory and falls back to
// Default() when none exists.
func Load(ctx context.Context, fsys afero.Fs, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		for _, name := range DefaultFiles {
			ok, err := afero.Exists(fsys, name)
			if err != nil {
				return nil, errors.Errorf("probing config file %s: %w", name, err)
			}
			if ok {
				path = name
				break
			}
		}
		if path == "" {
			logger.Debug().Msg("no config file found, using defaults")
			return Default(), nil
		}
	}

	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills unset fields from Default().
func (c *Config) applyDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.LoggerModule == "" {
		c.LoggerModule = imports.DefaultLoggerModule
	}
}

// ✅ Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return errors.Errorf("extension %q must start with a dot", ext)
		}
	}
	for _, pattern := range c.ExcludeGlobs {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid exclude glob %q", pattern)
		}
	}
	return nil
}

// 🎯 ClassifierOptions converts the config into classifier options.
func (c *Config) ClassifierOptions() classify.Options {
	return classify.Options{
		ExcludedDirs: c.ExcludedDirs,
		Extensions:   c.Extensions,
		ExcludeGlobs: c.ExcludeGlobs,
	}
}
