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

	"github.com/BurntSushi/toml"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&TOMLParser{})
}

// 🔧 TOMLParser implements the Parser interface for TOML files
type TOMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *TOMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".toml")
}

// 📝 Parse parses the config from TOML
func (p *TOMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	type tomlConfig struct {
		Root         string   `toml:"root"`
		DryRun       bool     `toml:"dry_run"`
		ExcludeDirs  []string `toml:"exclude_dirs"`
		ExcludeGlobs []string `toml:"exclude_globs"`
		Extensions   []string `toml:"extensions"`
		Logger       struct {
			Module  string   `toml:"module"`
			Imports []string `toml:"imports"`
		} `toml:"logger"`
	}

	var tomlCfg tomlConfig
	if err := toml.Unmarshal(data, &tomlCfg); err != nil {
		return nil, errors.Errorf("parsing TOML: %w", err)
	}

	return &Config{
		Root:         tomlCfg.Root,
		DryRun:       tomlCfg.DryRun,
		ExcludedDirs: tomlCfg.ExcludeDirs,
		ExcludeGlobs: tomlCfg.ExcludeGlobs,
		Extensions:   tomlCfg.Extensions,
		LoggerModule: tomlCfg.Logger.Module,
		ImportNames:  tomlCfg.Logger.Imports,
	}, nil
}
