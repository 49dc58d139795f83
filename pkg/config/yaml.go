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
	"bytes"
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the config from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	type yamlConfig struct {
		Root         string   `yaml:"root,omitempty"`
		DryRun       bool     `yaml:"dry_run,omitempty"`
		ExcludeDirs  []string `yaml:"exclude_dirs,omitempty"`
		ExcludeGlobs []string `yaml:"exclude_globs,omitempty"`
		Extensions   []string `yaml:"extensions,omitempty"`
		Logger       *struct {
			Module  string   `yaml:"module,omitempty"`
			Imports []string `yaml:"imports,omitempty"`
		} `yaml:"logger,omitempty"`
	}

	var yamlCfg yamlConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&yamlCfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	cfg := &Config{
		Root:         yamlCfg.Root,
		DryRun:       yamlCfg.DryRun,
		ExcludedDirs: yamlCfg.ExcludeDirs,
		ExcludeGlobs: yamlCfg.ExcludeGlobs,
		Extensions:   yamlCfg.Extensions,
	}
	if yamlCfg.Logger != nil {
		cfg.LoggerModule = yamlCfg.Logger.Module
		cfg.ImportNames = yamlCfg.Logger.Imports
	}

	return cfg, nil
}
