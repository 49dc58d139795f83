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

package classify

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// 🚫 DefaultExcludedDirs are directory names that are never descended into.
// These cover dependency caches, build outputs and framework caches.
var DefaultExcludedDirs = []string{
	"node_modules",
	".expo",
	"dist",
	"build",
	".next",
	"__pycache__",
}

// 📄 DefaultExtensions are the source file extensions considered for cleanup.
var DefaultExtensions = []string{".ts", ".tsx"}

// 🎯 Classifier decides which paths the cleanup run should touch.
// It is a pure predicate: no filesystem access, no side effects.
type Classifier struct {
	excludedDirs []string
	extensions   []string
	excludeGlobs []string
}

// 🔧 Options configures a Classifier. Zero values fall back to defaults.
type Options struct {
	// ExcludedDirs replaces the default excluded directory names
	ExcludedDirs []string
	// Extensions replaces the default extension set
	Extensions []string
	// ExcludeGlobs are additional doublestar patterns matched against the
	// slash-separated path (e.g. "**/generated/**")
	ExcludeGlobs []string
}

// 🏭 New creates a Classifier
func New(opts Options) *Classifier {
	c := &Classifier{
		excludedDirs: opts.ExcludedDirs,
		extensions:   opts.Extensions,
		excludeGlobs: opts.ExcludeGlobs,
	}
	if len(c.excludedDirs) == 0 {
		c.excludedDirs = DefaultExcludedDirs
	}
	if len(c.extensions) == 0 {
		c.extensions = DefaultExtensions
	}
	return c
}

// 🚫 IsExcludedDir reports whether a directory name is on the exclusion
// list. The walker uses this to prune before descending.
func (c *Classifier) IsExcludedDir(name string) bool {
	for _, d := range c.excludedDirs {
		if name == d {
			return true
		}
	}
	return false
}

// 🔍 ShouldProcess reports whether a file path is a cleanup candidate.
// A path is rejected when any excluded directory name appears anywhere in
// it (substring semantics, matching the pruning list), when its extension
// is not recognized, or when it matches an exclusion glob.
func (c *Classifier) ShouldProcess(path string) bool {
	slashed := filepath.ToSlash(path)

	for _, d := range c.excludedDirs {
		if strings.Contains(slashed, d) {
			return false
		}
	}

	if !c.HasSourceExtension(path) {
		return false
	}

	for _, pattern := range c.excludeGlobs {
		matched, err := doublestar.Match(pattern, slashed)
		if err != nil {
			// Invalid patterns are reported at config load time; here
			// they simply never match.
			continue
		}
		if matched {
			return false
		}
	}

	return true
}

// 📄 HasSourceExtension reports whether the path carries one of the
// recognized source extensions.
func (c *Classifier) HasSourceExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
