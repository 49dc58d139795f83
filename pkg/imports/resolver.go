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

package imports

import (
	"path/filepath"
	"strings"
)

// 📦 DefaultLoggerModule is the in-tree path of the shared logger module,
// relative to the src directory.
const DefaultLoggerModule = "utils/logger"

// 🧭 Resolver computes the relative import path from a source file to the
// shared logger module.
//
// This is a heuristic keyed on anchor directory names ("app", "components",
// "src"), not a general relative-path computation. It trusts the project
// layout those anchors imply, and when a path contains the same anchor name
// more than once the first occurrence wins. Best-effort only.
type Resolver struct {
	module string
}

// 🏭 NewResolver creates a Resolver for the given logger module path.
// An empty module falls back to DefaultLoggerModule.
func NewResolver(module string) *Resolver {
	if module == "" {
		module = DefaultLoggerModule
	}
	return &Resolver{module: module}
}

// 🧭 Resolve returns the import path for a file at the given location.
func (r *Resolver) Resolve(path string) string {
	parts := strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")

	switch {
	case containsSegment(parts, "app"):
		return "../src/" + r.module
	case containsSegment(parts, "components") && !containsSegment(parts, "src"):
		return "../src/" + r.module
	case containsSegment(parts, "src"):
		// Count segments below src, minus one for the file itself.
		srcIndex := indexOfSegment(parts, "src")
		depth := len(parts) - srcIndex - 1
		return strings.Repeat("../", depth) + r.module
	default:
		return "./src/" + r.module
	}
}

func containsSegment(parts []string, name string) bool {
	return indexOfSegment(parts, name) >= 0
}

func indexOfSegment(parts []string, name string) int {
	for i, p := range parts {
		if p == name {
			return i
		}
	}
	return -1
}
