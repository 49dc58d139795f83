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
	"fmt"
	"strings"
)

// 📦 DefaultImportNames are the logger functions pulled in by the inserted
// import line.
var DefaultImportNames = []string{
	"logError",
	"logWarn",
	"logInfo",
	"logDebug",
	"logUserAction",
}

// ✏️ Inserter adds the logger import line to a file's text when it is
// missing.
type Inserter struct {
	resolver *Resolver
	names    []string
}

// 🏭 NewInserter creates an Inserter using the given resolver.
// Empty names fall back to DefaultImportNames.
func NewInserter(resolver *Resolver, names []string) *Inserter {
	if len(names) == 0 {
		names = DefaultImportNames
	}
	return &Inserter{resolver: resolver, names: names}
}

// 🔍 AlreadyImported reports whether the content appears to import the
// logger module.
//
// This is a textual heuristic, not an import-statement parse: it only
// checks that the text contains "from" and the logger module path. A
// commented-out or string-literal occurrence causes a false skip. Accepted
// as best-effort.
func (n *Inserter) AlreadyImported(content string) bool {
	return strings.Contains(content, "from") && strings.Contains(content, n.resolver.module)
}

// ✏️ Insert returns the content with the logger import line added, plus a
// flag indicating whether an insertion happened. The line goes directly
// after the last top-level import, or at the top of the file when no
// import exists. Content that already imports the logger is returned
// unchanged.
func (n *Inserter) Insert(content string, path string) (string, bool) {
	if n.AlreadyImported(content) {
		return content, false
	}

	importLine := fmt.Sprintf("import { %s } from %q;", strings.Join(n.names, ", "), n.resolver.Resolve(path))

	lines := strings.Split(content, "\n")
	lastImport := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "import ") {
			lastImport = i
		}
	}

	if lastImport == -1 {
		lines = append([]string{importLine}, lines...)
	} else {
		lines = append(lines[:lastImport+1], append([]string{importLine}, lines[lastImport+1:]...)...)
	}

	return strings.Join(lines, "\n"), true
}
