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

package rewrite

import (
	"fmt"
	"regexp"
)

// 🏷️ TargetPrefix is the cheap substring test that decides whether a file
// is worth rewriting at all.
const TargetPrefix = "console."

// 🔄 Rule pairs a compiled match pattern with its replacement template.
// Rules are applied in a fixed order.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// 🗺️ severity maps one console method to its structured-log function and
// severity label.
type severity struct {
	method string // console method name
	fn     string // structured-log function
	label  string // severity label argument
}

// Ordered by priority. console.log maps to Debug, same as the logger's
// catch-all.
var severities = []severity{
	{method: "error", fn: "logError", label: "Error"},
	{method: "warn", fn: "logWarn", label: "Warning"},
	{method: "info", fn: "logInfo", label: "Info"},
	{method: "debug", fn: "logDebug", label: "Debug"},
	{method: "log", fn: "logDebug", label: "Debug"},
}

// 📐 DefaultRules builds the rule list: for each severity the two-argument
// form comes first, so the greedier one-argument pattern cannot truncate a
// call that carries extra data.
func DefaultRules() []Rule {
	rules := make([]Rule, 0, len(severities)*2)
	for _, s := range severities {
		rules = append(rules,
			Rule{
				Pattern:     regexp.MustCompile(fmt.Sprintf(`console\.%s\(\s*([^,)]+),\s*([^)]+)\)`, s.method)),
				Replacement: fmt.Sprintf(`%s(${1}, %q, ${2})`, s.fn, s.label),
			},
			Rule{
				Pattern:     regexp.MustCompile(fmt.Sprintf(`console\.%s\(\s*([^)]+)\)`, s.method)),
				Replacement: fmt.Sprintf(`%s(${1}, %q)`, s.fn, s.label),
			},
		)
	}
	return rules
}
