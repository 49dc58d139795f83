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

import "strings"

// 📊 Result contains the outcome of rewriting one file's content.
type Result struct {
	// Content is the text after rewriting
	Content string

	// Replacements is the number of statements rewritten
	Replacements int

	// WasModified indicates whether any rule fired
	WasModified bool
}

// 🔄 Rewriter converts console statements into structured-log calls.
//
// Matching is regex-based and line-oriented, not an expression parse:
// multi-line calls, nested parentheses, and commas inside nested calls or
// string literals are not guaranteed to rewrite correctly.
type Rewriter struct {
	rules []Rule
}

// 🏭 New creates a Rewriter. Empty rules fall back to DefaultRules.
func New(rules []Rule) *Rewriter {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Rewriter{rules: rules}
}

// 🔍 HasTargets reports whether the content contains anything worth
// rewriting. Cheap substring check used by the detection scan.
func (r *Rewriter) HasTargets(content string) bool {
	return strings.Contains(content, TargetPrefix)
}

// 🔄 Rewrite applies the rule list in order and returns the mutated text
// with a replacement count.
func (r *Rewriter) Rewrite(content string) Result {
	result := Result{Content: content}

	for _, rule := range r.rules {
		matches := rule.Pattern.FindAllStringIndex(result.Content, -1)
		if len(matches) == 0 {
			continue
		}
		result.Content = rule.Pattern.ReplaceAllString(result.Content, rule.Replacement)
		result.Replacements += len(matches)
		result.WasModified = true
	}

	return result
}
