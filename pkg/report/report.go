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

package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	ruleWidth = 60 // width of the horizontal rule around the summary
	// maxRemainingShown caps the list of files still containing target
	// calls; the rest collapses into an overflow count.
	maxRemainingShown = 10
)

// 📊 Summary aggregates the counters of one cleanup run.
type Summary struct {
	FilesProcessed     int // files actually rewritten
	StatementsReplaced int // individual statements converted
	ImportsAdded       int // logger import lines inserted
}

// 🎯 Reporter renders user-facing progress and the end-of-run report.
// Machine-readable detail goes to zerolog, human output to the console
// writer, the same split the rest of the tool uses.
type Reporter struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a Reporter writing human output to console.
func New(console io.Writer, zlog zerolog.Logger) *Reporter {
	return &Reporter{
		zlog:    zlog,
		console: console,
	}
}

// 📝 Header prints the run banner.
func (r *Reporter) Header(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	title := color.New(color.Bold, color.FgCyan).Sprint("consoleclean")
	fmt.Fprintf(r.console, "\n%s %s\n", title, color.New(color.Faint).Sprint("• "+msg))
	fmt.Fprintln(r.console, strings.Repeat("=", ruleWidth))
	r.zlog.Info().Msg(msg)
}

// 📝 Info prints an informational progress line.
func (r *Reporter) Info(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.console, "📍 %s\n", msg)
	r.zlog.Info().Msg(msg)
}

// 📝 Infof prints a formatted informational progress line.
func (r *Reporter) Infof(format string, args ...interface{}) {
	r.Info(fmt.Sprintf(format, args...))
}

// ✅ Success prints a success line.
func (r *Reporter) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	r.zlog.Info().Msg(msg)
}

// 📝 FileProcessed prints the per-file progress line.
func (r *Reporter) FileProcessed(path string, replacements int, importAdded bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := fmt.Sprintf("Processed: %s (%d replacements)", path, replacements)
	pterm.Success.WithWriter(r.console).WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)

	r.zlog.Info().
		Str("file", path).
		Int("replacements", replacements).
		Bool("import_added", importAdded).
		Msg("file processed")
}

// 📝 FileSkipped prints the dry-run variant of the progress line.
func (r *Reporter) FileSkipped(path string, replacements int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := fmt.Sprintf("Would process: %s (%d replacements)", path, replacements)
	pterm.Info.WithWriter(r.console).WithPrefix(pterm.Prefix{Text: "⏭️"}).Println(msg)

	r.zlog.Info().
		Str("file", path).
		Int("replacements", replacements).
		Msg("file skipped (dry run)")
}

// ❌ FileError prints a per-file processing error. Errors here are
// non-fatal to the run.
func (r *Reporter) FileError(path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := fmt.Sprintf("Error processing %s: %v", path, err)
	pterm.Error.WithWriter(r.console).WithPrefix(pterm.Prefix{Text: "❌"}).Println(msg)

	r.zlog.Error().Str("file", path).Err(err).Msg("file processing failed")
}

// 📊 PrintSummary renders the end-of-run report: counters, the files still
// containing target calls (capped at maxRemainingShown), and the
// next-steps footer.
func (r *Reporter) PrintSummary(s Summary, remaining []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintln(r.console)
	fmt.Fprintln(r.console, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(r.console, "📊 %s\n", color.New(color.Bold).Sprint("CLEANUP SUMMARY"))
	fmt.Fprintf(r.console, "Files processed: %d\n", s.FilesProcessed)
	fmt.Fprintf(r.console, "Console statements replaced: %d\n", s.StatementsReplaced)
	fmt.Fprintf(r.console, "Logger imports added: %d\n", s.ImportsAdded)
	fmt.Fprintf(r.console, "Remaining files with console statements: %d\n", len(remaining))

	if len(remaining) > 0 {
		fmt.Fprintf(r.console, "\n⚠️  %s\n", color.New(color.FgYellow).Sprint("Files still containing console statements:"))
		for i, path := range remaining {
			if i == maxRemainingShown {
				fmt.Fprintf(r.console, "   ... and %d more\n", len(remaining)-maxRemainingShown)
				break
			}
			fmt.Fprintf(r.console, "   - %s\n", path)
		}
	} else {
		fmt.Fprintf(r.console, "🎉 %s\n", color.New(color.FgGreen).Sprint("All console statements successfully replaced!"))
	}

	fmt.Fprintln(r.console, "\n📝 Next Steps:")
	fmt.Fprintln(r.console, "1. Review changes to ensure they make contextual sense")
	fmt.Fprintln(r.console, "2. Test the application to verify logging works correctly")
	fmt.Fprintln(r.console, "3. Run the TypeScript compiler to catch any import issues")

	r.zlog.Info().
		Int("files_processed", s.FilesProcessed).
		Int("statements_replaced", s.StatementsReplaced).
		Int("imports_added", s.ImportsAdded).
		Int("remaining", len(remaining)).
		Msg("cleanup summary")
}
