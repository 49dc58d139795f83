package report

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestReporter() (*Reporter, *bytes.Buffer) {
	color.NoColor = true
	pterm.DisableColor()

	var buf bytes.Buffer
	return New(&buf, zerolog.Nop()), &buf
}

func TestReporter_FileProcessed(t *testing.T) {
	r, buf := newTestReporter()

	r.FileProcessed("src/screens/Login.ts", 3, true)

	assert.Contains(t, buf.String(), "Processed: src/screens/Login.ts (3 replacements)")
}

func TestReporter_FileError(t *testing.T) {
	r, buf := newTestReporter()

	r.FileError("src/bad.ts", assert.AnError)

	assert.Contains(t, buf.String(), "Error processing src/bad.ts")
	assert.Contains(t, buf.String(), assert.AnError.Error())
}

func TestReporter_PrintSummary(t *testing.T) {
	r, buf := newTestReporter()

	r.PrintSummary(Summary{
		FilesProcessed:     4,
		StatementsReplaced: 17,
		ImportsAdded:       3,
	}, nil)

	out := buf.String()
	assert.Contains(t, out, "Files processed: 4")
	assert.Contains(t, out, "Console statements replaced: 17")
	assert.Contains(t, out, "Logger imports added: 3")
	assert.Contains(t, out, "Remaining files with console statements: 0")
	assert.Contains(t, out, "All console statements successfully replaced!")
	assert.Contains(t, out, "Next Steps:")
}

func TestReporter_PrintSummary_TruncatesRemainingList(t *testing.T) {
	r, buf := newTestReporter()

	var remaining []string
	for i := 0; i < 13; i++ {
		remaining = append(remaining, fmt.Sprintf("src/file%02d.ts", i))
	}

	r.PrintSummary(Summary{}, remaining)

	out := buf.String()
	assert.Contains(t, out, "Remaining files with console statements: 13")
	assert.Contains(t, out, "src/file00.ts")
	assert.Contains(t, out, "src/file09.ts")
	assert.NotContains(t, out, "src/file10.ts")
	assert.Contains(t, out, "... and 3 more")
}

func TestReporter_Header(t *testing.T) {
	r, buf := newTestReporter()

	r.Header("Starting console log cleanup")

	assert.Contains(t, buf.String(), "consoleclean")
	assert.Contains(t, buf.String(), "Starting console log cleanup")
}
