package operation

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/consoleclean/pkg/config"
	"github.com/walteh/consoleclean/pkg/report"
)

func newTestOptions(t *testing.T, fs afero.Fs, cfg *config.Config) (Options, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	pterm.DisableColor()

	var buf bytes.Buffer
	return Options{
		Fs:       fs,
		Config:   cfg,
		Reporter: report.New(&buf, zerolog.Nop()),
	}, &buf
}

func testConfig(root string) *config.Config {
	cfg := config.Default()
	cfg.Root = root
	return cfg
}

func TestCleanupOperation_EndToEnd(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "proj/src/screens/Login.ts", []byte(`import React from "react";

export function login() {
  console.log("Login failed")
  console.error(err, extraInfo)
}
`), 0644))
	require.NoError(t, afero.WriteFile(fs, "proj/src/clean.ts", []byte("export const x = 1;\n"), 0644))

	opts, out := newTestOptions(t, fs, testConfig("proj"))
	op, err := NewCleanupOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	got, err := afero.ReadFile(fs, "proj/src/screens/Login.ts")
	require.NoError(t, err)
	assert.Equal(t, `import React from "react";
import { logError, logWarn, logInfo, logDebug, logUserAction } from "../../utils/logger";

export function login() {
  logDebug("Login failed", "Debug")
  logError(err, "Error", extraInfo)
}
`, string(got))

	// A file without target calls stays byte-for-byte unchanged.
	clean, err := afero.ReadFile(fs, "proj/src/clean.ts")
	require.NoError(t, err)
	assert.Equal(t, "export const x = 1;\n", string(clean))

	s := op.Summary()
	assert.Equal(t, 1, s.FilesProcessed)
	assert.Equal(t, 2, s.StatementsReplaced)
	assert.Equal(t, 1, s.ImportsAdded)

	assert.Contains(t, out.String(), "Found 1 files with console statements")
	assert.Contains(t, out.String(), "All console statements successfully replaced!")
}

func TestCleanupOperation_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "proj/src/a.ts", []byte(`console.warn("slow", ctx)`), 0644))

	opts, _ := newTestOptions(t, fs, testConfig("proj"))
	op, err := NewCleanupOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	first, err := afero.ReadFile(fs, "proj/src/a.ts")
	require.NoError(t, err)

	opts2, _ := newTestOptions(t, fs, testConfig("proj"))
	op2, err := NewCleanupOperation(opts2)
	require.NoError(t, err)
	require.NoError(t, op2.Execute(context.Background()))

	second, err := afero.ReadFile(fs, "proj/src/a.ts")
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Equal(t, report.Summary{}, op2.Summary())
}

func TestCleanupOperation_NoDuplicateImport(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "proj/src/a.ts", []byte(`import { logDebug } from "../utils/logger";
console.log("one")
console.log("two")
`), 0644))

	opts, _ := newTestOptions(t, fs, testConfig("proj"))
	op, err := NewCleanupOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	got, err := afero.ReadFile(fs, "proj/src/a.ts")
	require.NoError(t, err)

	assert.Equal(t, 1, bytes.Count(got, []byte("utils/logger")))
	assert.Equal(t, 0, op.Summary().ImportsAdded)
	assert.Equal(t, 2, op.Summary().StatementsReplaced)
}

func TestCleanupOperation_DryRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	original := `console.log("x")`
	require.NoError(t, afero.WriteFile(fs, "proj/src/a.ts", []byte(original), 0644))

	cfg := testConfig("proj")
	cfg.DryRun = true
	opts, out := newTestOptions(t, fs, cfg)
	op, err := NewCleanupOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	got, err := afero.ReadFile(fs, "proj/src/a.ts")
	require.NoError(t, err)
	assert.Equal(t, original, string(got))

	// Counters still reflect what a real run would have done.
	assert.Equal(t, 1, op.Summary().FilesProcessed)
	assert.Contains(t, out.String(), "Would process: proj/src/a.ts")
}

func TestCleanupOperation_WriteErrorIsNonFatal(t *testing.T) {
	backing := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(backing, "proj/src/a.ts", []byte(`console.log("x")`), 0644))
	fs := afero.NewReadOnlyFs(backing)

	opts, out := newTestOptions(t, fs, testConfig("proj"))
	op, err := NewCleanupOperation(opts)
	require.NoError(t, err)

	// The run completes despite the per-file failure.
	require.NoError(t, op.Execute(context.Background()))

	assert.Contains(t, out.String(), "Error processing proj/src/a.ts")
	assert.Equal(t, 0, op.Summary().FilesProcessed)
	// Verification still sees the untouched file.
	assert.Contains(t, out.String(), "Remaining files with console statements: 1")
}

func TestCleanupOperation_EmptyTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("proj", 0755))

	opts, out := newTestOptions(t, fs, testConfig("proj"))
	op, err := NewCleanupOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(context.Background()))

	assert.Contains(t, out.String(), "No files found with console statements!")
}

func TestNewCleanupOperation_MissingDependencies(t *testing.T) {
	_, err := NewCleanupOperation(Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filesystem is required")
}
