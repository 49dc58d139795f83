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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/consoleclean/pkg/classify"
	"github.com/walteh/consoleclean/pkg/imports"
	"github.com/walteh/consoleclean/pkg/report"
	"github.com/walteh/consoleclean/pkg/rewrite"
	"github.com/walteh/consoleclean/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

// 🧹 CleanupOperation runs the full pipeline: detection walk, per-file
// rewrite, summary, and a best-effort verification walk.
type CleanupOperation struct {
	opts      Options
	walker    *walker.Walker
	processor *FileProcessor

	// Run counters. One lifecycle per Execute call; mutated only by the
	// single processing loop.
	summary report.Summary
}

// 📦 NewCleanupOperation creates a cleanup operation
func NewCleanupOperation(opts Options) (*CleanupOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}

	classifier := classify.New(opts.Config.ClassifierOptions())
	resolver := imports.NewResolver(opts.Config.LoggerModule)
	rewriter := rewrite.New(nil)

	return &CleanupOperation{
		opts:      opts,
		walker:    walker.New(opts.Fs, classifier, rewrite.TargetPrefix),
		processor: NewFileProcessor(opts.Fs, imports.NewInserter(resolver, opts.Config.ImportNames), rewriter, opts.Config.DryRun),
	}, nil
}

// Name implements Operation.
func (o *CleanupOperation) Name() string { return "cleanup" }

// 🧹 Execute runs the cleanup. Per-file failures are reported and
// swallowed; the run itself only fails when the tree cannot be walked.
func (o *CleanupOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	o.opts.Reporter.Header("Starting console log cleanup")
	o.opts.Reporter.Info("Finding files with console statements...")

	candidates, err := o.walker.FindCandidates(ctx, o.opts.Config.Root)
	if err != nil {
		return errors.Errorf("scanning for candidates: %w", err)
	}

	if len(candidates) == 0 {
		o.opts.Reporter.Success("No files found with console statements!")
		return nil
	}

	o.opts.Reporter.Infof("Found %d files with console statements", len(candidates))

	for _, path := range candidates {
		result, err := o.processor.Process(ctx, path)
		if err != nil {
			o.opts.Reporter.FileError(path, err)
			continue
		}
		if !result.Changed {
			logger.Debug().Str("file", path).Msg("no changes")
			continue
		}

		o.summary.FilesProcessed++
		o.summary.StatementsReplaced += result.Replacements
		if result.ImportAdded {
			o.summary.ImportsAdded++
		}

		if o.opts.Config.DryRun {
			o.opts.Reporter.FileSkipped(path, result.Replacements)
		} else {
			o.opts.Reporter.FileProcessed(path, result.Replacements, result.ImportAdded)
		}
	}

	// Verification pass: a second full walk. Best-effort given the
	// line-oriented rewrite rules, never authoritative.
	remaining, err := o.walker.FindCandidates(ctx, o.opts.Config.Root)
	if err != nil {
		logger.Warn().Err(err).Msg("verification walk failed")
		remaining = nil
	}

	o.opts.Reporter.PrintSummary(o.summary, remaining)
	return nil
}

// 📊 Summary returns the run counters accumulated so far.
func (o *CleanupOperation) Summary() report.Summary {
	return o.summary
}
