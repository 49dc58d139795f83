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
	"github.com/spf13/afero"
	"github.com/walteh/consoleclean/pkg/imports"
	"github.com/walteh/consoleclean/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// 📊 ProcessResult describes what happened to one file.
type ProcessResult struct {
	// Changed indicates the file content was rewritten (and, outside dry
	// runs, written back)
	Changed bool
	// Replacements is the number of statements converted
	Replacements int
	// ImportAdded indicates the logger import line was inserted
	ImportAdded bool
}

// ⚙️ FileProcessor applies import insertion and statement rewriting to one
// file at a time.
type FileProcessor struct {
	fs       afero.Fs
	inserter *imports.Inserter
	rewriter *rewrite.Rewriter
	dryRun   bool
}

// 🏭 NewFileProcessor creates a FileProcessor.
func NewFileProcessor(fs afero.Fs, inserter *imports.Inserter, rewriter *rewrite.Rewriter, dryRun bool) *FileProcessor {
	return &FileProcessor{
		fs:       fs,
		inserter: inserter,
		rewriter: rewriter,
		dryRun:   dryRun,
	}
}

// ⚙️ Process reads the file, inserts the logger import when missing,
// rewrites console statements, and writes the result back only when the
// content actually changed. Files without target calls are returned
// untouched, byte for byte.
func (p *FileProcessor) Process(ctx context.Context, path string) (ProcessResult, error) {
	logger := zerolog.Ctx(ctx)

	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return ProcessResult{}, errors.Errorf("reading file: %w", err)
	}

	original := string(data)
	if !p.rewriter.HasTargets(original) {
		return ProcessResult{}, nil
	}

	content, importAdded := p.inserter.Insert(original, path)
	rewritten := p.rewriter.Rewrite(content)
	content = rewritten.Content

	if content == original {
		return ProcessResult{}, nil
	}

	if p.dryRun {
		logger.Debug().Str("file", path).Msg("dry run, not writing")
	} else {
		info, err := p.fs.Stat(path)
		if err != nil {
			return ProcessResult{}, errors.Errorf("stating file: %w", err)
		}
		if err := afero.WriteFile(p.fs, path, []byte(content), info.Mode()); err != nil {
			return ProcessResult{}, errors.Errorf("writing file: %w", err)
		}
	}

	return ProcessResult{
		Changed:      true,
		Replacements: rewritten.Replacements,
		ImportAdded:  importAdded,
	}, nil
}
