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

package walker

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/consoleclean/pkg/classify"
	"gitlab.com/tozd/go/errors"
)

// 🚶 Walker enumerates cleanup candidates under a root directory.
//
// Excluded directories are pruned before descent, so their subtrees are
// never traversed. Files that cannot be read are silently dropped from the
// candidate list.
type Walker struct {
	fs         afero.Fs
	classifier *classify.Classifier
	target     string
}

// 🏭 New creates a Walker that flags files containing the target substring.
func New(fs afero.Fs, classifier *classify.Classifier, target string) *Walker {
	return &Walker{
		fs:         fs,
		classifier: classifier,
		target:     target,
	}
}

// 🔍 FindCandidates walks the tree rooted at root and returns every file
// that passes classification and contains the target substring.
func (w *Walker) FindCandidates(ctx context.Context, root string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var candidates []string
	err := afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Enumeration errors are non-fatal: skip the entry and keep
			// walking.
			logger.Debug().Str("path", path).Err(err).Msg("skipping unreadable entry")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if path != root && w.classifier.IsExcludedDir(info.Name()) {
				logger.Debug().Str("dir", path).Msg("pruning excluded directory")
				return filepath.SkipDir
			}
			return nil
		}

		if !w.classifier.ShouldProcess(path) {
			return nil
		}

		data, readErr := afero.ReadFile(w.fs, path)
		if readErr != nil {
			logger.Debug().Str("file", path).Err(readErr).Msg("skipping unreadable file")
			return nil
		}

		if strings.Contains(string(data), w.target) {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	logger.Debug().Int("count", len(candidates)).Str("root", root).Msg("candidate scan complete")
	return candidates, nil
}
