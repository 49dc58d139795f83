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

	"github.com/walteh/consoleclean/pkg/classify"
	"github.com/walteh/consoleclean/pkg/report"
	"github.com/walteh/consoleclean/pkg/rewrite"
	"github.com/walteh/consoleclean/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

// 🔍 ScanOperation runs the detection walk only and reports what a cleanup
// would touch. It never writes a file.
type ScanOperation struct {
	opts   Options
	walker *walker.Walker
}

// 📦 NewScanOperation creates a scan operation
func NewScanOperation(opts Options) (*ScanOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}

	classifier := classify.New(opts.Config.ClassifierOptions())
	return &ScanOperation{
		opts:   opts,
		walker: walker.New(opts.Fs, classifier, rewrite.TargetPrefix),
	}, nil
}

// Name implements Operation.
func (o *ScanOperation) Name() string { return "scan" }

// 🔍 Execute walks the tree and prints the candidate list.
func (o *ScanOperation) Execute(ctx context.Context) error {
	o.opts.Reporter.Header("Scanning for console statements")

	candidates, err := o.walker.FindCandidates(ctx, o.opts.Config.Root)
	if err != nil {
		return errors.Errorf("scanning for candidates: %w", err)
	}

	if len(candidates) == 0 {
		o.opts.Reporter.Success("No files found with console statements!")
		return nil
	}

	o.opts.Reporter.PrintSummary(report.Summary{}, candidates)
	return nil
}
