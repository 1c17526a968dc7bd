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
	"github.com/walteh/resub/pkg/scan"
	"github.com/walteh/resub/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏭 NewSubstituteOperation creates the substitution run
func NewSubstituteOperation(opts Options) (*SubstituteOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &SubstituteOperation{opts: opts}, nil
}

// 🔄 SubstituteOperation walks the matched file set and rewrites each file
// through the replacer. Files are processed strictly one at a time; the first
// I/O error aborts the run.
type SubstituteOperation struct {
	opts Options
}

func (op *SubstituteOperation) Name() string {
	return "substitute"
}

// 🏃 Execute runs the substitution
func (op *SubstituteOperation) Execute(ctx context.Context) error {
	cfg := op.opts.Config

	matches, err := op.opts.Finder.Find(ctx, cfg.Root, scan.FindOptions{
		Extensions:  cfg.Extensions,
		IgnoreGlobs: cfg.IgnoreGlobs,
	})
	if err != nil {
		return errors.Errorf("finding files: %w", err)
	}

	if cfg.Verbose {
		// Listing consumes nothing on an eager traversal; a lazy traversal
		// cannot be listed and fails here, before any file is touched.
		paths, err := matches.Paths()
		if err != nil {
			return errors.Errorf("listing matched files: %w", err)
		}
		op.opts.Reporter.ListMatches(paths)

		if cfg.Force {
			op.opts.Reporter.Notice("force mode: every matched file will be rewritten")
		} else {
			op.opts.Reporter.Noticef("replacing /%s/ with %q", cfg.Pattern, cfg.Replacement)
		}
	}

	// Guard against a path surfacing twice in one run
	seen := make(map[string]struct{})

	if err := matches.Walk(func(path string) error {
		if _, dup := seen[path]; dup {
			zerolog.Ctx(ctx).Warn().Str("path", path).Msg("path matched twice in one run, skipping repeat")
			return nil
		}
		seen[path] = struct{}{}
		return op.processFile(ctx, path)
	}); err != nil {
		return err
	}

	return nil
}

// 📄 processFile runs the read/transform/decide/write cycle for one file
func (op *SubstituteOperation) processFile(ctx context.Context, path string) error {
	content, err := op.opts.Files.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	result := op.opts.Replacer.Replace(content)

	switch {
	case result.WasModified:
		if err := op.opts.Files.WriteFileAtomic(ctx, path, result.ModifiedContent); err != nil {
			return errors.Errorf("writing file %s: %w", path, err)
		}
		op.opts.Files.Track(ctx, path, status.StatusRewritten, result.ReplacementCount)

	case op.opts.Config.Force:
		// Identical content, but force mode still writes so the modification
		// time is observably updated.
		if err := op.opts.Files.WriteFileAtomic(ctx, path, result.ModifiedContent); err != nil {
			return errors.Errorf("writing file %s: %w", path, err)
		}
		op.opts.Files.Track(ctx, path, status.StatusTouched, result.ReplacementCount)

	default:
		op.opts.Files.Track(ctx, path, status.StatusUnchanged, 0)
	}

	return nil
}
