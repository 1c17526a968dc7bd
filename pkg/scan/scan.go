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

// Package scan discovers files under a directory tree by extension.
package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ⚠️ ErrNotListable is returned by Matches.Paths when the traversal produces
// files incrementally and cannot be enumerated without consuming it
var ErrNotListable = errors.New("matched-file listing is not supported for lazy traversal")

// 🔧 FindOptions controls which files a traversal matches
type FindOptions struct {
	Extensions  []string // Extensions without leading dots, case-sensitive
	IgnoreGlobs []string // Glob patterns (root-relative) for files to skip
}

// 📦 Matches is the result of one traversal
type Matches interface {
	// Walk invokes fn for every matched file, in traversal order. Walk stops
	// at the first error fn returns and propagates it.
	Walk(fn func(path string) error) error

	// Paths returns the fully materialized list of matched absolute paths.
	// Lazy traversals return ErrNotListable.
	Paths() ([]string, error)
}

// 🔌 Finder walks a directory tree and selects files by extension
type Finder interface {
	Find(ctx context.Context, root string, opts FindOptions) (Matches, error)
}

// 🔍 MatchExtension reports whether the last dot-delimited segment of name is
// in extensions. A name with no dot never matches; "a.min.js" matches on "js".
func MatchExtension(name string, extensions []string) bool {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return false
	}
	ext := name[idx+1:]
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// 🔍 ignored reports whether the root-relative path matches an ignore glob
func ignored(root, path string, globs []string) (bool, error) {
	if len(globs) == 0 {
		return false, nil
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false, errors.Errorf("relativizing %s: %w", path, err)
	}
	rel = filepath.ToSlash(rel)

	for _, glob := range globs {
		matched, err := doublestar.Match(glob, rel)
		if err != nil {
			return false, errors.Errorf("matching ignore pattern %q: %w", glob, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// 🗺️ resolveRoot validates that root is an existing directory and returns its
// absolute form
func resolveRoot(root string, opts FindOptions) (string, error) {
	if len(opts.Extensions) == 0 {
		return "", errors.New("at least one extension is required")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Errorf("resolving root path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Errorf("checking root path: %w", err)
	}
	if !info.IsDir() {
		return "", errors.Errorf("root path %q is not a directory", root)
	}

	return abs, nil
}

// 🚶 walkTree runs one top-down traversal of root, invoking fn for every
// matched file. No symlink-cycle protection, no hidden-file exclusion, no
// depth limit. Order is WalkDir's lexical order.
func walkTree(root string, opts FindOptions, fn func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !MatchExtension(d.Name(), opts.Extensions) {
			return nil
		}

		skip, err := ignored(root, path, opts.IgnoreGlobs)
		if err != nil {
			return err
		}
		if skip {
			return nil
		}

		return fn(path)
	})
}

// 🏃 EagerFinder materializes the full matched-file list up front
type EagerFinder struct{}

// 🏭 NewEagerFinder creates a finder that materializes results before returning
func NewEagerFinder() *EagerFinder {
	return &EagerFinder{}
}

func (f *EagerFinder) Find(ctx context.Context, root string, opts FindOptions) (Matches, error) {
	abs, err := resolveRoot(root, opts)
	if err != nil {
		return nil, err
	}

	var paths []string
	if err := walkTree(abs, opts, func(path string) error {
		paths = append(paths, path)
		return nil
	}); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("root", abs).
		Strs("extensions", opts.Extensions).
		Int("matched", len(paths)).
		Msg("eager traversal complete")

	return &eagerMatches{paths: paths}, nil
}

// 📦 eagerMatches holds a materialized matched-file list
type eagerMatches struct {
	paths []string
}

func (m *eagerMatches) Walk(fn func(path string) error) error {
	for _, path := range m.paths {
		if err := fn(path); err != nil {
			return err
		}
	}
	return nil
}

func (m *eagerMatches) Paths() ([]string, error) {
	paths := make([]string, len(m.paths))
	copy(paths, m.paths)
	return paths, nil
}

// 🐌 LazyFinder defers traversal until the matches are walked
type LazyFinder struct{}

// 🏭 NewLazyFinder creates a finder that yields results incrementally. Each
// Walk call starts a fresh traversal.
func NewLazyFinder() *LazyFinder {
	return &LazyFinder{}
}

func (f *LazyFinder) Find(ctx context.Context, root string, opts FindOptions) (Matches, error) {
	abs, err := resolveRoot(root, opts)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("root", abs).
		Strs("extensions", opts.Extensions).
		Msg("lazy traversal prepared")

	return &lazyMatches{root: abs, opts: opts}, nil
}

// 📦 lazyMatches walks the tree on demand
type lazyMatches struct {
	root string
	opts FindOptions
}

func (m *lazyMatches) Walk(fn func(path string) error) error {
	return walkTree(m.root, m.opts, fn)
}

func (m *lazyMatches) Paths() ([]string, error) {
	return nil, ErrNotListable
}
