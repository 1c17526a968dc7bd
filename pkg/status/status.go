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

// Package status owns file I/O for the substitution run and reports per-file
// results to the console.
package status

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome for one matched file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusRewritten            // Content changed and was written back
	StatusTouched              // Force mode wrote identical content (mtime updated)
	StatusUnchanged            // No change, file left untouched
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusRewritten:
		return "rewritten"
	case StatusTouched:
		return "touched"
	case StatusUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// 📈 RunSummary aggregates per-file outcomes for one run
type RunSummary struct {
	Scanned   int // Files processed
	Rewritten int // Files written with changed content
	Touched   int // Files written with identical content (force)
	Unchanged int // Files skipped
}

// 🔧 Manager handles file system operations and result tracking
type Manager struct {
	root      string    // Root of the scanned tree, for relative display
	console   io.Writer // Destination for per-file result lines
	verbose   bool      // Whether to print per-file lines
	formatter *FileFormatter

	mu      sync.Mutex
	files   map[string]FileStatus
	summary RunSummary
}

// 🏭 NewManager creates a new status manager. Per-file result lines go to
// console only when verbose is set.
func NewManager(root string, console io.Writer, verbose bool) *Manager {
	return &Manager{
		root:      root,
		console:   console,
		verbose:   verbose,
		formatter: NewFileFormatter(root),
		files:     make(map[string]FileStatus),
	}
}

// 📖 ReadFile reads the full content of a file. Failures propagate to the
// caller, they are not recovered here.
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("reading file")

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file %s: %w", path, err)
	}
	return content, nil
}

// 💾 WriteFileAtomic replaces the file content via temp file + rename, so a
// crash mid-write never leaves a truncated file. The rename updates the
// file's modification time even when content is unchanged.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("writing file")

	tempPath := path + ".tmp"

	// Write to temp file, preserving the original's permission bits
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// 🔍 FileExists checks whether a path exists
func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// 📝 Track records the outcome for one file and, in verbose mode, prints a
// result line
func (m *Manager) Track(ctx context.Context, path string, status FileStatus, replacements int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = status
	m.summary.Scanned++
	switch status {
	case StatusRewritten:
		m.summary.Rewritten++
	case StatusTouched:
		m.summary.Touched++
	case StatusUnchanged:
		m.summary.Unchanged++
	}

	if m.verbose && m.console != nil {
		io.WriteString(m.console, m.formatter.FormatResult(path, status, replacements)+"\n")
	}

	zerolog.Ctx(ctx).Info().
		Str("file", path).
		Str("status", status.String()).
		Int("replacements", replacements).
		Msg("file processed")
}

// 🔍 Status returns the recorded outcome for a path
func (m *Manager) Status(path string) FileStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.files[path]
}

// 📈 Summary returns the aggregated run outcome
func (m *Manager) Summary() RunSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summary
}
