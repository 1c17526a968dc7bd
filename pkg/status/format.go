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

package status

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 45 // Base width for filename
	statusWidth = 10 // Width for status text
)

// 🖼️ FileFormatter renders per-file result lines
type FileFormatter struct {
	root string // Paths are displayed relative to this root when possible
}

// 🏭 NewFileFormatter creates a formatter rooted at the scanned tree
func NewFileFormatter(root string) *FileFormatter {
	return &FileFormatter{root: root}
}

// 📝 displayPath returns the root-relative form of path for display
func (f *FileFormatter) displayPath(path string) string {
	if f.root == "" {
		return path
	}
	rel, err := filepath.Rel(f.root, path)
	if err != nil {
		return path
	}
	return rel
}

// 📝 FormatResult formats a single file outcome
func (f *FileFormatter) FormatResult(path string, status FileStatus, replacements int) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch status {
	case StatusRewritten:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case StatusTouched:
		symbol = '•'
		symbolColor = color.FgCyan
	case StatusUnchanged:
		symbol = '-'
		symbolColor = color.FgYellow
	default:
		symbol = '?'
		symbolColor = color.FgRed
	}

	detail := ""
	if replacements > 0 {
		detail = fmt.Sprintf(" (%d replacements)", replacements)
	}

	return fmt.Sprintf("%s%s %s %s%s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, f.displayPath(path)),
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, status.String())),
		detail)
}

// 📝 FormatSummary formats the end-of-run summary line
func (f *FileFormatter) FormatSummary(s RunSummary) string {
	return fmt.Sprintf("%d files scanned: %s rewritten, %s touched, %s unchanged",
		s.Scanned,
		color.New(color.FgBlue).Sprint(s.Rewritten),
		color.New(color.FgCyan).Sprint(s.Touched),
		color.New(color.FgYellow).Sprint(s.Unchanged))
}
