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

package text

import (
	"bytes"
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// 🔄 RegexReplacer applies a regular-expression substitution to content.
// The replacement string may use Go regexp expansion syntax ($1, ${name}).
type RegexReplacer struct {
	pattern     *regexp.Regexp
	replacement string
}

// 🏭 NewRegexReplacer creates a replacer from an already compiled pattern
func NewRegexReplacer(pattern *regexp.Regexp, replacement string) *RegexReplacer {
	return &RegexReplacer{
		pattern:     pattern,
		replacement: replacement,
	}
}

// 📝 Compile builds a replacer from a raw pattern string
func Compile(pattern, replacement string) (*RegexReplacer, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("malformed pattern %q: %w", pattern, err)
	}
	return NewRegexReplacer(re, replacement), nil
}

// 📊 ReplacementResult holds the outcome of one substitution pass
type ReplacementResult struct {
	OriginalContent  []byte // Content before replacement
	ModifiedContent  []byte // Content after replacement
	WasModified      bool   // Whether content changed
	ReplacementCount int    // Number of matches replaced
}

// 🔄 Replace substitutes every match of the pattern in content. It is a pure
// function: no file access, deterministic, and when nothing matches the
// modified content is byte-identical to the original.
func (r *RegexReplacer) Replace(content []byte) *ReplacementResult {
	result := &ReplacementResult{
		OriginalContent: content,
		ModifiedContent: content,
	}

	matches := r.pattern.FindAllIndex(content, -1)
	if len(matches) == 0 {
		return result
	}

	modified := r.pattern.ReplaceAll(content, []byte(r.replacement))
	result.ModifiedContent = modified
	result.ReplacementCount = len(matches)
	result.WasModified = !bytes.Equal(content, modified)
	return result
}

// 📝 Pattern returns the source text of the compiled pattern
func (r *RegexReplacer) Pattern() string {
	return r.pattern.String()
}

// 📝 Replacement returns the replacement template
func (r *RegexReplacer) Replacement() string {
	return r.replacement
}

// 🔍 EscapeLiteral escapes an arbitrary literal string into a pattern that
// matches exactly that text
func EscapeLiteral(literal string) string {
	return regexp.QuoteMeta(literal)
}
