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

// Package config builds the validated, immutable run configuration.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🗺️ DefaultExtensions is used when no extensions are given
var DefaultExtensions = []string{"html"}

// 🔧 Options is the raw, unvalidated input to Build (parsed CLI values)
type Options struct {
	Root        string   // Directory to scan
	Pattern     string   // Regex pattern to replace
	Replacement string   // Replacement text, may use $1/${name} expansion
	Extensions  []string // Extensions without leading dots (caller strips dots)
	IgnoreGlobs []string // Root-relative globs for files to skip
	Verbose     bool     // Emit per-file diagnostics
	Force       bool     // Rewrite files even when content is unchanged
}

// 📚 Config is the validated run configuration. Built once per run, read-only
// afterwards.
type Config struct {
	Root        string         // Absolute path to an existing directory
	Pattern     *regexp.Regexp // Compiled pattern
	Replacement string         // Replacement text
	Extensions  []string       // Non-empty extension set
	IgnoreGlobs []string       // Globs for files to skip
	Verbose     bool
	Force       bool

	// ExtensionsDefaulted is set when Extensions fell back to
	// DefaultExtensions, so the caller can emit the one-time notice.
	ExtensionsDefaulted bool
}

// 🎯 Build validates opts and produces a fresh Config. Each validation failure
// names the offending field.
func (o Options) Build(ctx context.Context) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	if o.Root == "" {
		return nil, errors.New("root path is required")
	}
	abs, err := filepath.Abs(o.Root)
	if err != nil {
		return nil, errors.Errorf("resolving root path %q: %w", o.Root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Errorf("checking root path %q: %w", o.Root, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("root path %q is not a directory", o.Root)
	}

	if o.Pattern == "" {
		return nil, errors.New("pattern is required")
	}
	pattern, err := regexp.Compile(o.Pattern)
	if err != nil {
		return nil, errors.Errorf("malformed pattern %q: %w", o.Pattern, err)
	}

	if o.Replacement == "" {
		return nil, errors.New("replacement is required")
	}

	cfg := &Config{
		Root:        abs,
		Pattern:     pattern,
		Replacement: o.Replacement,
		Extensions:  o.Extensions,
		IgnoreGlobs: o.IgnoreGlobs,
		Verbose:     o.Verbose,
		Force:       o.Force,
	}

	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions
		cfg.ExtensionsDefaulted = true
		logger.Debug().Strs("extensions", cfg.Extensions).Msg("no extensions given, using defaults")
	}

	logger.Debug().
		Str("root", cfg.Root).
		Str("pattern", cfg.Pattern.String()).
		Strs("extensions", cfg.Extensions).
		Bool("verbose", cfg.Verbose).
		Bool("force", cfg.Force).
		Msg("configuration built")

	return cfg, nil
}

// 📝 String returns a one-line summary of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s: s/%s/%s/ (%v)", cfg.Root, cfg.Pattern, cfg.Replacement, cfg.Extensions)
}
