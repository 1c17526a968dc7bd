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

// Package operation composes the walk, transform and write steps into runs.
package operation

import (
	"context"

	"github.com/walteh/resub/pkg/config"
	"github.com/walteh/resub/pkg/scan"
	"github.com/walteh/resub/pkg/status"
	"github.com/walteh/resub/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single executable unit of work
type Operation interface {
	// Name identifies the operation in logs and errors
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the collaborators for an operation
type Options struct {
	// Config is the validated run configuration
	Config *config.Config
	// Finder walks the tree and selects files
	Finder scan.Finder
	// Replacer applies the substitution to file content
	Replacer *text.RegexReplacer
	// Files owns file I/O and result tracking
	Files *status.Manager
	// Reporter emits user-facing notices
	Reporter *status.UserLogger
}

// 🔍 validate checks that all collaborators are present
func (o Options) validate() error {
	if o.Config == nil {
		return errors.New("config is required")
	}
	if o.Finder == nil {
		return errors.New("finder is required")
	}
	if o.Replacer == nil {
		return errors.New("replacer is required")
	}
	if o.Files == nil {
		return errors.New("file manager is required")
	}
	if o.Reporter == nil {
		return errors.New("reporter is required")
	}
	return nil
}
