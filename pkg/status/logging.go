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
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly console feedback, mirrored to the
// structured log
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger from the context's logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 Notice prints an informational notice
func (u *UserLogger) Notice(msg string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "ℹ️"}).Println(msg)
	u.log.Info().Msg(msg)
}

// 📝 Noticef prints a formatted informational notice
func (u *UserLogger) Noticef(format string, args ...any) {
	u.Notice(fmt.Sprintf(format, args...))
}

// ✅ Success prints a success message
func (u *UserLogger) Success(msg string) {
	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
	u.log.Info().Msg(msg)
}

// ⚠️ Warning prints a warning message
func (u *UserLogger) Warning(msg string) {
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(msg)
	u.log.Warn().Msg(msg)
}

// ❌ Error prints an error message
func (u *UserLogger) Error(msg string, err error) {
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(msg)
	if err != nil {
		pterm.Error.Println(err)
	}
	u.log.Error().Err(err).Msg(msg)
}

// 📋 ListMatches prints the matched-file list before substitution begins
func (u *UserLogger) ListMatches(paths []string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "🔍"}).
		Printf("Patterns will be replaced in these files:\n")
	for num, path := range paths {
		pterm.Println(fmt.Sprintf("\t #%d %s", num, path))
	}
	u.log.Info().Int("matched", len(paths)).Msg("matched files listed")
}
