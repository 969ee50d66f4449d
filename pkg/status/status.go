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

// Package status renders the transient confirmations a user sees after
// a command runs, the CLI analogue of an editor status bar message.
package status

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 Notifier emits user-facing status messages layered over zerolog
type Notifier struct {
	out   io.Writer
	quiet bool
}

// NewNotifier creates a notifier writing to out. Quiet suppresses the
// console output but keeps the structured log.
func NewNotifier(out io.Writer, quiet bool) *Notifier {
	return &Notifier{out: out, quiet: quiet}
}

// Notify emits a confirmation message such as "Copied include",
// echoing the text that was produced.
func (n *Notifier) Notify(ctx context.Context, message string, text string) {
	zerolog.Ctx(ctx).Info().Str("text", text).Msg(message)

	if n.quiet {
		return
	}

	printer := pterm.Success.WithWriter(n.out).WithPrefix(pterm.Prefix{Text: "📋"})
	printer.Println(fmt.Sprintf("%s %s", message, color.New(color.Faint).Sprint(text)))
}

// Unavailable reports that a command cannot run in the current state,
// naming the unmet precondition.
func (n *Notifier) Unavailable(ctx context.Context, command string, reason string) {
	zerolog.Ctx(ctx).Warn().Str("command", command).Str("reason", reason).Msg("command unavailable")

	if n.quiet {
		return
	}

	printer := pterm.Warning.WithWriter(n.out).WithPrefix(pterm.Prefix{Text: "🚫"})
	printer.Println(fmt.Sprintf("%s: %s", color.New(color.Bold).Sprint(command), reason))
}
