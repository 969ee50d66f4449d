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

// Package registry maps command identifiers to pure snippet renderers
// with independent enablement predicates, so any front end (CLI,
// editor bridge, test harness) can drive the same command set.
package registry

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/copypath/pkg/clipboard"
	"github.com/walteh/copypath/pkg/config"
	"github.com/walteh/copypath/pkg/lang"
	"github.com/walteh/copypath/pkg/status"
	"github.com/walteh/copypath/pkg/workspace"
)

var (
	// ErrUnknownCommand is returned for identifiers nothing registered.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNotEnabled is returned when a command's preconditions do not
	// hold. It models an editor greying out a menu entry: the worst
	// observable failure, never a crash at render time.
	ErrNotEnabled = errors.New("command not enabled")
)

// 📸 Invocation is the immutable per-invocation snapshot a command
// renders from
type Invocation struct {
	Doc        workspace.Document
	Roots      []string
	Settings   config.Settings
	FileExists func(string) bool // filesystem probe for sibling headers
}

// 🧩 Command is a single registered operation
type Command struct {
	Name   string // Registry identifier (copy_file_path, ...)
	Use    string // CLI spelling (file-path, ...)
	Short  string // One-line description
	Status string // Confirmation message shown after a successful run

	// NeedsResolution gates the command on the document resolving
	// against a project root. Family additionally gates it on the
	// document's syntax and implies NeedsResolution.
	NeedsResolution bool
	Family          *lang.Family

	Render func(inv Invocation, res workspace.Resolution) string
}

// Enabled reports whether the command can run against the invocation.
// res must be the resolution of inv's document, computed once by the
// caller.
func (c Command) Enabled(inv Invocation, res workspace.Resolution) bool {
	return c.DisabledReason(inv, res) == ""
}

// DisabledReason names the first unmet precondition, or returns the
// empty string when the command is enabled.
func (c Command) DisabledReason(inv Invocation, res workspace.Resolution) string {
	if inv.Doc.Path == "" {
		return "document has no path (unsaved buffer)"
	}
	if c.Family != nil && !c.Family.Matches(inv.Doc.Syntax) {
		return "syntax is not " + c.Family.Name
	}
	if (c.NeedsResolution || c.Family != nil) && !res.OK() {
		return "document is outside all project roots"
	}
	return ""
}

// 🗃️ Registry holds the registered commands
type Registry struct {
	commands map[string]Command
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{commands: map[string]Command{}}
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" {
		return errors.New("command name is required")
	}
	if cmd.Render == nil {
		return errors.Errorf("command %q has no renderer", cmd.Name)
	}
	if _, ok := r.commands[cmd.Name]; ok {
		return errors.Errorf("command %q already registered", cmd.Name)
	}

	r.commands[cmd.Name] = cmd
	return nil
}

// Get looks up a command by registry identifier or CLI spelling.
func (r *Registry) Get(name string) (Command, bool) {
	if cmd, ok := r.commands[name]; ok {
		return cmd, true
	}
	for _, cmd := range r.commands {
		if cmd.Use == name {
			return cmd, true
		}
	}
	return Command{}, false
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Execute runs a command end to end: resolve the document once, check
// enablement, render, deliver to the clipboard sink, confirm via the
// notifier. The rendered text is returned for front ends that relay it
// themselves.
func (r *Registry) Execute(ctx context.Context, name string, inv Invocation, sink clipboard.Sink, notifier *status.Notifier) (string, error) {
	cmd, ok := r.Get(name)
	if !ok {
		return "", errors.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	res := workspace.Resolve(inv.Doc, inv.Roots)

	if reason := cmd.DisabledReason(inv, res); reason != "" {
		if notifier != nil {
			notifier.Unavailable(ctx, cmd.Name, reason)
		}
		return "", errors.Errorf("%w: %s", ErrNotEnabled, reason)
	}

	text := cmd.Render(inv, res)
	zerolog.Ctx(ctx).Debug().
		Str("command", cmd.Name).
		Str("text", text).
		Msg("rendered command output")

	if sink != nil {
		if err := sink.Copy(ctx, text); err != nil {
			return "", errors.Errorf("copying to clipboard: %w", err)
		}
	}
	if notifier != nil {
		notifier.Notify(ctx, cmd.Status, text)
	}

	return text, nil
}
