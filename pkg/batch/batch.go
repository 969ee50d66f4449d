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

// Package batch renders a snippet command for every project file
// matching a glob, e.g. an include directive for each header under a
// tree.
package batch

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/copypath/pkg/config"
	"github.com/walteh/copypath/pkg/lang"
	"github.com/walteh/copypath/pkg/registry"
	"github.com/walteh/copypath/pkg/workspace"
)

// ⚙️ Options configures a batch run
type Options struct {
	Root     string          // Project root to scan
	Glob     string          // Doublestar pattern relative to Root
	Command  string          // Registry command to render per file
	Settings config.Settings // Project settings applied to every file
	Workers  int             // Concurrent renderers, defaults to 4
}

// 📄 Result pairs a matched file with its rendered snippet
type Result struct {
	RelativePath string
	Text         string
}

// Run renders the command for every file under opts.Root matching
// opts.Glob. Files the command is not enabled for (wrong language,
// directories) are skipped. Results come back sorted by relative path
// regardless of render order.
func Run(ctx context.Context, reg *registry.Registry, opts Options) ([]Result, error) {
	if opts.Root == "" || opts.Glob == "" {
		return nil, errors.New("root and glob are required")
	}
	if _, ok := reg.Get(opts.Command); !ok {
		return nil, errors.Errorf("%w: %q", registry.ErrUnknownCommand, opts.Command)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}

	matches, err := doublestar.Glob(os.DirFS(opts.Root), opts.Glob)
	if err != nil {
		return nil, errors.Errorf("matching glob %q: %w", opts.Glob, err)
	}
	sort.Strings(matches)

	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("root", opts.Root).
		Str("glob", opts.Glob).
		Int("matches", len(matches)).
		Msg("starting batch render")

	results := make([]*Result, len(matches))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, match := range matches {
		group.Go(func() error {
			abs := filepath.Join(opts.Root, filepath.FromSlash(match))
			if !workspace.FileExists(abs) {
				// Globs match directories too.
				return nil
			}

			inv := registry.Invocation{
				Doc: workspace.Document{
					Path:   abs,
					Syntax: lang.SyntaxForPath(match),
				},
				Roots:      []string{opts.Root},
				Settings:   opts.Settings,
				FileExists: workspace.FileExists,
			}

			text, err := reg.Execute(ctx, opts.Command, inv, nil, nil)
			if err != nil {
				if errors.Is(err, registry.ErrNotEnabled) {
					logger.Debug().Str("file", match).Msg("skipping file, command not enabled")
					return nil
				}
				return errors.Errorf("rendering %s: %w", match, err)
			}

			results[i] = &Result{RelativePath: match, Text: text}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}
