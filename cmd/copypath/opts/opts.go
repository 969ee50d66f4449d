package opts

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/copypath/pkg/clipboard"
	"github.com/walteh/copypath/pkg/config"
	"github.com/walteh/copypath/pkg/lang"
	"github.com/walteh/copypath/pkg/registry"
	"github.com/walteh/copypath/pkg/status"
	"github.com/walteh/copypath/pkg/workspace"
)

// RootOpts contains shared options used by all commands. Flag values
// are held by pointer because cobra binds them after construction.
type RootOpts struct {
	Registry   *registry.Registry
	Version    string
	Roots      *[]string
	ConfigFile *string
	Syntax     *string
	Clipboard  *string
	Quiet      *bool
}

// ProjectRoots returns the configured project roots as absolute paths,
// defaulting to the working directory when none are given.
func (o *RootOpts) ProjectRoots() ([]string, error) {
	raw := *o.Roots
	if len(raw) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Errorf("getting working directory: %w", err)
		}
		return []string{cwd}, nil
	}

	roots := make([]string, 0, len(raw))
	for _, r := range raw {
		abs, err := filepath.Abs(r)
		if err != nil {
			return nil, errors.Errorf("resolving root %q: %w", r, err)
		}
		roots = append(roots, abs)
	}
	return roots, nil
}

// Invocation assembles the per-invocation snapshot for a document.
func (o *RootOpts) Invocation(ctx context.Context, file string) (registry.Invocation, error) {
	path, err := filepath.Abs(file)
	if err != nil {
		return registry.Invocation{}, errors.Errorf("resolving document path: %w", err)
	}

	roots, err := o.ProjectRoots()
	if err != nil {
		return registry.Invocation{}, err
	}

	syntax := *o.Syntax
	if syntax == "" {
		syntax = lang.SyntaxForPath(path)
	}

	doc := workspace.Document{Path: path, Syntax: syntax}

	settings, err := o.settings(ctx, doc, roots)
	if err != nil {
		return registry.Invocation{}, err
	}

	return registry.Invocation{
		Doc:        doc,
		Roots:      roots,
		Settings:   settings,
		FileExists: workspace.FileExists,
	}, nil
}

// settings loads project settings: an explicit --config wins, else the
// resolved project root is searched, else defaults.
func (o *RootOpts) settings(ctx context.Context, doc workspace.Document, roots []string) (config.Settings, error) {
	if *o.ConfigFile != "" {
		settings, err := config.Load(ctx, *o.ConfigFile)
		if err != nil {
			return config.Default(), errors.Errorf("loading settings: %w", err)
		}
		return settings, nil
	}

	if res := workspace.Resolve(doc, roots); res.OK() {
		return config.Discover(ctx, res.Root)
	}
	return config.Default(), nil
}

// Sink builds the clipboard sink selected by --clipboard.
func (o *RootOpts) Sink(stdout io.Writer, stderr io.Writer) (clipboard.Sink, error) {
	switch *o.Clipboard {
	case "", "osc52":
		return clipboard.NewOSC52Sink(stderr), nil
	case "stdout":
		return clipboard.NewWriterSink(stdout), nil
	default:
		return nil, errors.Errorf("unknown clipboard mode %q", *o.Clipboard)
	}
}

// Notifier builds the status notifier.
func (o *RootOpts) Notifier(out io.Writer) *status.Notifier {
	return status.NewNotifier(out, *o.Quiet)
}
