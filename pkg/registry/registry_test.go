package registry

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/copypath/pkg/clipboard"
	"github.com/walteh/copypath/pkg/config"
	"github.com/walteh/copypath/pkg/workspace"
)

// projectFixture lays out a project root with the given files and
// returns the root and an invocation for one of them.
func projectFixture(t *testing.T, files []string, open string, syntax string) (string, Invocation) {
	t.Helper()

	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("// fixture\n"), 0o644))
	}

	return root, Invocation{
		Doc:        workspace.Document{Path: filepath.Join(root, filepath.FromSlash(open)), Syntax: syntax},
		Roots:      []string{root},
		Settings:   config.Default(),
		FileExists: workspace.FileExists,
	}
}

func TestExecute_RenderedText(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		open     string
		syntax   string
		command  string
		settings *config.Settings
		want     string // rendered text, {root} expanded
	}{
		{
			name:    "file_path",
			files:   []string{"src/foo.cpp"},
			open:    "src/foo.cpp",
			syntax:  "C++",
			command: "copy_file_path",
			want:    "{root}/src/foo.cpp",
		},
		{
			name:    "file_name",
			files:   []string{"src/foo.cpp"},
			open:    "src/foo.cpp",
			syntax:  "C++",
			command: "copy_file_name",
			want:    "foo.cpp",
		},
		{
			name:    "file_directory",
			files:   []string{"src/foo.cpp"},
			open:    "src/foo.cpp",
			syntax:  "C++",
			command: "copy_file_directory",
			want:    "{root}/src",
		},
		{
			name:    "relative_file_path",
			files:   []string{"src/foo.cpp"},
			open:    "src/foo.cpp",
			syntax:  "C++",
			command: "copy_file_path_relative_to_project",
			want:    "src/foo.cpp",
		},
		{
			name:    "relative_file_directory",
			files:   []string{"src/foo.cpp"},
			open:    "src/foo.cpp",
			syntax:  "C++",
			command: "copy_file_directory_relative_to_project",
			want:    "src",
		},
		{
			name:    "include_macro_quotes_default",
			files:   []string{"a/b/Widget.hpp"},
			open:    "a/b/Widget.hpp",
			syntax:  "Packages/C++/C++.sublime-syntax",
			command: "copy_file_path_as_include_macro",
			want:    `#include "a/b/Widget.hpp"`,
		},
		{
			name:     "include_macro_brackets",
			files:    []string{"a/b/Widget.hpp"},
			open:     "a/b/Widget.hpp",
			syntax:   "C++",
			command:  "copy_file_path_as_include_macro",
			settings: &config.Settings{CFamilyIncludesUseBrackets: true},
			want:     "#include <a/b/Widget.hpp>",
		},
		{
			name:    "include_macro_prefers_sibling_header",
			files:   []string{"src/foo.cpp", "src/foo.h"},
			open:    "src/foo.cpp",
			syntax:  "C++",
			command: "copy_file_path_as_include_macro",
			want:    `#include "src/foo.h"`,
		},
		{
			name:    "include_macro_no_sibling_falls_back",
			files:   []string{"src/foo.cpp"},
			open:    "src/foo.cpp",
			syntax:  "C++",
			command: "copy_file_path_as_include_macro",
			want:    `#include "src/foo.cpp"`,
		},
		{
			name:     "include_macro_strip_prefix",
			files:    []string{"include/foo/bar.h"},
			open:     "include/foo/bar.h",
			syntax:   "C",
			command:  "copy_file_path_as_include_macro",
			settings: &config.Settings{CFamilyIncludesStripPrefixes: []string{"include"}},
			want:     `#include "foo/bar.h"`,
		},
		{
			name:    "import_macro",
			files:   []string{"Classes/Thing.m", "Classes/Thing.h"},
			open:    "Classes/Thing.m",
			syntax:  "Objective-C",
			command: "copy_file_path_as_import_macro",
			want:    `#import "Classes/Thing.h"`,
		},
		{
			name:    "header_guard",
			files:   []string{"a/b/Widget.hpp"},
			open:    "a/b/Widget.hpp",
			syntax:  "C++",
			command: "copy_file_path_as_header_guard",
			want:    "A_B_WIDGET_HPP_",
		},
		{
			name:    "java_import",
			files:   []string{"src/com/acme/Widget.java"},
			open:    "src/com/acme/Widget.java",
			syntax:  "Java",
			command: "copy_file_path_as_import_statement",
			want:    "import com.acme.Widget;",
		},
		{
			name:    "java_package",
			files:   []string{"src/com/acme/Widget.java"},
			open:    "src/com/acme/Widget.java",
			syntax:  "Java",
			command: "copy_file_directory_as_package_statement",
			want:    "package com.acme;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, inv := projectFixture(t, tt.files, tt.open, tt.syntax)
			if tt.settings != nil {
				inv.Settings = *tt.settings
			}

			var sink clipboard.Memory
			got, err := Default().Execute(context.Background(), tt.command, inv, &sink, nil)

			require.NoError(t, err)
			want := strings.ReplaceAll(tt.want, "{root}", root)
			assert.Equal(t, want, got)
			assert.True(t, sink.Copied)
			assert.Equal(t, want, sink.Text)
		})
	}
}

func TestExecute_Enablement(t *testing.T) {
	tests := []struct {
		name    string
		inv     Invocation
		command string
		reason  string
	}{
		{
			name:    "unsaved_buffer",
			inv:     Invocation{Doc: workspace.Document{Syntax: "C++"}, Roots: []string{"/proj"}},
			command: "copy_file_path",
			reason:  "document has no path",
		},
		{
			name: "outside_all_roots",
			inv: Invocation{
				Doc:   workspace.Document{Path: "/elsewhere/foo.cpp", Syntax: "C++"},
				Roots: []string{"/proj"},
			},
			command: "copy_file_path_relative_to_project",
			reason:  "outside all project roots",
		},
		{
			name: "wrong_language_for_include",
			inv: Invocation{
				Doc:   workspace.Document{Path: "/proj/foo.py", Syntax: "Python"},
				Roots: []string{"/proj"},
			},
			command: "copy_file_path_as_include_macro",
			reason:  "syntax is not C-family",
		},
		{
			name: "wrong_language_for_java_import",
			inv: Invocation{
				Doc:   workspace.Document{Path: "/proj/foo.cpp", Syntax: "C++"},
				Roots: []string{"/proj"},
			},
			command: "copy_file_path_as_import_statement",
			reason:  "syntax is not Java-family",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sink clipboard.Memory
			_, err := Default().Execute(context.Background(), tt.command, tt.inv, &sink, nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotEnabled)
			assert.Contains(t, err.Error(), tt.reason)
			assert.False(t, sink.Copied, "nothing reaches the clipboard when disabled")
		})
	}
}

func TestExecute_AbsoluteOnlyCommandsIgnoreRoots(t *testing.T) {
	// The plain path commands work for documents outside any root.
	inv := Invocation{Doc: workspace.Document{Path: "/elsewhere/foo.txt"}}

	got, err := Default().Execute(context.Background(), "copy_file_name", inv, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "foo.txt", got)
}

func TestExecute_UnknownCommand(t *testing.T) {
	_, err := Default().Execute(context.Background(), "copy_everything", Invocation{}, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestExecute_NestedRootsPickOutermost(t *testing.T) {
	outer := t.TempDir()
	inner := filepath.Join(outer, "sub")
	require.NoError(t, os.MkdirAll(inner, 0o755))
	file := filepath.Join(inner, "foo.h")
	require.NoError(t, os.WriteFile(file, []byte("#pragma once\n"), 0o644))

	inv := Invocation{
		Doc:        workspace.Document{Path: file, Syntax: "C"},
		Roots:      []string{inner, outer},
		Settings:   config.Default(),
		FileExists: workspace.FileExists,
	}

	got, err := Default().Execute(context.Background(), "copy_file_path_relative_to_project", inv, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "sub/foo.h", got)
}

func TestRegistry_GetByCLISpelling(t *testing.T) {
	r := Default()

	byName, ok := r.Get("copy_file_path_as_include_macro")
	require.True(t, ok)
	byUse, ok := r.Get("include-macro")
	require.True(t, ok)

	assert.Equal(t, byName.Name, byUse.Name)
}

func TestRegistry_Register(t *testing.T) {
	r := New()

	require.NoError(t, r.Register(Command{
		Name:   "noop",
		Render: func(Invocation, workspace.Resolution) string { return "" },
	}))

	err := r.Register(Command{
		Name:   "noop",
		Render: func(Invocation, workspace.Resolution) string { return "" },
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	err = r.Register(Command{Name: "no_renderer"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no renderer")
}

func TestRegistry_CommandsSorted(t *testing.T) {
	commands := Default().Commands()
	require.Len(t, commands, 10)

	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.Name
	}
	assert.True(t, sort.StringsAreSorted(names))
}
