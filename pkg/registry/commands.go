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

package registry

import (
	"path/filepath"

	"github.com/walteh/copypath/pkg/cfamily"
	"github.com/walteh/copypath/pkg/javafamily"
	"github.com/walteh/copypath/pkg/lang"
	"github.com/walteh/copypath/pkg/workspace"
)

// Default builds the registry with the full copypath command set.
func Default() *Registry {
	r := New()

	commands := []Command{
		{
			Name:   "copy_file_path",
			Use:    "file-path",
			Short:  "Copy the absolute path of the current file",
			Status: "Copied file path",
			Render: func(inv Invocation, res workspace.Resolution) string {
				return inv.Doc.Path
			},
		},
		{
			Name:   "copy_file_name",
			Use:    "file-name",
			Short:  "Copy the name of the current file",
			Status: "Copied file name",
			Render: func(inv Invocation, res workspace.Resolution) string {
				return filepath.Base(inv.Doc.Path)
			},
		},
		{
			Name:   "copy_file_directory",
			Use:    "file-directory",
			Short:  "Copy the directory of the current file",
			Status: "Copied file directory",
			Render: func(inv Invocation, res workspace.Resolution) string {
				return filepath.Dir(inv.Doc.Path)
			},
		},
		{
			Name:            "copy_file_path_relative_to_project",
			Use:             "relative-file-path",
			Short:           "Copy the path of the current file relative to its project root",
			Status:          "Copied relative file",
			NeedsResolution: true,
			Render: func(inv Invocation, res workspace.Resolution) string {
				return res.RelativePath
			},
		},
		{
			Name:            "copy_file_directory_relative_to_project",
			Use:             "relative-file-directory",
			Short:           "Copy the directory of the current file relative to its project root",
			Status:          "Copied relative directory",
			NeedsResolution: true,
			Render: func(inv Invocation, res workspace.Resolution) string {
				return filepath.Dir(res.RelativePath)
			},
		},
		{
			Name:   "copy_file_path_as_include_macro",
			Use:    "include-macro",
			Short:  "Copy the current file as a C/C++ #include directive",
			Status: "Copied include",
			Family: &lang.CFamily,
			Render: func(inv Invocation, res workspace.Resolution) string {
				return cfamily.Directive("include", cfamily.HeaderFile(res, inv.FileExists), inv.Settings)
			},
		},
		{
			Name:   "copy_file_path_as_import_macro",
			Use:    "import-macro",
			Short:  "Copy the current file as an Objective-C #import directive",
			Status: "Copied import",
			Family: &lang.CFamily,
			Render: func(inv Invocation, res workspace.Resolution) string {
				return cfamily.Directive("import", cfamily.HeaderFile(res, inv.FileExists), inv.Settings)
			},
		},
		{
			Name:   "copy_file_path_as_header_guard",
			Use:    "header-guard",
			Short:  "Copy the current file as a C/C++ header guard token",
			Status: "Copied include guard",
			Family: &lang.CFamily,
			Render: func(inv Invocation, res workspace.Resolution) string {
				return cfamily.Guard(cfamily.HeaderFile(res, inv.FileExists))
			},
		},
		{
			Name:   "copy_file_path_as_import_statement",
			Use:    "java-import",
			Short:  "Copy the current file as a Java import statement",
			Status: "Copied import",
			Family: &lang.JavaFamily,
			Render: func(inv Invocation, res workspace.Resolution) string {
				return javafamily.ImportStatement(res.RelativePath)
			},
		},
		{
			Name:   "copy_file_directory_as_package_statement",
			Use:    "java-package",
			Short:  "Copy the current file's directory as a Java package statement",
			Status: "Copied package",
			Family: &lang.JavaFamily,
			Render: func(inv Invocation, res workspace.Resolution) string {
				return javafamily.PackageStatement(res.RelativePath)
			},
		},
	}

	for _, cmd := range commands {
		if err := r.Register(cmd); err != nil {
			// Default's command set is static; a registration failure
			// is a programming error.
			panic(err)
		}
	}

	return r
}
