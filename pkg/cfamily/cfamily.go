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

// Package cfamily renders project-relative paths as C/C++/Objective-C
// include directives and header guards.
package cfamily

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/walteh/copypath/pkg/config"
	"github.com/walteh/copypath/pkg/workspace"
)

// headerExtensions are the recognized header extensions, in sibling
// probe priority order.
var headerExtensions = []string{".h", ".hh", ".hpp"}

var guardSanitizer = regexp.MustCompile(`[^0-9A-Z]+`)

// isHeader reports whether ext is a recognized header extension.
func isHeader(ext string) bool {
	for _, h := range headerExtensions {
		if ext == h {
			return true
		}
	}
	return false
}

// HeaderFile decides the header path a directive should reference.
//
// When the document is not itself a header, siblings formed by
// swapping the extension are probed under the project root; the first
// one that exists wins. A source file with no sibling header keeps its
// own path. Separators are normalized to forward slashes.
func HeaderFile(res workspace.Resolution, exists func(string) bool) string {
	rel := res.RelativePath
	ext := filepath.Ext(rel)

	if !isHeader(ext) && exists != nil {
		stem := strings.TrimSuffix(rel, ext)
		for _, header := range headerExtensions {
			candidate := stem + header
			if exists(filepath.Join(res.Root, candidate)) {
				rel = candidate
				break
			}
		}
	}

	return filepath.ToSlash(rel)
}

// Directive renders an include or import directive for the header.
// keyword is the macro name without the leading '#', i.e. "include"
// or "import".
func Directive(keyword string, header string, settings config.Settings) string {
	opening, closing := `"`, `"`
	if settings.CFamilyIncludesUseBrackets {
		opening, closing = "<", ">"
	}

	// First matching prefix wins, applied once.
	for _, prefix := range settings.CFamilyIncludesStripPrefixes {
		if !strings.HasPrefix(header, prefix) {
			continue
		}

		header = strings.TrimPrefix(header, prefix)
		header = strings.TrimPrefix(header, "/")
		break
	}

	return fmt.Sprintf("#%s %s%s%s", keyword, opening, header, closing)
}

// Guard renders the header path as an include-guard token: uppercased,
// underscore-terminated, every run of characters outside [0-9A-Z]
// collapsed to a single underscore.
func Guard(header string) string {
	return guardSanitizer.ReplaceAllString(strings.ToUpper(header)+"_", "_")
}
