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

package lang

import (
	"path"
	"strings"
)

// 🗂️ Family is a group of languages sharing path-snippet conventions
type Family struct {
	Name     string   // Family name, for user-facing messages
	Syntaxes []string // Accepted syntax names
}

var (
	// CFamily covers the languages using #include/#import conventions.
	CFamily = Family{
		Name:     "C-family",
		Syntaxes: []string{"C", "C++", "Objective-C", "Objective-C++"},
	}

	// JavaFamily covers the languages using dotted package imports.
	JavaFamily = Family{
		Name:     "Java-family",
		Syntaxes: []string{"Java"},
	}
)

// Matches reports whether a syntax identifier belongs to the family.
// Editors report syntaxes as paths ("Packages/C++/C++.sublime-syntax"),
// so only the final segment matters, extension stripped, matched by
// suffix against the accepted names.
func (f Family) Matches(syntax string) bool {
	if syntax == "" {
		return false
	}

	base := path.Base(strings.ReplaceAll(syntax, `\`, "/"))
	base = strings.TrimSuffix(base, path.Ext(base))

	for _, name := range f.Syntaxes {
		if strings.HasSuffix(base, name) {
			return true
		}
	}
	return false
}

// extensionSyntaxes maps file extensions to syntax names so the CLI
// can infer a syntax when the caller does not pass one.
var extensionSyntaxes = map[string]string{
	".c":    "C",
	".h":    "C",
	".cc":   "C++",
	".cpp":  "C++",
	".cxx":  "C++",
	".hh":   "C++",
	".hpp":  "C++",
	".m":    "Objective-C",
	".mm":   "Objective-C++",
	".java": "Java",
}

// SyntaxForPath guesses a syntax name from a file extension. Returns
// the empty string when the extension is not recognized.
func SyntaxForPath(p string) string {
	return extensionSyntaxes[strings.ToLower(path.Ext(strings.ReplaceAll(p, `\`, "/")))]
}
