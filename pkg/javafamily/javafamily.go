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

// Package javafamily renders project-relative paths as Java import
// and package statements.
package javafamily

import (
	"fmt"
	"path"
	"strings"
)

// DottedPath converts a relative file path into a dotted class path:
// extension stripped, separators replaced with dots, any reverse-domain
// prefix before a ".com." (or failing that ".org.") segment dropped.
//
// The domain trim is a plain substring match. A path segment literally
// named "com" anywhere below the root triggers it; that matches how
// editors have always behaved here, so it stays.
func DottedPath(rel string) string {
	rel = strings.ReplaceAll(rel, `\`, "/")
	rel = strings.TrimSuffix(rel, path.Ext(rel))

	dotted := strings.ReplaceAll(rel, "/", ".")

	if idx := strings.Index(dotted, ".com."); idx >= 0 {
		dotted = dotted[idx+1:]
	} else if idx := strings.Index(dotted, ".org."); idx >= 0 {
		dotted = dotted[idx+1:]
	}

	return dotted
}

// ImportStatement renders a Java import for the class at rel.
func ImportStatement(rel string) string {
	return fmt.Sprintf("import %s;", DottedPath(rel))
}

// PackageStatement renders the package declaration for the class at
// rel, i.e. the dotted path with the class name dropped.
func PackageStatement(rel string) string {
	dotted := DottedPath(rel)
	if idx := strings.LastIndex(dotted, "."); idx >= 0 {
		dotted = dotted[:idx]
	} else {
		// A class directly under the project root has no package.
		dotted = ""
	}
	return fmt.Sprintf("package %s;", dotted)
}
