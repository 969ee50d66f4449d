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

package workspace

import (
	"os"
	"strings"
)

// 📄 Document represents the file a command operates on
type Document struct {
	Path   string // Absolute file path, empty for unsaved buffers
	Syntax string // Syntax identifier reported by the front end
}

// 🔍 Resolution is a document path resolved against a project root
type Resolution struct {
	RelativePath string // Path relative to Root, forward slashes not guaranteed
	Root         string // The chosen project root
}

// OK reports whether the document was resolved against a root.
func (r Resolution) OK() bool {
	return r.RelativePath != "" && r.Root != ""
}

// Resolve determines which project root encloses the document and the
// document's path relative to that root.
//
// A file may sit under multiple roots (e.g. a subdirectory of an open
// project added as its own folder). The shortest matching root wins,
// which is the outermost enclosing folder when roots nest.
func Resolve(doc Document, roots []string) Resolution {
	if doc.Path == "" {
		return Resolution{}
	}

	var chosen string
	for _, root := range roots {
		if root == "" || !strings.HasPrefix(doc.Path, root) {
			continue
		}
		if chosen == "" || len(root) < len(chosen) {
			chosen = root
		}
	}
	if chosen == "" {
		return Resolution{}
	}

	rel := strings.TrimPrefix(doc.Path, chosen)
	rel = strings.TrimLeft(rel, `/\`)
	if rel == "" {
		return Resolution{}
	}

	return Resolution{
		RelativePath: rel,
		Root:         chosen,
	}
}

// FileExists is the default filesystem probe used when rendering
// sibling headers. It matches regular files only.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
