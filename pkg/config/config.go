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

package config

// 🔧 Settings holds the recognized keys of the "copy-paths" namespace
type Settings struct {
	// CFamilyIncludesUseBrackets renders include directives with
	// <angle brackets> instead of "quotes".
	CFamilyIncludesUseBrackets bool `json:"c_family_includes_use_brackets" yaml:"c_family_includes_use_brackets"`

	// CFamilyIncludesStripPrefixes lists path prefixes to strip from
	// the front of a header path before rendering. Only the first
	// matching prefix is applied.
	CFamilyIncludesStripPrefixes []string `json:"c_family_includes_strip_prefixes" yaml:"c_family_includes_strip_prefixes"`
}

// Default returns the settings used when no project file is present.
func Default() Settings {
	return Settings{}
}

// 📚 File is the on-disk shape of a project settings file. Project
// files carry namespaces owned by other tools, so decoding is lenient
// and everything outside settings.copy-paths is ignored.
type File struct {
	Settings struct {
		CopyPaths *Settings `json:"copy-paths" yaml:"copy-paths"`
	} `json:"settings" yaml:"settings"`
}

// Resolved returns the copy-paths settings from the file, falling back
// to defaults when the namespace is absent.
func (f *File) Resolved() Settings {
	if f == nil || f.Settings.CopyPaths == nil {
		return Default()
	}
	return *f.Settings.CopyPaths
}
