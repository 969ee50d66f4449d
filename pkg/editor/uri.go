package editor

import (
	"net/url"
	"strings"
)

// languageSyntaxes maps LSP language identifiers to the syntax names
// the language gate understands.
var languageSyntaxes = map[string]string{
	"c":             "C",
	"cpp":           "C++",
	"objective-c":   "Objective-C",
	"objective-cpp": "Objective-C++",
	"java":          "Java",
}

// SyntaxForLanguageID maps an LSP language ID to a syntax name.
// Returns the empty string for languages outside the command set.
func SyntaxForLanguageID(id string) string {
	return languageSyntaxes[strings.ToLower(id)]
}

// URIToPath converts a file:// URI to a filesystem path. Non-file
// URIs and plain paths come back unchanged apart from percent
// decoding, so callers can pass either form.
func URIToPath(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return strings.TrimPrefix(uri, "file://")
	}
	return parsed.Path
}
