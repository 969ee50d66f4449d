package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/walteh/copypath/pkg/registry"
)

func registryForTest() *registry.Registry {
	return registry.Default()
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{name: "file_uri", uri: "file:///proj/src/foo.cpp", want: "/proj/src/foo.cpp"},
		{name: "escaped_space", uri: "file:///proj/My%20Project/foo.h", want: "/proj/My Project/foo.h"},
		{name: "plain_path_passthrough", uri: "/proj/foo.java", want: "/proj/foo.java"},
		{name: "non_file_scheme_passthrough", uri: "untitled:Untitled-1", want: "untitled:Untitled-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, URIToPath(tt.uri))
		})
	}
}

func TestSyntaxForLanguageID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "cpp", id: "cpp", want: "C++"},
		{name: "c", id: "c", want: "C"},
		{name: "objc", id: "objective-c", want: "Objective-C"},
		{name: "objcpp", id: "objective-cpp", want: "Objective-C++"},
		{name: "java", id: "java", want: "Java"},
		{name: "case_insensitive", id: "Java", want: "Java"},
		{name: "unknown", id: "python", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SyntaxForLanguageID(tt.id))
		})
	}
}

func TestServer_CommandNames(t *testing.T) {
	s := &Server{registry: registryForTest(), languages: map[string]string{}}

	names := s.commandNames()

	assert.Len(t, names, 10)
	assert.Contains(t, names, "copypath.copy_file_path")
	assert.Contains(t, names, "copypath.copy_file_path_as_include_macro")
	for _, name := range names {
		assert.True(t, len(name) > len(CommandPrefix))
	}
}

func TestServer_RootsAndLanguages(t *testing.T) {
	s := &Server{registry: registryForTest(), languages: map[string]string{}}

	s.setRoots([]string{"/proj", "/other"})
	assert.Equal(t, []string{"/proj", "/other"}, s.currentRoots())

	s.setLanguage("file:///proj/foo.cpp", "cpp")
	assert.Equal(t, "C++", s.syntaxFor("file:///proj/foo.cpp"))

	// didClose clears the mapping; extension inference takes over.
	s.setLanguage("file:///proj/foo.cpp", "")
	assert.Equal(t, "C++", s.syntaxFor("file:///proj/foo.cpp"))

	// Unknown language IDs also fall back to the extension.
	s.setLanguage("file:///proj/Widget.java", "someclient-java-dialect")
	assert.Equal(t, "Java", s.syntaxFor("file:///proj/Widget.java"))
}
