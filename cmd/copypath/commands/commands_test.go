package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/copypath/cmd/copypath/opts"
	"github.com/walteh/copypath/pkg/registry"
)

// testOpts builds RootOpts the way main does, with flag storage the
// tests can poke directly.
func testOpts(roots ...string) (*opts.RootOpts, *string) {
	rootFlags := roots
	configFile := ""
	syntaxName := ""
	clipboardMode := "stdout"
	quiet := true

	return &opts.RootOpts{
		Registry:   registry.Default(),
		Roots:      &rootFlags,
		ConfigFile: &configFile,
		Syntax:     &syntaxName,
		Clipboard:  &clipboardMode,
		Quiet:      &quiet,
	}, &syntaxName
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestRenderCommandList(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "commands_list", []byte(renderCommandList(registry.Default())))
}

func TestSnippetCmds_CoverRegistry(t *testing.T) {
	o, _ := testOpts()
	cmds := NewSnippetCmds(o)

	require.Len(t, cmds, 10)
	for _, cmd := range cmds {
		assert.NotEmpty(t, cmd.Short)
		assert.Contains(t, cmd.Use, " <file>")
	}
}

func TestSnippetCmd_IncludeMacro(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "src", "foo.cpp")
	header := filepath.Join(root, "src", "foo.h")
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	require.NoError(t, os.WriteFile(file, []byte("int main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(header, []byte("#pragma once\n"), 0o644))

	o, _ := testOpts(root)
	parent := &cobra.Command{Use: "copypath"}
	parent.AddCommand(NewSnippetCmds(o)...)

	stdout, err := runCommand(t, parent, "include-macro", file)

	require.NoError(t, err)
	assert.Equal(t, "#include \"src/foo.h\"\n", stdout)
}

func TestSnippetCmd_DisabledForWrongLanguage(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("hello\n"), 0o644))

	o, _ := testOpts(root)
	parent := &cobra.Command{Use: "copypath", SilenceUsage: true, SilenceErrors: true}
	parent.AddCommand(NewSnippetCmds(o)...)

	_, err := runCommand(t, parent, "include-macro", file)

	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrNotEnabled)
}

func TestBatchCmd(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{"include/a.h", "include/b.hpp", "src/main.cpp"} {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("// x\n"), 0o644))
	}

	o, _ := testOpts(root)
	cmd := NewBatchCmd(o)

	stdout, err := runCommand(t, cmd, "include-macro", "--glob", "include/**/*.{h,hpp}")

	require.NoError(t, err)
	assert.Equal(t, "#include \"include/a.h\"\n#include \"include/b.hpp\"\n", stdout)
}

func TestCommandsCmd(t *testing.T) {
	o, _ := testOpts()
	cmd := NewCommandsCmd(o)

	stdout, err := runCommand(t, cmd)

	require.NoError(t, err)
	assert.Contains(t, stdout, "copy_file_path_as_include_macro")
	assert.Contains(t, stdout, "java-package")
}
