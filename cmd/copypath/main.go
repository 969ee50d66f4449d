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

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/walteh/copypath/cmd/copypath/commands"
	"github.com/walteh/copypath/pkg/registry"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "copypath",
		Short: "Copy project-relative file paths as language-specific snippets",
		Long: `copypath derives a file's path relative to its project root and renders
it as a ready-to-paste snippet: C/C++ include directives, Objective-C
imports, header guards, Java import and package statements, or the
plain path itself. Results go to the clipboard via OSC 52 or to stdout.`,
		SilenceUsage: true,
	}

	addRootFlags(rootCmd)

	cobra.OnInitialize(setupLogging)

	opts := newRootOpts(registry.Default())

	rootCmd.AddCommand(commands.NewSnippetCmds(opts)...)
	rootCmd.AddCommand(
		commands.NewCommandsCmd(opts),
		commands.NewBatchCmd(opts),
		commands.NewServeCmd(opts),
		newVersionCmd(),
	)

	ctx := loggerContext(context.Background())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
