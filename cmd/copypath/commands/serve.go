package commands

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/copypath/cmd/copypath/opts"
	"github.com/walteh/copypath/pkg/editor"
)

// NewServeCmd creates the command running the LSP editor bridge on
// stdio. Editors invoke the snippet commands via
// workspace/executeCommand ("copypath.<command>" with a document URI
// argument) and receive the rendered text as the result.
func NewServeCmd(o *opts.RootOpts) *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the editor bridge as a language server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Logger used by glsp; stdout carries the protocol.
			commonlog.Configure(verbosity, nil)

			server := editor.NewServer(o.Registry, o.Version)
			if err := server.RunStdio(); err != nil {
				return errors.Errorf("running language server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&verbosity, "verbosity", 1, "protocol log verbosity")

	return cmd
}
