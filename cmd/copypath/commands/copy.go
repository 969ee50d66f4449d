package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/copypath/cmd/copypath/opts"
)

// NewSnippetCmds builds one cobra command per registered snippet
// command, so every registry entry is invokable as
// `copypath <spelling> <file>`.
func NewSnippetCmds(o *opts.RootOpts) []*cobra.Command {
	var cmds []*cobra.Command

	for _, entry := range o.Registry.Commands() {
		cmds = append(cmds, &cobra.Command{
			Use:   entry.Use + " <file>",
			Short: entry.Short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := zerolog.Ctx(cmd.Context()).With().Str("command", entry.Name).Logger().WithContext(cmd.Context())

				inv, err := o.Invocation(ctx, args[0])
				if err != nil {
					return err
				}

				sink, err := o.Sink(cmd.OutOrStdout(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}

				_, err = o.Registry.Execute(ctx, entry.Name, inv, sink, o.Notifier(cmd.ErrOrStderr()))
				return err
			},
		})
	}

	return cmds
}
