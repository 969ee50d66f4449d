package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/walteh/copypath/cmd/copypath/opts"
	"github.com/walteh/copypath/pkg/registry"
)

// NewCommandsCmd creates the command listing the registry contents.
func NewCommandsCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the registered snippet commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderCommandList(o.Registry))
			return nil
		},
	}
}

// renderCommandList formats the registry contents as a fixed-width
// table keyed by registry identifier.
func renderCommandList(reg *registry.Registry) string {
	commands := reg.Commands()

	nameWidth, useWidth := 0, 0
	for _, cmd := range commands {
		nameWidth = max(nameWidth, len(cmd.Name))
		useWidth = max(useWidth, len(cmd.Use))
	}

	var b strings.Builder
	for _, cmd := range commands {
		gate := "any file"
		switch {
		case cmd.Family != nil:
			gate = cmd.Family.Name
		case cmd.NeedsResolution:
			gate = "in project"
		}
		fmt.Fprintf(&b, "%-*s  %-*s  %-10s  %s\n", nameWidth, cmd.Name, useWidth, cmd.Use, gate, cmd.Short)
	}
	return b.String()
}
