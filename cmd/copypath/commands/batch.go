package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/copypath/cmd/copypath/opts"
	"github.com/walteh/copypath/pkg/batch"
	"github.com/walteh/copypath/pkg/config"
)

// NewBatchCmd creates the batch command, rendering a snippet for every
// project file matching a glob.
func NewBatchCmd(o *opts.RootOpts) *cobra.Command {
	var (
		glob    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch <command>",
		Short: "Render a snippet command for every file matching a glob",
		Long: `Batch runs one snippet command over all files under the project root
that match a doublestar glob, writing one line per file to stdout.
Files the command is not enabled for are skipped.

Example:
  copypath batch include-macro --glob '**/*.hpp'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "batch").Logger().WithContext(cmd.Context())

			roots, err := o.ProjectRoots()
			if err != nil {
				return err
			}
			if len(roots) != 1 {
				return errors.New("batch requires exactly one project root")
			}
			root := roots[0]

			settings := config.Default()
			if *o.ConfigFile != "" {
				if settings, err = config.Load(ctx, *o.ConfigFile); err != nil {
					return errors.Errorf("loading settings: %w", err)
				}
			} else if settings, err = config.Discover(ctx, root); err != nil {
				return err
			}

			results, err := batch.Run(ctx, o.Registry, batch.Options{
				Root:     root,
				Glob:     glob,
				Command:  args[0],
				Settings: settings,
				Workers:  workers,
			})
			if err != nil {
				return err
			}

			for _, result := range results {
				fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&glob, "glob", "g", "**/*", "doublestar glob, relative to the project root")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "concurrent renderers")

	return cmd
}
