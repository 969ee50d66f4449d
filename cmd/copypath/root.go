package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/copypath/cmd/copypath/opts"
	"github.com/walteh/copypath/pkg/registry"
)

var (
	// Flags
	rootFlags     []string
	configFile    string
	syntaxName    string
	clipboardMode string
	quiet         bool
	debug         bool
)

// newRootOpts creates the shared options all commands run against.
func newRootOpts(reg *registry.Registry) *opts.RootOpts {
	return &opts.RootOpts{
		Registry:   reg,
		Version:    versionString(),
		Roots:      &rootFlags,
		ConfigFile: &configFile,
		Syntax:     &syntaxName,
		Clipboard:  &clipboardMode,
		Quiet:      &quiet,
	}
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&rootFlags, "root", "r", nil, "project root folder (repeatable, defaults to the working directory)")
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "settings file path (defaults to .copypath* in the resolved root)")
	cmd.PersistentFlags().StringVarP(&syntaxName, "syntax", "s", "", "syntax name of the document (defaults to extension inference)")
	cmd.PersistentFlags().StringVar(&clipboardMode, "clipboard", "osc52", "clipboard delivery: osc52 or stdout")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress status output")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// loggerContext attaches the process logger to the context.
func loggerContext(ctx context.Context) context.Context {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
	return log.WithContext(ctx)
}
