// Package cli implements the dango command-line interface.
//
// The CLI exposes the library's image helpers as subcommands: tile composes
// many images into one, label draws a caption onto an image. Commands are
// built with cobra; all of them support --verbose (-v) for debug-level
// logging via charmbracelet/log, with the logger carried on the command
// context. An optional TOML config file (--config, or
// <user config dir>/dango/config.toml) supplies defaults for the background
// color, font and fit size; flags always win over the config file.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, set via ldflags
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version. Called by
// the main package with values injected at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the dango CLI and returns an error if any command fails.
// Invoking dango with no subcommand prints usage and fails.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	loadCfg := func() (config, error) {
		return loadConfig(configPath)
	}

	root := &cobra.Command{
		Use:          "dango",
		Short:        "dango tiles and labels images",
		Long:         `dango is a small image toolbox: it tiles many images into one near-square montage and stamps text labels onto images.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show usage and exit non-zero.
			_ = cmd.Help()
			return errors.New("a subcommand is required")
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("dango %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(newTileCmd(loadCfg))
	root.AddCommand(newLabelCmd(loadCfg))

	return root.ExecuteContext(context.Background())
}
