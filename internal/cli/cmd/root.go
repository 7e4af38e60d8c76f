// Package cmd provides Cobra CLI commands for themesync.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/cli"
	"github.com/bnema/themesync/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	verbose   bool
	rootCmd   = &cobra.Command{
		Use:   "themesync",
		Short: "Keep Orchis and Tela themes in sync with GNOME appearance settings",
		Long: `themesync - follow GNOME's dark style and accent color with Orchis and Tela.

GNOME exposes two appearance preferences: the color scheme (light or dark)
and the accent color. themesync derives matching theme names from them and
applies the whole bundle:

  - GTK window theme       (Orchis-<Accent>-<Mode>)
  - GNOME Shell theme      (same name, needs the user-theme extension)
  - libadwaita override    (~/.config/gtk-4.0 links into the theme)
  - icon theme             (Tela-<accent>-<mode>)

Use 'themesync run' to start the daemon, 'themesync apply' for a one-shot
sync and 'themesync status' to inspect the current state.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "names", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				Daemon:  cmd == runCmd,
				Verbose: verbose,
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
