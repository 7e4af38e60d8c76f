package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"reflect"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/bnema/themesync/internal/cli"
	"github.com/bnema/themesync/internal/infrastructure/config"
	"github.com/bnema/themesync/internal/infrastructure/mainloop"
	"github.com/bnema/themesync/internal/logging"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the theme sync daemon",
	Long: `Watch the GNOME color-scheme and accent-color preferences and keep the
window, shell, libadwaita and icon themes in sync until interrupted.

The current preferences are applied once at startup. Afterwards every
change is reconciled; failures are logged and retried on the next change.

Logs go to stderr, and to $XDG_STATE_HOME/themesync/logs when
logging.enable_file_log is set. The log level follows config file edits
without a restart.`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDaemon(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), unix.SIGINT, unix.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	watcher := app.NewWatcher()
	start, err := watcher.Start(ctx)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop()

	if start.Initial != nil && !start.Initial.Success {
		log.Warn().Msg("startup sync failed, waiting for the next preference change")
	}

	watchConfig(ctx, app)

	log.Info().
		Str("version", app.BuildInfo.Version).
		Str("suffix", app.Suffix).
		Msg("themesync running")

	if err := mainloop.New().Run(ctx); err != nil {
		return fmt.Errorf("main loop: %w", err)
	}

	log.Info().Msg("shutting down")
	return nil
}

// watchConfig follows config file edits. Only the log level is applied
// live; the theme inputs are fixed for the session.
func watchConfig(ctx context.Context, app *cli.App) {
	log := logging.FromContext(ctx)
	if app.ConfigManager == nil || app.ConfigErr != nil {
		return
	}

	previous := app.Config
	app.ConfigManager.OnConfigChange(func(next *config.Config) {
		if next.Logging.Level != previous.Logging.Level {
			level := logging.SetGlobalLevel(next.Logging.Level)
			log.Info().Str("level", level.String()).Msg("log level changed")
		}
		if sessionSettingsChanged(previous, next) {
			log.Warn().Msg("theme settings changed, restart themesync to apply them")
		}
		previous = next
	})

	if err := app.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}
}

// sessionSettingsChanged reports whether settings read once at startup differ.
func sessionSettingsChanged(previous, next *config.Config) bool {
	return !reflect.DeepEqual(previous.Theme, next.Theme) ||
		!reflect.DeepEqual(previous.Shell, next.Shell) ||
		!reflect.DeepEqual(previous.State, next.State)
}
