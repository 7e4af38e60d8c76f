// Package cli provides the themesync command line surfaces.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/domain/build"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/config"
	"github.com/bnema/themesync/internal/infrastructure/filesystem"
	"github.com/bnema/themesync/internal/infrastructure/gsettings"
	"github.com/bnema/themesync/internal/infrastructure/statestore"
	"github.com/bnema/themesync/internal/infrastructure/xdg"
	"github.com/bnema/themesync/internal/logging"
)

// Options controls how the App is initialized.
type Options struct {
	// Daemon routes logs to stderr and the optional log file.
	Daemon bool
	// Verbose routes logs to stderr for one-shot commands.
	Verbose bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	// ConfigErr is set when the config file could not be loaded and
	// defaults are in use.
	ConfigErr error
	Theme     *styles.Theme
	BuildInfo build.Info
	Paths     port.XDGPaths

	// Session-constant theme inputs
	Assets        usecase.AssetPaths
	Suffix        string
	DefaultAccent entity.Accent

	// Adapters
	Prefs *gsettings.Adapter
	FS    port.FileSystem
	Store *statestore.JSONStore

	// Use cases
	ValidateUC  *usecase.ValidateAssetsUseCase
	ReconcileUC *usecase.ReconcileThemeUseCase
	DriftUC     *usecase.DetectDriftUseCase
	ApplyUC     *usecase.ApplyThemeUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, cfgErr := loadConfig()

	paths := xdg.New()
	logger, logCleanup, logErr := newLogger(cfg, paths, opts)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	} else if mgr.Created() {
		logger.Info().Str("path", mgr.GetConfigFile()).Msg("default config file created")
	}

	assets := usecase.AssetPaths{
		ThemesDir:     cfg.Theme.ThemesDir,
		IconsDir:      cfg.Theme.IconsDir,
		GTK4ConfigDir: cfg.Theme.GTK4ConfigDir,
	}
	fs := filesystem.New()

	suffix := usecase.NewDetectSuffixUseCase(fs, assets).Execute(ctx, usecase.DetectSuffixInput{
		Configured: cfg.Theme.Suffix,
		Candidates: cfg.Theme.SuffixCandidates,
	})

	prefs := gsettings.New(gsettings.Options{
		ShellEnabled:       cfg.Shell.Enabled,
		ExtensionSchemaDir: cfg.Shell.ExtensionSchemaDir,
	})
	prefs.Load(ctx)

	store := statestore.NewJSONStore(cfg.State.CacheFile)
	validateUC := usecase.NewValidateAssetsUseCase(fs, assets)
	reconcileUC := usecase.NewReconcileThemeUseCase(prefs, validateUC, usecase.NewLinkStyleOverrideUseCase(fs, assets))
	driftUC := usecase.NewDetectDriftUseCase(prefs, store)
	applyUC := usecase.NewApplyThemeUseCase(prefs, reconcileUC, store, time.Now)

	accent := entity.ParseAccent(cfg.Theme.DefaultAccent)

	logger.Debug().
		Str("themes_dir", assets.ThemesDir).
		Str("icons_dir", assets.IconsDir).
		Str("suffix", suffix.Suffix).
		Str("default_accent", string(accent)).
		Msg("app initialized")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		ConfigErr:     cfgErr,
		Theme:         styles.NewTheme(currentAccent(prefs, accent)),
		Paths:         paths,
		Assets:        assets,
		Suffix:        suffix.Suffix,
		DefaultAccent: accent,
		Prefs:         prefs,
		FS:            fs,
		Store:         store,
		ValidateUC:    validateUC,
		ReconcileUC:   reconcileUC,
		DriftUC:       driftUC,
		ApplyUC:       applyUC,
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// NewWatcher builds the preference watcher for the daemon.
func (a *App) NewWatcher() *usecase.WatchPreferencesUseCase {
	return usecase.NewWatchPreferencesUseCase(a.Prefs, a.ReconcileUC, a.Store, a.DriftUC, usecase.WatchConfig{
		DefaultAccent: a.DefaultAccent,
		Suffix:        a.Suffix,
	})
}

// Close releases all resources.
func (a *App) Close() error {
	if a.Prefs != nil {
		a.Prefs.Flush()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back
// to defaults when the file cannot be used.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), fmt.Errorf("create config manager: %w", err)
	}

	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}

func newLogger(cfg *config.Config, paths port.XDGPaths, opts Options) (zerolog.Logger, func(), error) {
	logCfg := logging.Config{
		// Levels are enforced globally so the daemon can change them live.
		Level:      zerolog.TraceLevel,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}
	logging.SetGlobalLevel(cfg.Logging.Level)

	fileCfg := logging.FileConfig{
		Enabled:       opts.Daemon && cfg.Logging.EnableFileLog,
		MaxSizeMB:     cfg.Logging.MaxSizeMB,
		MaxBackups:    cfg.Logging.MaxBackups,
		MaxAgeDays:    cfg.Logging.MaxAgeDays,
		WriteToStderr: opts.Daemon || opts.Verbose,
	}
	if fileCfg.Enabled {
		dir, err := paths.LogDir()
		if err != nil {
			return logging.New(logCfg), func() {}, fmt.Errorf("resolve log dir: %w", err)
		}
		fileCfg.Dir = dir
	}
	return logging.NewWithFile(logCfg, fileCfg)
}

// currentAccent reads the live accent for styling, falling back to def.
func currentAccent(prefs port.PreferenceStore, def entity.Accent) entity.Accent {
	if !prefs.HasKey(port.InterfaceSchema, port.AccentColorKey) {
		return def
	}
	raw, err := prefs.GetString(port.InterfaceSchema, port.AccentColorKey)
	if err != nil {
		return def
	}
	if accent := entity.ParseAccent(raw); accent.Known() {
		return accent
	}
	return def
}
