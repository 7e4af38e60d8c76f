package config

import (
	"path/filepath"

	"github.com/bnema/themesync/internal/domain/entity"
)

// Default configuration constants
const (
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
	defaultMaxSizeMB   = 10
	defaultMaxBackups  = 3
	defaultMaxLogAge   = 7 // days
	defaultSuffix      = "auto"
	userThemeExtension = "user-theme@gnome-shell-extensions.gcampax.github.com"
	stateFileName      = "state.json"
)

// DefaultSuffixCandidates are the variant suffixes probed in auto mode.
func DefaultSuffixCandidates() []string {
	return []string{"-Compact"}
}

// DefaultConfig returns the default configuration. Paths are resolved
// against the current XDG environment; resolution failures leave them empty
// and validation reports them.
func DefaultConfig() *Config {
	base, _ := GetBaseDirs()
	if base == nil {
		base = &BaseDirs{}
	}

	cfg := &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			MaxSizeMB:     defaultMaxSizeMB,
			MaxBackups:    defaultMaxBackups,
			MaxAgeDays:    defaultMaxLogAge,
		},
		Theme: ThemeConfig{
			Suffix:           defaultSuffix,
			SuffixCandidates: DefaultSuffixCandidates(),
			DefaultAccent:    string(entity.DefaultAccent),
		},
		Shell: ShellConfig{
			Enabled: true,
		},
	}

	if base.Home != "" {
		cfg.Theme.ThemesDir = filepath.Join(base.Home, ".themes")
	}
	if base.DataHome != "" {
		cfg.Theme.IconsDir = filepath.Join(base.DataHome, "icons")
		cfg.Shell.ExtensionSchemaDir = filepath.Join(base.DataHome, "gnome-shell", "extensions", userThemeExtension, "schemas")
	}
	if base.ConfigHome != "" {
		cfg.Theme.GTK4ConfigDir = filepath.Join(base.ConfigHome, "gtk-4.0")
	}
	if dirs, err := GetXDGDirs(); err == nil {
		cfg.State.CacheFile = filepath.Join(dirs.CacheHome, stateFileName)
	}

	return cfg
}
