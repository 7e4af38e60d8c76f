package config

// Config represents the complete configuration for themesync.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Theme controls where theme assets live and how names are derived.
	Theme ThemeConfig `mapstructure:"theme" toml:"theme" json:"theme"`
	// Shell controls the optional GNOME Shell user-theme integration.
	Shell ShellConfig `mapstructure:"shell" toml:"shell" json:"shell"`
	State StateConfig `mapstructure:"state" toml:"state" json:"state"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,enum=text"`
	// EnableFileLog writes a rotated log under $XDG_STATE_HOME/themesync/logs.
	EnableFileLog bool `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int  `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int  `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int  `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
}

// ThemeConfig locates theme assets and selects the variant suffix.
type ThemeConfig struct {
	// ThemesDir holds the Orchis window/shell themes.
	ThemesDir string `mapstructure:"themes_dir" toml:"themes_dir" json:"themes_dir"`
	// IconsDir holds the Tela icon themes.
	IconsDir string `mapstructure:"icons_dir" toml:"icons_dir" json:"icons_dir"`
	// GTK4ConfigDir receives the libadwaita override links.
	GTK4ConfigDir string `mapstructure:"gtk4_config_dir" toml:"gtk4_config_dir" json:"gtk4_config_dir"`
	// Suffix is "auto" or a literal variant suffix such as "-Compact" or "".
	Suffix string `mapstructure:"suffix" toml:"suffix" json:"suffix"`
	// SuffixCandidates are probed in order when Suffix is "auto".
	SuffixCandidates []string `mapstructure:"suffix_candidates" toml:"suffix_candidates" json:"suffix_candidates"`
	// DefaultAccent is used when the desktop exposes no accent color.
	DefaultAccent string `mapstructure:"default_accent" toml:"default_accent" json:"default_accent" jsonschema:"enum=blue,enum=teal,enum=green,enum=yellow,enum=orange,enum=red,enum=pink,enum=purple,enum=slate,enum=brown"`
}

// ShellConfig controls the GNOME Shell user-theme extension integration.
type ShellConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// ExtensionSchemaDir is searched for the user-theme schema when the
	// system schema source does not provide it.
	ExtensionSchemaDir string `mapstructure:"extension_schema_dir" toml:"extension_schema_dir" json:"extension_schema_dir"`
}

// StateConfig locates the persisted record of the last applied bundle.
type StateConfig struct {
	CacheFile string `mapstructure:"cache_file" toml:"cache_file" json:"cache_file"`
}
