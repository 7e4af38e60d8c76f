// Package config provides configuration management for themesync with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	created   bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// THEMESYNC_THEME_SUFFIX, THEMESYNC_SHELL_ENABLED, ...
	v.SetEnvPrefix("THEMESYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "THEMESYNC_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind THEMESYNC_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "THEMESYNC_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind THEMESYNC_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile, _ = GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	config.Theme.ThemesDir = ExpandHome(strings.TrimSpace(config.Theme.ThemesDir))
	config.Theme.IconsDir = ExpandHome(strings.TrimSpace(config.Theme.IconsDir))
	config.Theme.GTK4ConfigDir = ExpandHome(strings.TrimSpace(config.Theme.GTK4ConfigDir))
	config.Shell.ExtensionSchemaDir = ExpandHome(strings.TrimSpace(config.Shell.ExtensionSchemaDir))
	config.State.CacheFile = ExpandHome(strings.TrimSpace(config.State.CacheFile))

	if strings.EqualFold(strings.TrimSpace(config.Theme.Suffix), defaultSuffix) {
		config.Theme.Suffix = defaultSuffix
	}
	config.Theme.DefaultAccent = strings.ToLower(strings.TrimSpace(config.Theme.DefaultAccent))

	candidates := config.Theme.SuffixCandidates[:0]
	for _, c := range config.Theme.SuffixCandidates {
		if c = strings.TrimSpace(c); c != "" {
			candidates = append(candidates, c)
		}
	}
	config.Theme.SuffixCandidates = candidates

	if config.State.CacheFile == "" {
		config.State.CacheFile = DefaultConfig().State.CacheFile
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Theme.SuffixCandidates = append([]string(nil), m.config.Theme.SuffixCandidates...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Created reports whether Load wrote a fresh default config file.
func (m *Manager) Created() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file %s already exists", configFile)
	}

	if err := WriteConfig(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.created = true

	if schemaFile, err := GetSchemaFile(); err == nil {
		// The schema is an editor aid; a failure here must not block startup.
		_ = WriteSchemaFile(schemaFile)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setThemeDefaults(defaults)
	m.setShellDefaults(defaults)
	m.setStateDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}

func (m *Manager) setThemeDefaults(defaults *Config) {
	m.viper.SetDefault("theme.themes_dir", defaults.Theme.ThemesDir)
	m.viper.SetDefault("theme.icons_dir", defaults.Theme.IconsDir)
	m.viper.SetDefault("theme.gtk4_config_dir", defaults.Theme.GTK4ConfigDir)
	m.viper.SetDefault("theme.suffix", defaults.Theme.Suffix)
	m.viper.SetDefault("theme.suffix_candidates", defaults.Theme.SuffixCandidates)
	m.viper.SetDefault("theme.default_accent", defaults.Theme.DefaultAccent)
}

func (m *Manager) setShellDefaults(defaults *Config) {
	m.viper.SetDefault("shell.enabled", defaults.Shell.Enabled)
	m.viper.SetDefault("shell.extension_schema_dir", defaults.Shell.ExtensionSchemaDir)
}

func (m *Manager) setStateDefaults(defaults *Config) {
	m.viper.SetDefault("state.cache_file", defaults.State.CacheFile)
}

// New returns a new default configuration instance.
func New() *Config {
	return DefaultConfig()
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil || globalManager.config == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	return globalManager
}
