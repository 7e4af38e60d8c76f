package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "themesync"
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"
)

// BaseDirs holds the unscoped XDG base directories. Theme assets live in
// these shared locations rather than under the application directories.
type BaseDirs struct {
	Home       string
	ConfigHome string
	DataHome   string
	CacheHome  string
	StateHome  string
}

// XDGDirs holds the XDG Base Directory paths for themesync.
type XDGDirs struct {
	ConfigHome string
	CacheHome  string
	StateHome  string
}

// GetBaseDirs resolves the XDG base directories with their documented fallbacks.
func GetBaseDirs() (*BaseDirs, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &BaseDirs{
		Home:       homeDir,
		ConfigHome: envOr("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config")),
		DataHome:   envOr("XDG_DATA_HOME", filepath.Join(homeDir, ".local", "share")),
		CacheHome:  envOr("XDG_CACHE_HOME", filepath.Join(homeDir, ".cache")),
		StateHome:  envOr("XDG_STATE_HOME", filepath.Join(homeDir, ".local", "state")),
	}, nil
}

// GetXDGDirs returns the XDG Base Directory paths for themesync:
// - $XDG_CONFIG_HOME/themesync (default: ~/.config/themesync)
// - $XDG_CACHE_HOME/themesync (default: ~/.cache/themesync)
// - $XDG_STATE_HOME/themesync (default: ~/.local/state/themesync)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			CacheHome:  devDir,
			StateHome:  devDir,
		}, nil
	}

	base, err := GetBaseDirs()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(base.ConfigHome, appName),
		CacheHome:  filepath.Join(base.CacheHome, appName),
		StateHome:  filepath.Join(base.StateHome, appName),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetConfigDir returns the XDG config directory for themesync.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetStateDir returns the XDG state directory for themesync.
func GetStateDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// GetCacheDir returns the XDG cache directory for themesync.
func GetCacheDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.CacheHome, nil
}

// GetLogDir returns the log directory. Logs are state, not cache.
func GetLogDir() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "logs"), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}

// GetSchemaFile returns the path of the generated JSON schema.
func GetSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, schemaFileName), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !hasHomePrefix(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && path[1] == '/'
}

// EnsureDirectories creates the themesync config directory.
func EnsureDirectories() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(configDir, dirPerm)
}

// GetManDir returns the user man page directory for section 1.
func GetManDir() (string, error) {
	base, err := GetBaseDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(base.DataHome, "man", "man1"), nil
}
