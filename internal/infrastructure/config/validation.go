package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/themesync/internal/domain/entity"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json", "text"}
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateTheme(config)...)
	validationErrors = append(validationErrors, validateShell(config)...)
	validationErrors = append(validationErrors, validateState(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of %s (got %q)", strings.Join(validLogLevels, ", "), config.Logging.Level))
	}
	if !contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of %s (got %q)", strings.Join(validLogFormats, ", "), config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateTheme(config *Config) []string {
	var validationErrors []string

	validationErrors = append(validationErrors, validateAbsDir("theme.themes_dir", config.Theme.ThemesDir)...)
	validationErrors = append(validationErrors, validateAbsDir("theme.icons_dir", config.Theme.IconsDir)...)
	validationErrors = append(validationErrors, validateAbsDir("theme.gtk4_config_dir", config.Theme.GTK4ConfigDir)...)

	if config.Theme.Suffix != defaultSuffix {
		validationErrors = append(validationErrors, validateSuffix("theme.suffix", config.Theme.Suffix)...)
	}
	for i, c := range config.Theme.SuffixCandidates {
		validationErrors = append(validationErrors, validateSuffix(fmt.Sprintf("theme.suffix_candidates[%d]", i), c)...)
	}

	if !entity.Accent(config.Theme.DefaultAccent).Known() {
		names := make([]string, 0, len(entity.Accents()))
		for _, a := range entity.Accents() {
			names = append(names, string(a))
		}
		validationErrors = append(validationErrors,
			fmt.Sprintf("theme.default_accent must be one of %s (got %q)", strings.Join(names, ", "), config.Theme.DefaultAccent))
	}
	return validationErrors
}

func validateShell(config *Config) []string {
	if config.Shell.ExtensionSchemaDir == "" {
		return nil
	}
	if !filepath.IsAbs(config.Shell.ExtensionSchemaDir) {
		return []string{"shell.extension_schema_dir must be an absolute path"}
	}
	return nil
}

func validateState(config *Config) []string {
	if config.State.CacheFile == "" {
		return []string{"state.cache_file cannot be empty"}
	}
	if !filepath.IsAbs(config.State.CacheFile) {
		return []string{"state.cache_file must be an absolute path"}
	}
	return nil
}

func validateAbsDir(key, path string) []string {
	if path == "" {
		return []string{key + " cannot be empty"}
	}
	if !filepath.IsAbs(path) {
		return []string{key + " must be an absolute path"}
	}
	return nil
}

// A suffix is appended to a directory name, so it must stay one path element.
func validateSuffix(key, suffix string) []string {
	if suffix == "" {
		return nil
	}
	if strings.ContainsAny(suffix, "/\\") || strings.TrimSpace(suffix) != suffix {
		return []string{fmt.Sprintf("%s must be a plain name fragment (got %q)", key, suffix)}
	}
	if suffix == defaultSuffix {
		return []string{fmt.Sprintf("%s cannot be %q", key, defaultSuffix)}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
