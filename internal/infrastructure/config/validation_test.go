package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Theme.ThemesDir = "/home/u/.themes"
	cfg.Theme.IconsDir = "/home/u/.local/share/icons"
	cfg.Theme.GTK4ConfigDir = "/home/u/.config/gtk-4.0"
	cfg.State.CacheFile = "/home/u/.cache/themesync/state.json"
	return cfg
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"literal suffix", func(c *Config) { c.Theme.Suffix = "-Compact" }, ""},
		{"empty suffix", func(c *Config) { c.Theme.Suffix = "" }, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"zero log size", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb"},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.max_backups"},
		{"relative themes dir", func(c *Config) { c.Theme.ThemesDir = "themes" }, "theme.themes_dir"},
		{"empty icons dir", func(c *Config) { c.Theme.IconsDir = "" }, "theme.icons_dir"},
		{"suffix with slash", func(c *Config) { c.Theme.Suffix = "-Compact/x" }, "theme.suffix"},
		{"auto as candidate", func(c *Config) { c.Theme.SuffixCandidates = []string{"auto"} }, "theme.suffix_candidates[0]"},
		{"unknown accent", func(c *Config) { c.Theme.DefaultAccent = "magenta" }, "theme.default_accent"},
		{"relative schema dir", func(c *Config) { c.Shell.ExtensionSchemaDir = "schemas" }, "shell.extension_schema_dir"},
		{"relative cache file", func(c *Config) { c.State.CacheFile = "state.json" }, "state.cache_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"
	cfg.Theme.DefaultAccent = "magenta"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed:\n  - ")
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "theme.default_accent")
}

func TestNormalizeConfig(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cfg := validConfig()
	cfg.Logging.Level = " WARN "
	cfg.Logging.Format = ""
	cfg.Theme.Suffix = "AUTO"
	cfg.Theme.DefaultAccent = " Teal"
	cfg.Theme.ThemesDir = "~/.themes"
	cfg.Theme.SuffixCandidates = []string{" -Compact ", "", "-Solid"}

	normalizeConfig(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "auto", cfg.Theme.Suffix)
	assert.Equal(t, "teal", cfg.Theme.DefaultAccent)
	assert.Equal(t, "/home/tester/.themes", cfg.Theme.ThemesDir)
	assert.Equal(t, []string{"-Compact", "-Solid"}, cfg.Theme.SuffixCandidates)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	schema := string(data)
	assert.Contains(t, schema, schemaID)
	assert.Contains(t, schema, "suffix_candidates")
	assert.Contains(t, schema, "extension_schema_dir")
	assert.Contains(t, schema, "cache_file")
}
