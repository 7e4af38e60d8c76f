package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetThemeDefaults(t *testing.T) {
	root := isolateXDG(t)

	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, filepath.Join(root, ".themes"), mgr.viper.GetString("theme.themes_dir"))
	assert.Equal(t, filepath.Join(root, "data", "icons"), mgr.viper.GetString("theme.icons_dir"))
	assert.Equal(t, filepath.Join(root, "config", "gtk-4.0"), mgr.viper.GetString("theme.gtk4_config_dir"))
	assert.Equal(t, "auto", mgr.viper.GetString("theme.suffix"))
	assert.Equal(t, []string{"-Compact"}, mgr.viper.GetStringSlice("theme.suffix_candidates"))
	assert.Equal(t, "blue", mgr.viper.GetString("theme.default_accent"))
	assert.True(t, mgr.viper.GetBool("shell.enabled"))
	assert.Equal(t, filepath.Join(root, "cache", "themesync", "state.json"), mgr.viper.GetString("state.cache_file"))
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.True(t, mgr.Created())
	assert.FileExists(t, filepath.Join(root, "config", "themesync", "config.toml"))
	assert.FileExists(t, filepath.Join(root, "config", "themesync", "config.schema.json"))

	cfg := mgr.Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "auto", cfg.Theme.Suffix)
	assert.Equal(t, filepath.Join(root, ".themes"), cfg.Theme.ThemesDir)
}

func TestManager_LoadReadsExistingFile(t *testing.T) {
	root := isolateXDG(t)
	configDir := filepath.Join(root, "config", "themesync")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[logging]
level = "DEBUG"

[theme]
themes_dir = "~/custom-themes"
suffix = ""
default_accent = "Purple"

[shell]
enabled = false
`), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.False(t, mgr.Created())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(root, "custom-themes"), cfg.Theme.ThemesDir)
	assert.Equal(t, "", cfg.Theme.Suffix)
	assert.Equal(t, "purple", cfg.Theme.DefaultAccent)
	assert.False(t, cfg.Shell.Enabled)
}

func TestManager_EnvOverridesLogLevel(t *testing.T) {
	isolateXDG(t)
	t.Setenv("THEMESYNC_LOG_LEVEL", "trace")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "trace", mgr.Get().Logging.Level)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	root := isolateXDG(t)
	configDir := filepath.Join(root, "config", "themesync")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[theme]
default_accent = "magenta"
`), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme.default_accent")
}

func TestGetReturnsCopy(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Theme.SuffixCandidates[0] = "-Mutated"
	cfg.Logging.Level = "error"

	again := mgr.Get()
	assert.Equal(t, "-Compact", again.Theme.SuffixCandidates[0])
	assert.Equal(t, "info", again.Logging.Level)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", "themesync"), dirs.ConfigHome)
	assert.Equal(t, dirs.ConfigHome, dirs.CacheHome)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	assert.Equal(t, "/home/tester", ExpandHome("~"))
	assert.Equal(t, "/home/tester/.themes", ExpandHome("~/.themes"))
	assert.Equal(t, "/opt/themes", ExpandHome("/opt/themes"))
	assert.Equal(t, "~other/x", ExpandHome("~other/x"))
}
