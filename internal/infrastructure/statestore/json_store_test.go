package statestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStore_SaveCreatesParentsAndLoads(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "themesync", "state.json")
	store := NewJSONStore(path)

	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	state := entity.NewThemeState(entity.ModeDark, entity.AccentPurple, "", now)

	require.NoError(t, store.Save(ctx, state))

	cached, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "prefer-dark", cached.ColorScheme)
	assert.Equal(t, "purple", cached.AccentColor)
	assert.Equal(t, "Orchis-Purple-Dark", cached.GTKTheme)
	assert.Equal(t, "Orchis-Purple-Dark", cached.ShellTheme)
	assert.Equal(t, "Tela-purple-dark", cached.IconTheme)
	assert.True(t, now.Equal(cached.Timestamp))
}

func TestJSONStore_FileFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewJSONStore(path)

	require.NoError(t, store.Save(ctx, entity.NewThemeState(entity.ModeLight, entity.AccentBlue, "-Compact", time.Now())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, field := range []string{"color_scheme", "accent_color", "theme_suffix", "gtk_theme", "shell_theme", "icon_theme", "timestamp"} {
		assert.Contains(t, raw, field)
	}
	assert.Equal(t, "-Compact", raw["theme_suffix"])
}

func TestJSONStore_LoadMissing(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "none.json"))

	cached, ok := store.Load(context.Background())
	assert.False(t, ok)
	assert.Nil(t, cached)
}

func TestJSONStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	cached, ok := NewJSONStore(path).Load(context.Background())
	assert.False(t, ok)
	assert.Nil(t, cached)
}

func TestJSONStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(filepath.Join(dir, "state.json"))

	require.NoError(t, store.Save(context.Background(), entity.NewThemeState(entity.ModeDark, entity.AccentRed, "", time.Now())))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "state.json", entries[0].Name())
}
