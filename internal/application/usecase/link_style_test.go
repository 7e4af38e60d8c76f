package usecase_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkStyleOverrideUseCase_Execute(t *testing.T) {
	state := darkPurple()
	source := state.StylePath(testPaths.ThemesDir)

	t.Run("creates all links", func(t *testing.T) {
		fs := newMemFS()
		fs.install(state)

		out, err := usecase.NewLinkStyleOverrideUseCase(fs, testPaths).Execute(testContext(), state)

		require.NoError(t, err)
		assert.Equal(t, source, out.Source)
		assert.Len(t, out.Replaced, 3)
		assert.Equal(t, filepath.Join(source, "assets"), fs.linkTarget(filepath.Join(testPaths.GTK4ConfigDir, "assets")))
	})

	t.Run("keeps correct links", func(t *testing.T) {
		fs := newMemFS()
		fs.install(state)
		fs.links[filepath.Join(testPaths.GTK4ConfigDir, "gtk.css")] = filepath.Join(source, "gtk.css")
		fs.links[filepath.Join(testPaths.GTK4ConfigDir, "gtk-dark.css")] = "/elsewhere/gtk-dark.css"

		out, err := usecase.NewLinkStyleOverrideUseCase(fs, testPaths).Execute(testContext(), state)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(testPaths.GTK4ConfigDir, "gtk-dark.css"),
			filepath.Join(testPaths.GTK4ConfigDir, "assets"),
		}, out.Replaced)
	})

	t.Run("source missing is skipped", func(t *testing.T) {
		fs := newMemFS()

		out, err := usecase.NewLinkStyleOverrideUseCase(fs, testPaths).Execute(testContext(), state)

		require.NoError(t, err)
		assert.True(t, out.Skipped)
		assert.Equal(t, 0, fs.calls())
	})

	t.Run("failures are joined", func(t *testing.T) {
		fs := newMemFS()
		fs.install(state)
		boom := errors.New("permission denied")
		fs.failLinks[filepath.Join(testPaths.GTK4ConfigDir, "gtk.css")] = boom
		fs.failLinks[filepath.Join(testPaths.GTK4ConfigDir, "assets")] = boom

		out, err := usecase.NewLinkStyleOverrideUseCase(fs, testPaths).Execute(testContext(), state)

		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{filepath.Join(testPaths.GTK4ConfigDir, "gtk-dark.css")}, out.Replaced)
	})
}
