package usecase_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func darkPurple() entity.ThemeState {
	return entity.NewThemeState(entity.ModeDark, entity.AccentPurple, "", time.Unix(1700000000, 0))
}

func TestReconcileThemeUseCase_AppliesEveryComponent(t *testing.T) {
	ctx := testContext()
	prefs := gnomeDesktop("prefer-dark", "purple")
	fs := newMemFS()
	state := darkPurple()
	fs.install(state)

	result := newReconciler(prefs, fs).Execute(ctx, state)

	require.True(t, result.Success)
	assert.True(t, result.Changed())
	assert.Equal(t, map[entity.Component]bool{
		entity.ComponentWindow:       true,
		entity.ComponentShell:        true,
		entity.ComponentStyleSymlink: true,
		entity.ComponentIcon:         true,
	}, result.Outcomes())

	assert.Equal(t, "Orchis-Purple-Dark", prefs.value(port.InterfaceSchema, port.GTKThemeKey))
	assert.Equal(t, "Tela-purple-dark", prefs.value(port.InterfaceSchema, port.IconThemeKey))
	assert.Equal(t, "Orchis-Purple-Dark", prefs.value(port.ShellSchema, port.ShellThemeKey))

	source := filepath.Join(testPaths.ThemesDir, "Orchis-Purple-Dark", "gtk-4.0")
	for _, name := range []string{"gtk.css", "gtk-dark.css", "assets"} {
		assert.Equal(t, filepath.Join(source, name), fs.linkTarget(filepath.Join(testPaths.GTK4ConfigDir, name)))
	}
}

func TestReconcileThemeUseCase_SkipsUnchangedValues(t *testing.T) {
	ctx := testContext()
	prefs := gnomeDesktop("prefer-dark", "purple")
	fs := newMemFS()
	state := darkPurple()
	fs.install(state)
	uc := newReconciler(prefs, fs)

	require.True(t, uc.Execute(ctx, state).Success)
	writes := prefs.totalWrites()
	links := fs.calls()

	second := uc.Execute(ctx, state)

	assert.True(t, second.Success)
	assert.False(t, second.Changed())
	assert.Equal(t, writes, prefs.totalWrites(), "no setting may be rewritten")
	assert.Equal(t, links, fs.calls(), "links already in place are left alone")
}

func TestReconcileThemeUseCase_ShellIsOptional(t *testing.T) {
	t.Run("schema missing", func(t *testing.T) {
		ctx := testContext()
		prefs := newFakePrefs()
		prefs.addSchema(port.InterfaceSchema, map[string]string{
			port.ColorSchemeKey: "prefer-dark",
			port.GTKThemeKey:    "",
			port.IconThemeKey:   "",
		})
		fs := newMemFS()
		fs.install(darkPurple())

		result := newReconciler(prefs, fs).Execute(ctx, darkPurple())

		assert.True(t, result.Success)
		assert.True(t, result.Components[entity.ComponentShell].Skipped)
	})

	t.Run("write rejected", func(t *testing.T) {
		ctx := testContext()
		prefs := gnomeDesktop("prefer-dark", "purple")
		prefs.failSet[port.ShellThemeKey] = port.ErrWriteRejected
		fs := newMemFS()
		fs.install(darkPurple())

		result := newReconciler(prefs, fs).Execute(ctx, darkPurple())

		assert.True(t, result.Success)
		shell := result.Components[entity.ComponentShell]
		assert.True(t, shell.OK)
		assert.True(t, shell.Skipped)
		assert.ErrorIs(t, shell.Err, port.ErrWriteRejected)
	})
}

func TestReconcileThemeUseCase_WindowFailureStillAttemptsIcon(t *testing.T) {
	ctx := testContext()
	prefs := gnomeDesktop("prefer-dark", "purple")
	prefs.failSet[port.GTKThemeKey] = port.ErrWriteRejected
	fs := newMemFS()
	fs.install(darkPurple())

	result := newReconciler(prefs, fs).Execute(ctx, darkPurple())

	assert.False(t, result.Success)
	assert.False(t, result.Outcomes()[entity.ComponentWindow])
	assert.True(t, result.Outcomes()[entity.ComponentIcon])
	assert.Equal(t, 1, prefs.writeCount(port.IconThemeKey))
	assert.Equal(t, "Tela-purple-dark", prefs.value(port.InterfaceSchema, port.IconThemeKey))
}

func TestReconcileThemeUseCase_PanicIsContained(t *testing.T) {
	ctx := testContext()
	prefs := gnomeDesktop("prefer-dark", "purple")
	prefs.panicOnSet[port.GTKThemeKey] = true
	fs := newMemFS()
	fs.install(darkPurple())

	var successful bool
	require.NotPanics(t, func() {
		result := newReconciler(prefs, fs).Execute(ctx, darkPurple())
		successful = result.Success
		assert.Error(t, result.Components[entity.ComponentWindow].Err)
		assert.True(t, result.Outcomes()[entity.ComponentIcon])
	})
	assert.False(t, successful)
}

func TestReconcileThemeUseCase_ValidationFailureWritesNothing(t *testing.T) {
	ctx := testContext()
	prefs := gnomeDesktop("prefer-dark", "purple")
	fs := newMemFS()
	state := darkPurple()
	fs.addDir(filepath.Join(testPaths.IconsDir, state.IconTheme()))

	result := newReconciler(prefs, fs).Execute(ctx, state)

	assert.False(t, result.Success)
	assert.True(t, result.ValidationFailed())
	assert.Empty(t, result.Components)
	assert.Equal(t, 0, prefs.totalWrites())
	assert.Equal(t, 0, fs.calls())
}

func TestReconcileThemeUseCase_IconFallback(t *testing.T) {
	ctx := testContext()
	prefs := gnomeDesktop("prefer-dark", "blue")
	fs := newMemFS()
	state := entity.NewThemeState(entity.ModeDark, entity.AccentBlue, "", time.Now())
	fs.installWindow(state.WindowTheme())
	fs.addDir(filepath.Join(testPaths.IconsDir, "Tela-blue-dark"))

	result := newReconciler(prefs, fs).Execute(ctx, state)

	require.True(t, result.Success)
	assert.Equal(t, "Tela-blue-dark", result.State.IconTheme())
	assert.Equal(t, "Tela-blue-dark", prefs.value(port.InterfaceSchema, port.IconThemeKey))
	assert.Equal(t, "Tela-dark", state.IconTheme(), "input state is not mutated")
}

func TestReconcileThemeUseCase_StyleLinkFailureIsTolerated(t *testing.T) {
	ctx := testContext()
	prefs := gnomeDesktop("prefer-dark", "purple")
	fs := newMemFS()
	fs.install(darkPurple())
	fs.failLinks[filepath.Join(testPaths.GTK4ConfigDir, "gtk.css")] = errors.New("read-only file system")

	result := newReconciler(prefs, fs).Execute(ctx, darkPurple())

	assert.True(t, result.Success)
	style := result.Components[entity.ComponentStyleSymlink]
	assert.True(t, style.Skipped)
	assert.Error(t, style.Err)
	assert.Equal(t, 3, fs.calls(), "remaining links are still attempted")
}
