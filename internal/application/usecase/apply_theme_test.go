package usecase_test

import (
	"testing"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/application/port/mocks"
	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplyThemeUseCase_AppliesCurrentPreferences(t *testing.T) {
	ctx := testContext()
	prefs := gnomeDesktop("prefer-dark", "purple")
	fs := newMemFS()
	fs.install(darkPurple())

	store := mocks.NewMockThemeStateStore(t)
	store.EXPECT().Save(mock.Anything, windowIs("Orchis-Purple-Dark")).Return(nil).Once()

	uc := usecase.NewApplyThemeUseCase(prefs, newReconciler(prefs, fs), store, fixedClock)
	out, err := uc.Execute(ctx, usecase.ApplyThemeInput{})

	require.NoError(t, err)
	assert.True(t, out.Result.Success)
	assert.True(t, out.Saved)
	assert.Equal(t, "prefer-dark", out.Preferences.RawColorScheme)
}

func TestApplyThemeUseCase_WritesOverridesFirst(t *testing.T) {
	ctx := testContext()
	prefs := gnomeDesktop("prefer-light", "blue")
	fs := newMemFS()
	fs.install(darkPurple())

	store := mocks.NewMockThemeStateStore(t)
	store.EXPECT().Save(mock.Anything, windowIs("Orchis-Purple-Dark")).Return(nil).Once()

	mode := entity.ModeDark
	accent := entity.AccentPurple
	uc := usecase.NewApplyThemeUseCase(prefs, newReconciler(prefs, fs), store, fixedClock)
	out, err := uc.Execute(ctx, usecase.ApplyThemeInput{Mode: &mode, Accent: &accent})

	require.NoError(t, err)
	assert.True(t, out.Result.Success)
	assert.Equal(t, "prefer-dark", prefs.value(port.InterfaceSchema, port.ColorSchemeKey))
	assert.Equal(t, "purple", prefs.value(port.InterfaceSchema, port.AccentColorKey))
}

func TestApplyThemeUseCase_DryRunWritesNothing(t *testing.T) {
	ctx := testContext()
	prefs := gnomeDesktop("prefer-light", "blue")
	fs := newMemFS()

	store := mocks.NewMockThemeStateStore(t)

	mode := entity.ModeDark
	uc := usecase.NewApplyThemeUseCase(prefs, newReconciler(prefs, fs), store, fixedClock)
	out, err := uc.Execute(ctx, usecase.ApplyThemeInput{Mode: &mode, DryRun: true})

	require.NoError(t, err)
	assert.Nil(t, out.Result)
	require.NotNil(t, out.Validation)
	assert.False(t, out.Validation.OK)
	assert.Equal(t, "Orchis-Dark", out.Candidate.WindowTheme())
	assert.Equal(t, 0, prefs.totalWrites())
	assert.Equal(t, "prefer-light", prefs.value(port.InterfaceSchema, port.ColorSchemeKey))
}

func TestApplyThemeUseCase_Errors(t *testing.T) {
	t.Run("interface schema missing", func(t *testing.T) {
		uc := usecase.NewApplyThemeUseCase(newFakePrefs(), newReconciler(newFakePrefs(), newMemFS()), nil, nil)

		_, err := uc.Execute(testContext(), usecase.ApplyThemeInput{})

		assert.ErrorIs(t, err, port.ErrSchemaNotFound)
	})

	t.Run("accent override without accent key", func(t *testing.T) {
		prefs := gnomeDesktop("prefer-light", "")
		prefs.removeKey(port.InterfaceSchema, port.AccentColorKey)
		accent := entity.AccentRed

		uc := usecase.NewApplyThemeUseCase(prefs, newReconciler(prefs, newMemFS()), nil, nil)
		_, err := uc.Execute(testContext(), usecase.ApplyThemeInput{Accent: &accent})

		assert.ErrorIs(t, err, port.ErrKeyNotFound)
		assert.Equal(t, 0, prefs.totalWrites())
	})

	t.Run("rejected mode write", func(t *testing.T) {
		prefs := gnomeDesktop("prefer-light", "blue")
		prefs.failSet[port.ColorSchemeKey] = port.ErrWriteRejected
		mode := entity.ModeDark

		uc := usecase.NewApplyThemeUseCase(prefs, newReconciler(prefs, newMemFS()), nil, nil)
		_, err := uc.Execute(testContext(), usecase.ApplyThemeInput{Mode: &mode})

		assert.ErrorIs(t, err, port.ErrWriteRejected)
	})
}
