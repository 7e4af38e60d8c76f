package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// PreferenceReading is one read of the two watched preferences.
type PreferenceReading struct {
	Mode   entity.Mode
	Accent entity.Accent
	// RawColorScheme is the unparsed color-scheme value.
	RawColorScheme string
	// AccentFromDefault is true when accent-color could not be read.
	AccentFromDefault bool
}

// readPreferences reads color-scheme and accent-color. The accent falls
// back to defaultAccent when the key is missing or unreadable; only a
// color-scheme failure is an error.
func readPreferences(ctx context.Context, prefs port.PreferenceStore, defaultAccent entity.Accent) (PreferenceReading, error) {
	log := logging.FromContext(ctx)

	raw, err := prefs.GetString(port.InterfaceSchema, port.ColorSchemeKey)
	if err != nil {
		return PreferenceReading{}, fmt.Errorf("read %s: %w", port.ColorSchemeKey, err)
	}

	reading := PreferenceReading{
		Mode:           entity.ParseMode(raw),
		Accent:         defaultAccent,
		RawColorScheme: raw,
	}

	if !prefs.HasKey(port.InterfaceSchema, port.AccentColorKey) {
		reading.AccentFromDefault = true
		return reading, nil
	}
	accent, err := prefs.GetString(port.InterfaceSchema, port.AccentColorKey)
	if err != nil {
		log.Debug().Err(err).Msg("accent color unreadable, using default")
		reading.AccentFromDefault = true
		return reading, nil
	}
	reading.Accent = entity.ParseAccent(accent)
	return reading, nil
}

// reconcileAndRecord applies state and persists it when the cycle succeeds.
// A save failure is logged; the cache never decides the outcome.
func reconcileAndRecord(
	ctx context.Context,
	reconciler *ReconcileThemeUseCase,
	store port.ThemeStateStore,
	state entity.ThemeState,
) (*entity.ReconcileResult, bool) {
	result := reconciler.Execute(ctx, state)
	if !result.Success || store == nil {
		return result, false
	}
	if err := store.Save(ctx, result.State); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to persist theme state")
		return result, false
	}
	return result, true
}
