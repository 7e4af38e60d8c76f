package usecase

import (
	"context"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// DetectDriftUseCase compares the cached record with the values the
// subsystems hold right now, to spot manual or external changes.
type DetectDriftUseCase struct {
	prefs port.PreferenceStore
	store port.ThemeStateStore
}

// NewDetectDriftUseCase creates a new DetectDriftUseCase.
func NewDetectDriftUseCase(prefs port.PreferenceStore, store port.ThemeStateStore) *DetectDriftUseCase {
	return &DetectDriftUseCase{prefs: prefs, store: store}
}

// Execute builds the drift report. Unreadable keys are skipped.
func (uc *DetectDriftUseCase) Execute(ctx context.Context) *entity.DriftReport {
	log := logging.FromContext(ctx)

	cached, ok := uc.store.Load(ctx)
	if !ok {
		return &entity.DriftReport{}
	}
	report := &entity.DriftReport{Cached: cached}

	checks := []struct {
		component entity.Component
		schema    string
		key       string
		recorded  string
	}{
		{entity.ComponentWindow, port.InterfaceSchema, port.GTKThemeKey, cached.GTKTheme},
		{entity.ComponentIcon, port.InterfaceSchema, port.IconThemeKey, cached.IconTheme},
		{entity.ComponentShell, port.ShellSchema, port.ShellThemeKey, cached.ShellTheme},
	}

	for _, c := range checks {
		if !uc.prefs.HasSchema(c.schema) {
			continue
		}
		live, err := uc.prefs.GetString(c.schema, c.key)
		if err != nil {
			log.Debug().Err(err).Str("key", c.key).Msg("skipping drift check")
			continue
		}
		if live != c.recorded {
			report.Entries = append(report.Entries, entity.DriftEntry{
				Component: c.component,
				Recorded:  c.recorded,
				Live:      live,
			})
		}
	}
	return report
}
