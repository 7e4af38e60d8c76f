package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// ApplyThemeUseCase runs a single reconciliation outside the daemon,
// optionally changing the preferences first.
type ApplyThemeUseCase struct {
	prefs      port.PreferenceStore
	reconciler *ReconcileThemeUseCase
	store      port.ThemeStateStore
	clock      port.Clock
}

// NewApplyThemeUseCase creates a new ApplyThemeUseCase.
func NewApplyThemeUseCase(
	prefs port.PreferenceStore,
	reconciler *ReconcileThemeUseCase,
	store port.ThemeStateStore,
	clock port.Clock,
) *ApplyThemeUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &ApplyThemeUseCase{prefs: prefs, reconciler: reconciler, store: store, clock: clock}
}

// ApplyThemeInput contains the one-shot parameters.
type ApplyThemeInput struct {
	// Mode, when set, is written to color-scheme before reconciling.
	Mode *entity.Mode
	// Accent, when set, is written to accent-color before reconciling.
	Accent        *entity.Accent
	DefaultAccent entity.Accent
	Suffix        string
	// DryRun derives and validates without writing anything.
	DryRun bool
}

// ApplyThemeOutput contains the reconciliation outcome.
type ApplyThemeOutput struct {
	Preferences PreferenceReading
	Candidate   entity.ThemeState
	Validation  *ValidateAssetsOutput
	Result      *entity.ReconcileResult
	Saved       bool
}

// Execute reads the preferences (after applying overrides) and reconciles.
func (uc *ApplyThemeUseCase) Execute(ctx context.Context, input ApplyThemeInput) (*ApplyThemeOutput, error) {
	log := logging.FromContext(ctx)

	if !uc.prefs.HasSchema(port.InterfaceSchema) {
		return nil, fmt.Errorf("%s: %w", port.InterfaceSchema, port.ErrSchemaNotFound)
	}
	if input.DefaultAccent == "" {
		input.DefaultAccent = entity.DefaultAccent
	}

	if !input.DryRun {
		if err := uc.writeOverrides(ctx, input); err != nil {
			return nil, err
		}
	}

	reading, err := readPreferences(ctx, uc.prefs, input.DefaultAccent)
	if err != nil {
		return nil, err
	}
	if input.DryRun {
		if input.Mode != nil {
			reading.Mode = *input.Mode
		}
		if input.Accent != nil {
			reading.Accent = *input.Accent
		}
	}

	candidate := entity.NewThemeState(reading.Mode, reading.Accent, input.Suffix, uc.clock())
	out := &ApplyThemeOutput{Preferences: reading, Candidate: candidate}

	if input.DryRun {
		validation := uc.reconciler.validator.Execute(ctx, candidate)
		out.Validation = &validation
		return out, nil
	}

	out.Result, out.Saved = reconcileAndRecord(ctx, uc.reconciler, uc.store, candidate)
	log.Debug().Bool("success", out.Result.Success).Bool("saved", out.Saved).Msg("one-shot apply finished")
	return out, nil
}

func (uc *ApplyThemeUseCase) writeOverrides(ctx context.Context, input ApplyThemeInput) error {
	log := logging.FromContext(ctx)

	if input.Mode != nil {
		if err := uc.prefs.SetString(port.InterfaceSchema, port.ColorSchemeKey, input.Mode.ColorScheme()); err != nil {
			return fmt.Errorf("set %s: %w", port.ColorSchemeKey, err)
		}
		log.Info().Str("color_scheme", input.Mode.ColorScheme()).Msg("color scheme set")
	}
	if input.Accent != nil {
		if !uc.prefs.HasKey(port.InterfaceSchema, port.AccentColorKey) {
			return fmt.Errorf("set %s: %w", port.AccentColorKey, port.ErrKeyNotFound)
		}
		if err := uc.prefs.SetString(port.InterfaceSchema, port.AccentColorKey, string(*input.Accent)); err != nil {
			return fmt.Errorf("set %s: %w", port.AccentColorKey, err)
		}
		log.Info().Str("accent_color", string(*input.Accent)).Msg("accent color set")
	}
	return nil
}
