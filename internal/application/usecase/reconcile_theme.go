package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// ReconcileThemeUseCase applies a ThemeState to every subsystem.
//
// Components are applied independently: a failure in one never prevents
// the others from being attempted, and nothing already applied is rolled
// back. Only the window and icon themes decide the overall result.
type ReconcileThemeUseCase struct {
	prefs     port.PreferenceStore
	validator *ValidateAssetsUseCase
	linker    *LinkStyleOverrideUseCase
}

// NewReconcileThemeUseCase creates a new ReconcileThemeUseCase.
func NewReconcileThemeUseCase(
	prefs port.PreferenceStore,
	validator *ValidateAssetsUseCase,
	linker *LinkStyleOverrideUseCase,
) *ReconcileThemeUseCase {
	return &ReconcileThemeUseCase{
		prefs:     prefs,
		validator: validator,
		linker:    linker,
	}
}

// Execute validates state and applies it. The returned result carries the
// state actually applied, which may differ from the input by the icon
// fallback.
func (uc *ReconcileThemeUseCase) Execute(ctx context.Context, state entity.ThemeState) *entity.ReconcileResult {
	ctx = logging.WithComponent(ctx, "reconciler")
	log := logging.FromContext(ctx)

	validation := uc.validator.Execute(ctx, state)
	result := entity.NewReconcileResult(validation.State)
	if !validation.OK {
		result.Issues = validation.Issues
		result.Finalize()
		log.Warn().Str("window_theme", state.WindowTheme()).Msg("validation failed, nothing applied")
		return result
	}
	state = validation.State

	result.Record(entity.ComponentWindow, uc.guard(ctx, entity.ComponentWindow, func() entity.ComponentOutcome {
		return uc.applyKey(ctx, port.InterfaceSchema, port.GTKThemeKey, state.WindowTheme())
	}))
	result.Record(entity.ComponentShell, uc.guard(ctx, entity.ComponentShell, func() entity.ComponentOutcome {
		return uc.applyShell(ctx, state)
	}))
	result.Record(entity.ComponentStyleSymlink, uc.guard(ctx, entity.ComponentStyleSymlink, func() entity.ComponentOutcome {
		return uc.applyStyle(ctx, state)
	}))
	result.Record(entity.ComponentIcon, uc.guard(ctx, entity.ComponentIcon, func() entity.ComponentOutcome {
		return uc.applyKey(ctx, port.InterfaceSchema, port.IconThemeKey, state.IconTheme())
	}))
	result.Finalize()

	event := log.Info()
	if !result.Success {
		event = log.Error()
	}
	event.
		Str("window_theme", state.WindowTheme()).
		Str("icon_theme", state.IconTheme()).
		Dict("components", outcomesDict(result)).
		Bool("changed", result.Changed()).
		Bool("success", result.Success).
		Msg("reconciliation finished")

	return result
}

// guard turns a panic inside a component into a failed outcome. Tolerated
// components still count as success.
func (uc *ReconcileThemeUseCase) guard(
	ctx context.Context,
	component entity.Component,
	apply func() entity.ComponentOutcome,
) (outcome entity.ComponentOutcome) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error().
				Str("component", string(component)).
				Interface("panic", r).
				Msg("component apply panicked")
			outcome = entity.ComponentOutcome{
				OK:      !component.LoadBearing(),
				Skipped: !component.LoadBearing(),
				Err:     fmt.Errorf("%s: panic: %v", component, r),
			}
		}
	}()
	return apply()
}

// applyKey writes value unless the key already holds it.
func (uc *ReconcileThemeUseCase) applyKey(ctx context.Context, schema, key, value string) entity.ComponentOutcome {
	log := logging.FromContext(ctx)

	current, err := uc.prefs.GetString(schema, key)
	if err == nil && current == value {
		log.Debug().Str("key", key).Str("value", value).Msg("already applied")
		return entity.ComponentOutcome{OK: true}
	}
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("could not read current value, writing anyway")
	}

	if err := uc.prefs.SetString(schema, key, value); err != nil {
		log.Error().Err(err).Str("schema", schema).Str("key", key).Str("value", value).Msg("failed to apply")
		return entity.ComponentOutcome{OK: false, Err: err}
	}
	log.Info().Str("key", key).Str("from", current).Str("to", value).Msg("applied")
	return entity.ComponentOutcome{OK: true, Changed: true}
}

func (uc *ReconcileThemeUseCase) applyShell(ctx context.Context, state entity.ThemeState) entity.ComponentOutcome {
	log := logging.FromContext(ctx)

	if !uc.prefs.HasSchema(port.ShellSchema) {
		log.Debug().Msg("shell theme extension unavailable, skipping")
		return entity.ComponentOutcome{OK: true, Skipped: true}
	}

	outcome := uc.applyKey(ctx, port.ShellSchema, port.ShellThemeKey, state.ShellTheme())
	if !outcome.OK {
		log.Warn().Err(outcome.Err).Msg("shell theme not applied, continuing")
		outcome.OK = true
		outcome.Skipped = true
	}
	return outcome
}

func (uc *ReconcileThemeUseCase) applyStyle(ctx context.Context, state entity.ThemeState) entity.ComponentOutcome {
	out, err := uc.linker.Execute(ctx, state)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("style override not linked, continuing")
		return entity.ComponentOutcome{OK: true, Skipped: true, Err: err, Changed: out != nil && len(out.Replaced) > 0}
	}
	if out.Skipped {
		return entity.ComponentOutcome{OK: true, Skipped: true}
	}
	return entity.ComponentOutcome{OK: true, Changed: len(out.Replaced) > 0}
}

func outcomesDict(result *entity.ReconcileResult) *zerolog.Event {
	dict := zerolog.Dict()
	for _, c := range entity.Components() {
		if o, ok := result.Components[c]; ok {
			dict = dict.Bool(string(c), o.OK)
		}
	}
	return dict
}
