package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// WatchConfig holds the session-constant inputs of the watcher.
type WatchConfig struct {
	// DefaultAccent is used whenever accent-color cannot be read.
	DefaultAccent entity.Accent
	// Suffix is appended to window/shell theme names for the whole session.
	Suffix string
	// Clock stamps derived states. Defaults to time.Now.
	Clock port.Clock
}

// WatchPreferencesUseCase keeps the theme bundle in sync with the
// color-scheme and accent-color preferences.
type WatchPreferencesUseCase struct {
	prefs      port.PreferenceStore
	reconciler *ReconcileThemeUseCase
	store      port.ThemeStateStore
	drift      *DetectDriftUseCase

	defaultAccent entity.Accent
	suffix        string
	clock         port.Clock

	// mu serializes HandleChange so compare-then-apply stays atomic.
	mu sync.Mutex
	// current is the state applied by the last successful cycle.
	current entity.ThemeState
	// requested is the candidate that produced current, before the icon
	// fallback. Change events are compared against it.
	requested entity.ThemeState

	ctx             context.Context
	unsubscribe     []func()
	accentAvailable bool
}

// NewWatchPreferencesUseCase creates a new WatchPreferencesUseCase.
// drift may be nil.
func NewWatchPreferencesUseCase(
	prefs port.PreferenceStore,
	reconciler *ReconcileThemeUseCase,
	store port.ThemeStateStore,
	drift *DetectDriftUseCase,
	cfg WatchConfig,
) *WatchPreferencesUseCase {
	if cfg.DefaultAccent == "" {
		cfg.DefaultAccent = entity.DefaultAccent
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &WatchPreferencesUseCase{
		prefs:         prefs,
		reconciler:    reconciler,
		store:         store,
		drift:         drift,
		defaultAccent: cfg.DefaultAccent,
		suffix:        cfg.Suffix,
		clock:         cfg.Clock,
	}
}

// WatchStartOutput describes how the watcher started.
type WatchStartOutput struct {
	// AccentAvailable is false on systems without the accent-color key.
	AccentAvailable bool
	// Initial is the result of the startup sync; nil if preferences could
	// not be read.
	Initial *entity.ReconcileResult
}

// Start subscribes to preference changes and runs the startup sync.
// It fails only when the interface schema or its color-scheme key is
// unusable.
func (uc *WatchPreferencesUseCase) Start(ctx context.Context) (*WatchStartOutput, error) {
	ctx = logging.WithComponent(ctx, "watcher")
	log := logging.FromContext(ctx)

	if !uc.prefs.HasSchema(port.InterfaceSchema) {
		return nil, fmt.Errorf("%s: %w", port.InterfaceSchema, port.ErrSchemaNotFound)
	}

	uc.mu.Lock()
	uc.ctx = ctx
	uc.mu.Unlock()

	unsubMode, err := uc.prefs.Subscribe(port.InterfaceSchema, port.ColorSchemeKey, uc.onChange)
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", port.ColorSchemeKey, err)
	}
	uc.unsubscribe = append(uc.unsubscribe, unsubMode)

	uc.accentAvailable = uc.prefs.HasKey(port.InterfaceSchema, port.AccentColorKey)
	if uc.accentAvailable {
		unsubAccent, subErr := uc.prefs.Subscribe(port.InterfaceSchema, port.AccentColorKey, uc.onChange)
		if subErr != nil {
			log.Warn().Err(subErr).Msg("cannot watch accent color, using default accent")
			uc.accentAvailable = false
		} else {
			uc.unsubscribe = append(uc.unsubscribe, unsubAccent)
		}
	}

	if uc.accentAvailable {
		log.Info().Msg("monitoring color-scheme and accent-color")
	} else {
		log.Info().Str("default_accent", string(uc.defaultAccent)).Msg("monitoring color-scheme only, accent-color unavailable")
	}

	if uc.drift != nil {
		report := uc.drift.Execute(ctx)
		logDrift(ctx, report)
	}

	out := &WatchStartOutput{AccentAvailable: uc.accentAvailable}
	if change := uc.HandleChange(ctx); change != nil {
		out.Initial = change.Result
	}
	return out, nil
}

// Stop removes all subscriptions.
func (uc *WatchPreferencesUseCase) Stop() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, unsub := range uc.unsubscribe {
		unsub()
	}
	uc.unsubscribe = nil
}

// Current returns the state applied by the last successful cycle.
func (uc *WatchPreferencesUseCase) Current() (entity.ThemeState, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.current, !uc.current.IsZero()
}

func (uc *WatchPreferencesUseCase) onChange() {
	uc.mu.Lock()
	ctx := uc.ctx
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().Msg("preference change notification")
	uc.HandleChange(ctx)
}

// HandleChangeOutput describes one change event.
type HandleChangeOutput struct {
	Candidate entity.ThemeState
	// Reconciled is false when the candidate equals the current state.
	Reconciled bool
	Result     *entity.ReconcileResult
	Saved      bool
}

// HandleChange re-reads both preferences and reconciles when the derived
// state differs from the current one. It returns nil when the preferences
// cannot be read. Errors never escape; the next change event is the only
// retry.
func (uc *WatchPreferencesUseCase) HandleChange(ctx context.Context) *HandleChangeOutput {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	reading, err := readPreferences(ctx, uc.prefs, uc.defaultAccent)
	if err != nil {
		log.Error().Err(err).Msg("failed to read preferences")
		return nil
	}

	candidate := entity.NewThemeState(reading.Mode, reading.Accent, uc.suffix, uc.clock())
	out := &HandleChangeOutput{Candidate: candidate}

	if !uc.requested.IsZero() && uc.requested.Equal(candidate) {
		log.Debug().Str("window_theme", candidate.WindowTheme()).Msg("no theme changes needed")
		return out
	}

	log.Info().
		Str("color_scheme", reading.RawColorScheme).
		Str("accent", string(reading.Accent)).
		Bool("accent_default", reading.AccentFromDefault).
		Str("window_theme", candidate.WindowTheme()).
		Str("icon_theme", candidate.IconTheme()).
		Msg("preferences changed")

	out.Reconciled = true
	out.Result, out.Saved = reconcileAndRecord(ctx, uc.reconciler, uc.store, candidate)
	if out.Result.Success {
		uc.current = out.Result.State
		uc.requested = candidate
	}
	return out
}

func logDrift(ctx context.Context, report *entity.DriftReport) {
	log := logging.FromContext(ctx)
	if report == nil || report.Cached == nil {
		log.Debug().Msg("no cached theme state")
		return
	}
	if !report.HasDrift() {
		log.Debug().Time("recorded_at", report.Cached.Timestamp).Msg("live themes match cached state")
		return
	}
	for _, e := range report.Entries {
		log.Info().
			Str("component", string(e.Component)).
			Str("recorded", e.Recorded).
			Str("live", e.Live).
			Msg("theme changed outside themesync")
	}
}
