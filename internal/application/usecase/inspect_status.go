package usecase

import (
	"context"
	"path/filepath"
	"time"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// InspectStatusUseCase gathers a read-only snapshot of the preferences,
// the bundle they derive and what the subsystems currently hold.
type InspectStatusUseCase struct {
	prefs     port.PreferenceStore
	fs        port.FileSystem
	paths     AssetPaths
	validator *ValidateAssetsUseCase
	drift     *DetectDriftUseCase
	clock     port.Clock
}

// NewInspectStatusUseCase creates a new InspectStatusUseCase.
func NewInspectStatusUseCase(
	prefs port.PreferenceStore,
	fs port.FileSystem,
	paths AssetPaths,
	validator *ValidateAssetsUseCase,
	drift *DetectDriftUseCase,
) *InspectStatusUseCase {
	return &InspectStatusUseCase{
		prefs:     prefs,
		fs:        fs,
		paths:     paths,
		validator: validator,
		drift:     drift,
		clock:     time.Now,
	}
}

// InspectStatusInput contains the session inputs used for derivation.
type InspectStatusInput struct {
	DefaultAccent entity.Accent
	Suffix        string
}

// StyleLink is one libadwaita override entry.
type StyleLink struct {
	Path string
	// Target is empty when Path is missing or not a symlink.
	Target string
}

// InspectStatusOutput is the status snapshot.
type InspectStatusOutput struct {
	InterfaceAvailable bool
	AccentAvailable    bool
	ShellAvailable     bool

	// Preferences is nil when color-scheme could not be read.
	Preferences    *PreferenceReading
	PreferencesErr error

	// Candidate and Validation are zero when Preferences is nil.
	Candidate  entity.ThemeState
	Validation ValidateAssetsOutput

	// Live holds the values the subsystems report right now.
	Live       map[entity.Component]string
	StyleLinks []StyleLink
	Drift      *entity.DriftReport
}

// Execute builds the snapshot. It never writes anything.
func (uc *InspectStatusUseCase) Execute(ctx context.Context, input InspectStatusInput) *InspectStatusOutput {
	log := logging.FromContext(ctx)
	if input.DefaultAccent == "" {
		input.DefaultAccent = entity.DefaultAccent
	}

	out := &InspectStatusOutput{
		InterfaceAvailable: uc.prefs.HasSchema(port.InterfaceSchema),
		AccentAvailable:    uc.prefs.HasKey(port.InterfaceSchema, port.AccentColorKey),
		ShellAvailable:     uc.prefs.HasSchema(port.ShellSchema),
		Live:               make(map[entity.Component]string),
	}

	uc.readLive(out)
	if uc.drift != nil {
		out.Drift = uc.drift.Execute(ctx)
	}

	if !out.InterfaceAvailable {
		return out
	}

	reading, err := readPreferences(ctx, uc.prefs, input.DefaultAccent)
	if err != nil {
		out.PreferencesErr = err
		return out
	}
	out.Preferences = &reading

	candidate := entity.NewThemeState(reading.Mode, reading.Accent, input.Suffix, uc.clock())
	out.Validation = uc.validator.Execute(ctx, candidate)
	out.Candidate = out.Validation.State

	for _, name := range styleLinks {
		link := StyleLink{Path: filepath.Join(uc.paths.GTK4ConfigDir, name)}
		if target, linkErr := uc.fs.Readlink(ctx, link.Path); linkErr == nil {
			link.Target = target
		}
		out.StyleLinks = append(out.StyleLinks, link)
	}

	log.Debug().
		Str("window_theme", out.Candidate.WindowTheme()).
		Bool("valid", out.Validation.OK).
		Msg("status inspected")
	return out
}

func (uc *InspectStatusUseCase) readLive(out *InspectStatusOutput) {
	keys := []struct {
		component entity.Component
		schema    string
		key       string
	}{
		{entity.ComponentWindow, port.InterfaceSchema, port.GTKThemeKey},
		{entity.ComponentIcon, port.InterfaceSchema, port.IconThemeKey},
		{entity.ComponentShell, port.ShellSchema, port.ShellThemeKey},
	}
	for _, k := range keys {
		if !uc.prefs.HasSchema(k.schema) {
			continue
		}
		if v, err := uc.prefs.GetString(k.schema, k.key); err == nil {
			out.Live[k.component] = v
		}
	}
}

// InSync reports whether every live value matches the candidate.
func (o *InspectStatusOutput) InSync() bool {
	if o.Preferences == nil {
		return false
	}
	want := map[entity.Component]string{
		entity.ComponentWindow: o.Candidate.WindowTheme(),
		entity.ComponentIcon:   o.Candidate.IconTheme(),
	}
	if o.ShellAvailable {
		want[entity.ComponentShell] = o.Candidate.ShellTheme()
	}
	for c, v := range want {
		if o.Live[c] != v {
			return false
		}
	}
	return true
}
