package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/domain/entity"
)

const notAvailable = "n/a"

// StatusRenderer renders the status snapshot.
type StatusRenderer struct {
	theme *Theme
}

// NewStatusRenderer creates a new status renderer with the given theme.
func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme}
}

// StatusExtras holds checks made outside the inspection use case.
type StatusExtras struct {
	Suffix         string
	GTK4Dir        string
	GTK4Writable   bool
	CacheFile      string
	ConfigWarnings []string
}

// Render renders the full status report.
func (r *StatusRenderer) Render(s *usecase.InspectStatusOutput, extras StatusExtras) string {
	sections := []string{
		r.renderHeader(s),
		r.renderPreferences(s),
	}
	if s.Preferences != nil {
		sections = append(sections, r.renderThemes(s, extras))
	}
	sections = append(sections, r.renderStyle(s, extras), r.renderCache(s, extras))
	if len(extras.ConfigWarnings) > 0 {
		sections = append(sections, r.renderWarnings(extras.ConfigWarnings))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *StatusRenderer) renderHeader(s *usecase.InspectStatusOutput) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "In sync"
	switch {
	case !s.InterfaceAvailable:
		statusStyle = r.theme.ErrorStyle
		statusText = "No GNOME settings"
	case s.Preferences == nil:
		statusStyle = r.theme.ErrorStyle
		statusText = "Unreadable"
	case !s.Validation.OK:
		statusStyle = r.theme.ErrorStyle
		statusText = "Assets missing"
	case !s.InSync():
		statusStyle = r.theme.WarningStyle
		statusText = "Out of sync"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconPalette), r.theme.Title.Render("themesync status"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge) + "\n"
}

func (r *StatusRenderer) renderPreferences(s *usecase.InspectStatusOutput) string {
	lines := []string{}
	if !s.InterfaceAvailable {
		lines = append(lines, r.check(false, "Interface schema", "org.gnome.desktop.interface is not installed"))
		return r.box(IconDesktop, "Preferences", lines)
	}
	if s.Preferences == nil {
		lines = append(lines, r.check(false, "color-scheme", errString(s.PreferencesErr)))
		return r.box(IconDesktop, "Preferences", lines)
	}

	modeIcon := IconSun
	if s.Preferences.Mode.IsDark() {
		modeIcon = IconMoon
	}
	lines = append(lines, r.kv(modeIcon, "color-scheme", s.Preferences.RawColorScheme, string(s.Preferences.Mode)))

	accentNote := ""
	switch {
	case !s.AccentAvailable:
		accentNote = "key unavailable, using default"
	case s.Preferences.AccentFromDefault:
		accentNote = "unreadable, using default"
	case !s.Preferences.Accent.Known():
		accentNote = "unknown accent"
	}
	swatch := lipgloss.NewStyle().Foreground(AccentColor(s.Preferences.Accent)).Render("●")
	lines = append(lines, r.kv(swatch, "accent-color", string(s.Preferences.Accent), accentNote))

	return r.box(IconDesktop, "Preferences", lines)
}

func (r *StatusRenderer) renderThemes(s *usecase.InspectStatusOutput, extras StatusExtras) string {
	rows := []struct {
		component entity.Component
		label     string
		want      string
	}{
		{entity.ComponentWindow, "Window", s.Candidate.WindowTheme()},
		{entity.ComponentShell, "Shell", s.Candidate.ShellTheme()},
		{entity.ComponentIcon, "Icons", s.Candidate.IconTheme()},
	}

	lines := make([]string, 0, len(rows)+4)
	for _, row := range rows {
		if row.component == entity.ComponentShell && !s.ShellAvailable {
			lines = append(lines, fmt.Sprintf("%s %s %s",
				r.theme.Subtle.Render(IconInfo),
				r.theme.Normal.Render(row.label),
				r.theme.Subtle.Render("user-theme extension not available")))
			continue
		}
		live, ok := s.Live[row.component]
		if !ok {
			live = notAvailable
		}
		lines = append(lines, r.themeRow(row.label, row.want, live))
	}

	suffix := extras.Suffix
	if suffix == "" {
		suffix = "none"
	}
	lines = append(lines, "", fmt.Sprintf("%s %s", r.theme.Subtle.Render("Suffix"), r.theme.Normal.Render(suffix)))

	for _, issue := range s.Validation.Issues {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render(issue)))
	}
	return r.box(IconPalette, "Themes", lines)
}

func (r *StatusRenderer) themeRow(label, want, live string) string {
	icon := IconCheck
	style := r.theme.SuccessStyle
	detail := ""
	if live != want {
		icon = IconWarning
		style = r.theme.WarningStyle
		detail = r.theme.Subtle.Render(fmt.Sprintf(" (live: %s)", live))
	}
	return fmt.Sprintf("%s %-7s %s%s", style.Render(icon), r.theme.Normal.Render(label), r.theme.Highlight.Render(want), detail)
}

func (r *StatusRenderer) renderStyle(s *usecase.InspectStatusOutput, extras StatusExtras) string {
	lines := []string{
		r.check(extras.GTK4Writable, extras.GTK4Dir, writableText(extras.GTK4Writable)),
	}
	for _, link := range s.StyleLinks {
		target := link.Target
		if target == "" {
			target = "not linked"
		}
		lines = append(lines, fmt.Sprintf("  %s %s %s %s",
			r.theme.Subtle.Render(IconLink),
			r.theme.Normal.Render(filepath.Base(link.Path)),
			r.theme.Subtle.Render(IconArrow),
			r.theme.Subtle.Render(target)))
	}
	return r.box(IconFolder, "libadwaita override", lines)
}

func (r *StatusRenderer) renderCache(s *usecase.InspectStatusOutput, extras StatusExtras) string {
	lines := []string{fmt.Sprintf("%s %s", r.theme.Subtle.Render("File"), r.theme.Normal.Render(extras.CacheFile))}
	if s.Drift == nil || s.Drift.Cached == nil {
		lines = append(lines, r.theme.Subtle.Render("No successful sync recorded"))
		return r.box(IconClock, "Last sync", lines)
	}

	c := s.Drift.Cached
	lines = append(lines,
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("When"), r.theme.Normal.Render(c.Timestamp.Local().Format("2006-01-02 15:04:05"))),
		fmt.Sprintf("%s %s / %s", r.theme.Subtle.Render("Prefs"), r.theme.Normal.Render(c.ColorScheme), r.theme.Normal.Render(c.AccentColor)),
		fmt.Sprintf("%s %s, %s", r.theme.Subtle.Render("Themes"), r.theme.Normal.Render(c.GTKTheme), r.theme.Normal.Render(c.IconTheme)),
	)
	if !s.Drift.HasDrift() {
		lines = append(lines, r.check(true, "No drift", "subsystems match the record"))
	}
	for _, e := range s.Drift.Entries {
		lines = append(lines, fmt.Sprintf("%s %s %s %s %s",
			r.theme.WarningStyle.Render(IconWarning),
			r.theme.Normal.Render(string(e.Component)),
			r.theme.Subtle.Render(e.Recorded),
			r.theme.Subtle.Render(IconArrow),
			r.theme.WarningStyle.Render(e.Live)))
	}
	return r.box(IconClock, "Last sync", lines)
}

func (r *StatusRenderer) renderWarnings(warnings []string) string {
	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.Normal.Render(w)))
	}
	return r.box(IconConfig, "Config", lines)
}

func (r *StatusRenderer) check(ok bool, name, detail string) string {
	icon := IconCheck
	style := r.theme.SuccessStyle
	if !ok {
		icon = IconX
		style = r.theme.ErrorStyle
	}
	return fmt.Sprintf("%s %s %s", style.Render(icon), r.theme.Normal.Render(name), r.theme.Subtle.Render(detail))
}

func (r *StatusRenderer) kv(icon, key, value, note string) string {
	line := fmt.Sprintf("%s %s %s", icon, r.theme.Subtle.Render(key), r.theme.Highlight.Render(value))
	if note != "" {
		line += " " + r.theme.Subtle.Render("("+note+")")
	}
	return line
}

func (r *StatusRenderer) box(icon, title string, lines []string) string {
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", r.theme.Highlight.Render(icon), title))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func writableText(ok bool) string {
	if ok {
		return "writable"
	}
	return "not writable"
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
