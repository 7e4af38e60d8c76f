package entity

import (
	"path/filepath"
	"time"
)

// styleDirName is the per-theme directory holding the libadwaita override.
const styleDirName = "gtk-4.0"

// ThemeState is the bundle of theme identifiers derived from one
// (mode, accent) reading. It is a value: every method that changes
// something returns a copy.
type ThemeState struct {
	mode      Mode
	accent    Accent
	suffix    string
	iconTheme string
	createdAt time.Time
}

// NewThemeState derives the theme bundle for mode and accent.
// suffix only affects the window and shell theme names.
func NewThemeState(mode Mode, accent Accent, suffix string, now time.Time) ThemeState {
	return ThemeState{
		mode:      mode,
		accent:    accent,
		suffix:    suffix,
		iconTheme: IconThemeName(mode, accent),
		createdAt: now,
	}
}

func (s ThemeState) Mode() Mode           { return s.mode }
func (s ThemeState) Accent() Accent       { return s.accent }
func (s ThemeState) Suffix() string       { return s.suffix }
func (s ThemeState) CreatedAt() time.Time { return s.createdAt }

// WindowTheme returns the GTK theme name.
func (s ThemeState) WindowTheme() string {
	return WindowThemeName(s.mode, s.accent, s.suffix)
}

// ShellTheme returns the GNOME Shell theme name. It is always the window theme.
func (s ThemeState) ShellTheme() string {
	return s.WindowTheme()
}

// IconTheme returns the icon theme name.
func (s ThemeState) IconTheme() string {
	return s.iconTheme
}

// StylePath returns the libadwaita override directory of the window theme
// under themesDir.
func (s ThemeState) StylePath(themesDir string) string {
	return filepath.Join(themesDir, s.WindowTheme(), styleDirName)
}

// WithIconTheme returns a copy of s using name as icon theme.
func (s ThemeState) WithIconTheme(name string) ThemeState {
	s.iconTheme = name
	return s
}

// Equal compares the applied identifiers and the raw preferences.
// Suffix and creation time are ignored.
func (s ThemeState) Equal(other ThemeState) bool {
	return s.WindowTheme() == other.WindowTheme() &&
		s.iconTheme == other.iconTheme &&
		s.mode == other.mode &&
		s.accent == other.accent
}

// IsZero reports whether s was never constructed.
func (s ThemeState) IsZero() bool {
	return s.mode == "" && s.accent == "" && s.iconTheme == ""
}
