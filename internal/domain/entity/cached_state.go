package entity

import "time"

// CachedThemeState is the last successfully applied bundle as persisted on
// disk. It is diagnostic only.
type CachedThemeState struct {
	ColorScheme string    `json:"color_scheme"`
	AccentColor string    `json:"accent_color"`
	ThemeSuffix string    `json:"theme_suffix"`
	GTKTheme    string    `json:"gtk_theme"`
	ShellTheme  string    `json:"shell_theme"`
	IconTheme   string    `json:"icon_theme"`
	Timestamp   time.Time `json:"timestamp"`
}

// CachedFromState builds the persisted record for s.
func CachedFromState(s ThemeState) CachedThemeState {
	return CachedThemeState{
		ColorScheme: s.Mode().ColorScheme(),
		AccentColor: string(s.Accent()),
		ThemeSuffix: s.Suffix(),
		GTKTheme:    s.WindowTheme(),
		ShellTheme:  s.ShellTheme(),
		IconTheme:   s.IconTheme(),
		Timestamp:   s.CreatedAt(),
	}
}

// DriftEntry is one subsystem whose live value differs from the record.
type DriftEntry struct {
	Component Component
	Recorded  string
	Live      string
}

// DriftReport compares the cached record with live subsystem values.
type DriftReport struct {
	Cached  *CachedThemeState
	Entries []DriftEntry
}

// HasDrift reports whether any subsystem diverged from the record.
func (r DriftReport) HasDrift() bool {
	return len(r.Entries) > 0
}
