package entity

import "strings"

// Mode is the light/dark half of the GNOME color-scheme preference.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode maps a raw color-scheme value to a Mode.
// Only "prefer-dark" and "dark" select dark; everything else, including
// "default" and unknown values, is light.
func ParseMode(raw string) Mode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "prefer-dark", "dark":
		return ModeDark
	default:
		return ModeLight
	}
}

// ColorScheme returns the GNOME color-scheme value for the mode.
func (m Mode) ColorScheme() string {
	if m == ModeDark {
		return "prefer-dark"
	}
	return "prefer-light"
}

// IsDark reports whether m is the dark mode.
func (m Mode) IsDark() bool {
	return m == ModeDark
}

// Accent is a GNOME accent-color identifier.
type Accent string

const (
	AccentBlue   Accent = "blue"
	AccentTeal   Accent = "teal"
	AccentGreen  Accent = "green"
	AccentYellow Accent = "yellow"
	AccentOrange Accent = "orange"
	AccentRed    Accent = "red"
	AccentPink   Accent = "pink"
	AccentPurple Accent = "purple"
	AccentSlate  Accent = "slate"
	AccentBrown  Accent = "brown"
)

// DefaultAccent is used when the accent-color key is not available.
const DefaultAccent = AccentBlue

// Accents returns the closed set of accents in display order.
func Accents() []Accent {
	return []Accent{
		AccentBlue,
		AccentTeal,
		AccentGreen,
		AccentYellow,
		AccentOrange,
		AccentRed,
		AccentPink,
		AccentPurple,
		AccentSlate,
		AccentBrown,
	}
}

// ParseAccent normalizes a raw accent-color value.
// Unknown values are kept; they derive the default theme names.
func ParseAccent(raw string) Accent {
	return Accent(strings.ToLower(strings.TrimSpace(raw)))
}

// Known reports whether a belongs to the closed accent set.
func (a Accent) Known() bool {
	_, ok := windowAccentSuffix[a]
	return ok
}
