package entity

import "strings"

const (
	windowThemePrefix = "Orchis"
	iconThemePrefix   = "Tela"
	iconFallbackColor = "-blue"
)

// windowAccentSuffix maps an accent to its Orchis color variant.
// Orchis has no brown variant and ships blue as the unsuffixed default.
var windowAccentSuffix = map[Accent]string{
	AccentBlue:   "",
	AccentTeal:   "-Teal",
	AccentGreen:  "-Green",
	AccentYellow: "-Yellow",
	AccentOrange: "-Orange",
	AccentRed:    "-Red",
	AccentPink:   "-Pink",
	AccentPurple: "-Purple",
	AccentSlate:  "-Grey",
	AccentBrown:  "",
}

// iconAccentSuffix maps an accent to its Tela color variant.
// Tela has no teal variant.
var iconAccentSuffix = map[Accent]string{
	AccentBlue:   "",
	AccentTeal:   "",
	AccentGreen:  "-green",
	AccentYellow: "-yellow",
	AccentOrange: "-orange",
	AccentRed:    "-red",
	AccentPink:   "-pink",
	AccentPurple: "-purple",
	AccentSlate:  "-grey",
	AccentBrown:  "-brown",
}

func modeSuffix(mode Mode) string {
	if mode == ModeDark {
		return "-Dark"
	}
	return "-Light"
}

// WindowThemeName returns the GTK/shell theme name for mode and accent,
// e.g. "Orchis-Purple-Dark". suffix is appended verbatim.
func WindowThemeName(mode Mode, accent Accent, suffix string) string {
	return windowThemePrefix + windowAccentSuffix[accent] + modeSuffix(mode) + suffix
}

// IconThemeName returns the Tela icon theme name for mode and accent,
// e.g. "Tela-purple-dark" or "Tela-light" for the default color.
func IconThemeName(mode Mode, accent Accent) string {
	return iconThemePrefix + iconAccentSuffix[accent] + strings.ToLower(modeSuffix(mode))
}

// FallbackIconThemeName returns the explicit blue icon variant used when
// the unsuffixed Tela theme is not installed.
func FallbackIconThemeName(mode Mode) string {
	return iconThemePrefix + iconFallbackColor + strings.ToLower(modeSuffix(mode))
}

// IsDefaultIconTheme reports whether name is one of the unsuffixed Tela forms.
func IsDefaultIconTheme(name string) bool {
	return name == IconThemeName(ModeDark, AccentBlue) || name == IconThemeName(ModeLight, AccentBlue)
}
