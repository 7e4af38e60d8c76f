package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowThemeName(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		accent Accent
		suffix string
		want   string
	}{
		{"dark blue", ModeDark, AccentBlue, "", "Orchis-Dark"},
		{"light purple", ModeLight, AccentPurple, "", "Orchis-Purple-Light"},
		{"dark purple", ModeDark, AccentPurple, "", "Orchis-Purple-Dark"},
		{"slate maps to grey", ModeDark, AccentSlate, "", "Orchis-Grey-Dark"},
		{"brown has no variant", ModeLight, AccentBrown, "", "Orchis-Light"},
		{"teal", ModeLight, AccentTeal, "", "Orchis-Teal-Light"},
		{"suffix appended", ModeDark, AccentGreen, "-Compact", "Orchis-Green-Dark-Compact"},
		{"unknown accent", ModeDark, Accent("magenta"), "", "Orchis-Dark"},
		{"unknown mode is light", Mode("sepia"), AccentRed, "", "Orchis-Red-Light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowThemeName(tt.mode, tt.accent, tt.suffix))
		})
	}
}

func TestIconThemeName(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		accent Accent
		want   string
	}{
		{"dark blue", ModeDark, AccentBlue, "Tela-dark"},
		{"light blue", ModeLight, AccentBlue, "Tela-light"},
		{"light green", ModeLight, AccentGreen, "Tela-green-light"},
		{"dark purple", ModeDark, AccentPurple, "Tela-purple-dark"},
		{"teal has no variant", ModeDark, AccentTeal, "Tela-dark"},
		{"brown has a variant", ModeLight, AccentBrown, "Tela-brown-light"},
		{"slate maps to grey", ModeLight, AccentSlate, "Tela-grey-light"},
		{"unknown accent", ModeLight, Accent(""), "Tela-light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IconThemeName(tt.mode, tt.accent))
		})
	}
}

func TestNamesAreIdempotent(t *testing.T) {
	for _, accent := range Accents() {
		for _, mode := range []Mode{ModeLight, ModeDark} {
			assert.Equal(t, WindowThemeName(mode, accent, ""), WindowThemeName(mode, accent, ""))
			assert.Equal(t, IconThemeName(mode, accent), IconThemeName(mode, accent))
			assert.NotContains(t, IconThemeName(mode, accent), "--")
			assert.NotContains(t, WindowThemeName(mode, accent, ""), "--")
		}
	}
}

func TestFallbackIconThemeName(t *testing.T) {
	assert.Equal(t, "Tela-blue-dark", FallbackIconThemeName(ModeDark))
	assert.Equal(t, "Tela-blue-light", FallbackIconThemeName(ModeLight))
}

func TestIsDefaultIconTheme(t *testing.T) {
	assert.True(t, IsDefaultIconTheme("Tela-dark"))
	assert.True(t, IsDefaultIconTheme("Tela-light"))
	assert.False(t, IsDefaultIconTheme("Tela-blue-dark"))
	assert.False(t, IsDefaultIconTheme("Tela-purple-light"))
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeDark, ParseMode("prefer-dark"))
	assert.Equal(t, ModeDark, ParseMode("dark"))
	assert.Equal(t, ModeLight, ParseMode("prefer-light"))
	assert.Equal(t, ModeLight, ParseMode("default"))
	assert.Equal(t, ModeLight, ParseMode(""))
}

func TestParseAccent(t *testing.T) {
	assert.Equal(t, AccentPurple, ParseAccent(" Purple "))
	assert.True(t, ParseAccent("slate").Known())
	assert.False(t, ParseAccent("magenta").Known())
}
