package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// AssetPaths holds the per-user install locations of theme assets.
type AssetPaths struct {
	// ThemesDir holds GTK/shell themes, e.g. ~/.themes.
	ThemesDir string
	// IconsDir holds icon themes, e.g. ~/.local/share/icons.
	IconsDir string
	// GTK4ConfigDir receives the libadwaita override links, e.g. ~/.config/gtk-4.0.
	GTK4ConfigDir string
}

// ValidateAssetsUseCase checks that every asset a ThemeState refers to is
// installed before anything is applied.
type ValidateAssetsUseCase struct {
	fs    port.FileSystem
	paths AssetPaths
}

// NewValidateAssetsUseCase creates a new ValidateAssetsUseCase.
func NewValidateAssetsUseCase(fs port.FileSystem, paths AssetPaths) *ValidateAssetsUseCase {
	return &ValidateAssetsUseCase{fs: fs, paths: paths}
}

// ValidateAssetsOutput contains the validation result.
type ValidateAssetsOutput struct {
	// State is the input state, possibly with the icon fallback applied.
	State  entity.ThemeState
	OK     bool
	Issues []string
}

// Execute validates state. It never fails; problems are reported as issues.
func (uc *ValidateAssetsUseCase) Execute(ctx context.Context, state entity.ThemeState) ValidateAssetsOutput {
	log := logging.FromContext(ctx)

	out := ValidateAssetsOutput{State: state}

	windowDir := filepath.Join(uc.paths.ThemesDir, state.WindowTheme())
	if ok, issue := uc.checkDir(ctx, windowDir, "window theme"); !ok {
		out.Issues = append(out.Issues, issue)
	}

	iconDir := filepath.Join(uc.paths.IconsDir, state.IconTheme())
	if ok, issue := uc.checkDir(ctx, iconDir, "icon theme"); !ok {
		fallback := entity.FallbackIconThemeName(state.Mode())
		fallbackOK := false
		if entity.IsDefaultIconTheme(state.IconTheme()) {
			fallbackOK, _ = uc.checkDir(ctx, filepath.Join(uc.paths.IconsDir, fallback), "icon theme")
		}
		if fallbackOK {
			log.Debug().
				Str("icon_theme", state.IconTheme()).
				Str("fallback", fallback).
				Msg("default icon theme missing, using blue variant")
			out.State = state.WithIconTheme(fallback)
		} else {
			out.Issues = append(out.Issues, issue)
		}
	}

	stylePath := state.StylePath(uc.paths.ThemesDir)
	exists, err := uc.fs.Exists(ctx, stylePath)
	switch {
	case err != nil:
		out.Issues = append(out.Issues, fmt.Sprintf("style override %s: %v", stylePath, err))
	case !exists:
		out.Issues = append(out.Issues, fmt.Sprintf("style override not installed: %s", stylePath))
	}

	out.OK = len(out.Issues) == 0
	if !out.OK {
		log.Warn().
			Str("window_theme", state.WindowTheme()).
			Strs("issues", out.Issues).
			Msg("theme assets incomplete")
	}
	return out
}

func (uc *ValidateAssetsUseCase) checkDir(ctx context.Context, dir, what string) (bool, string) {
	isDir, err := uc.fs.IsDirectory(ctx, dir)
	if err != nil {
		return false, fmt.Sprintf("%s %s: %v", what, dir, err)
	}
	if !isDir {
		return false, fmt.Sprintf("%s not installed: %s", what, dir)
	}
	return true, ""
}
