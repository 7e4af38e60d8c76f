package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// styleLinks are the entries of the GTK4 config dir that point into the
// active theme's gtk-4.0 directory.
var styleLinks = []string{"gtk.css", "gtk-dark.css", "assets"}

// LinkStyleOverrideUseCase points the libadwaita override links at the
// active theme.
type LinkStyleOverrideUseCase struct {
	fs    port.FileSystem
	paths AssetPaths
}

// NewLinkStyleOverrideUseCase creates a new LinkStyleOverrideUseCase.
func NewLinkStyleOverrideUseCase(fs port.FileSystem, paths AssetPaths) *LinkStyleOverrideUseCase {
	return &LinkStyleOverrideUseCase{fs: fs, paths: paths}
}

// LinkStyleOverrideOutput describes what the link step did.
type LinkStyleOverrideOutput struct {
	Source string
	// Skipped is true when the theme ships no override.
	Skipped bool
	// Replaced lists the links that were (re)created.
	Replaced []string
}

// Execute replaces the override links. Links already pointing at the right
// source are left alone. Every link is attempted; errors are joined.
func (uc *LinkStyleOverrideUseCase) Execute(ctx context.Context, state entity.ThemeState) (*LinkStyleOverrideOutput, error) {
	log := logging.FromContext(ctx)

	source := state.StylePath(uc.paths.ThemesDir)
	out := &LinkStyleOverrideOutput{Source: source}

	exists, err := uc.fs.Exists(ctx, source)
	if err != nil {
		return out, fmt.Errorf("stat style source %s: %w", source, err)
	}
	if !exists {
		log.Debug().Str("source", source).Msg("theme ships no style override, skipping links")
		out.Skipped = true
		return out, nil
	}

	if err := uc.fs.MkdirAll(ctx, uc.paths.GTK4ConfigDir); err != nil {
		return out, fmt.Errorf("create %s: %w", uc.paths.GTK4ConfigDir, err)
	}

	var errs []error
	for _, name := range styleLinks {
		link := filepath.Join(uc.paths.GTK4ConfigDir, name)
		target := filepath.Join(source, name)

		if current, readErr := uc.fs.Readlink(ctx, link); readErr == nil && current == target {
			continue
		}
		if err := uc.fs.ReplaceSymlink(ctx, target, link); err != nil {
			errs = append(errs, fmt.Errorf("link %s: %w", link, err))
			continue
		}
		out.Replaced = append(out.Replaced, link)
	}

	if len(out.Replaced) > 0 {
		log.Info().Str("source", source).Strs("links", out.Replaced).Msg("style override linked")
	}
	return out, errors.Join(errs...)
}
