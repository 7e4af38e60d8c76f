package usecase

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// SuffixAuto asks DetectSuffixUseCase to probe installed themes.
const SuffixAuto = "auto"

// DetectSuffixUseCase picks the theme name suffix for the session.
type DetectSuffixUseCase struct {
	fs    port.FileSystem
	paths AssetPaths
}

// NewDetectSuffixUseCase creates a new DetectSuffixUseCase.
func NewDetectSuffixUseCase(fs port.FileSystem, paths AssetPaths) *DetectSuffixUseCase {
	return &DetectSuffixUseCase{fs: fs, paths: paths}
}

// DetectSuffixInput contains the configured suffix policy.
type DetectSuffixInput struct {
	// Configured is SuffixAuto or a literal suffix ("" for none).
	Configured string
	// Candidates are probed in order when Configured is SuffixAuto.
	Candidates []string
}

// DetectSuffixOutput contains the chosen suffix.
type DetectSuffixOutput struct {
	Suffix string
	Probed bool
}

// Execute returns the literal suffix, or the first candidate installed in
// both light and dark flavours of the base theme.
func (uc *DetectSuffixUseCase) Execute(ctx context.Context, input DetectSuffixInput) DetectSuffixOutput {
	log := logging.FromContext(ctx)

	if !strings.EqualFold(strings.TrimSpace(input.Configured), SuffixAuto) {
		return DetectSuffixOutput{Suffix: input.Configured}
	}

	for _, candidate := range input.Candidates {
		if candidate == "" {
			continue
		}
		if uc.installed(ctx, entity.ModeDark, candidate) && uc.installed(ctx, entity.ModeLight, candidate) {
			log.Info().Str("suffix", candidate).Msg("detected theme suffix")
			return DetectSuffixOutput{Suffix: candidate, Probed: true}
		}
	}
	log.Debug().Strs("candidates", input.Candidates).Msg("no theme suffix detected")
	return DetectSuffixOutput{Probed: true}
}

func (uc *DetectSuffixUseCase) installed(ctx context.Context, mode entity.Mode, suffix string) bool {
	dir := filepath.Join(uc.paths.ThemesDir, entity.WindowThemeName(mode, entity.DefaultAccent, suffix))
	ok, err := uc.fs.IsDirectory(ctx, dir)
	return err == nil && ok
}
