package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/domain/entity"
)

// ApplyRenderer renders the outcome of a one-shot apply.
type ApplyRenderer struct {
	theme *Theme
}

// NewApplyRenderer creates a new apply renderer with the given theme.
func NewApplyRenderer(theme *Theme) *ApplyRenderer {
	return &ApplyRenderer{theme: theme}
}

// Render renders an apply or dry-run output.
func (r *ApplyRenderer) Render(out *usecase.ApplyThemeOutput) string {
	if out.Validation != nil {
		return r.renderDryRun(out)
	}
	return r.renderResult(out)
}

func (r *ApplyRenderer) renderDryRun(out *usecase.ApplyThemeOutput) string {
	lines := []string{
		r.title(IconInfo, "Dry run", r.theme.Subtle, "nothing written"),
		"",
		r.names(out.Validation.State),
		"",
	}
	if out.Validation.OK {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconCheck), r.theme.Normal.Render("All assets installed")))
	}
	for _, issue := range out.Validation.Issues {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render(issue)))
	}
	return strings.Join(lines, "\n")
}

func (r *ApplyRenderer) renderResult(out *usecase.ApplyThemeOutput) string {
	res := out.Result
	if res.ValidationFailed() {
		lines := []string{r.title(IconX, "Not applied", r.theme.ErrorStyle, "assets missing"), ""}
		for _, issue := range res.Issues {
			lines = append(lines, fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render(issue)))
		}
		return strings.Join(lines, "\n")
	}

	icon, style, status := IconCheck, r.theme.SuccessStyle, "Applied"
	if !res.Success {
		icon, style, status = IconWarning, r.theme.WarningStyle, "Partially applied"
	} else if !res.Changed() {
		status = "Already in sync"
	}

	lines := []string{r.title(icon, status, style, ""), "", r.names(res.State), ""}
	for _, c := range entity.Components() {
		o, ok := res.Components[c]
		if !ok {
			continue
		}
		lines = append(lines, r.component(c, o))
	}
	if res.Success && !out.Saved {
		lines = append(lines, "", r.theme.WarningStyle.Render(IconWarning+" state record not saved"))
	}
	return strings.Join(lines, "\n")
}

func (r *ApplyRenderer) title(icon, text string, style lipgloss.Style, note string) string {
	line := fmt.Sprintf("%s %s", style.Render(icon), r.theme.Title.Render(text))
	if note != "" {
		line += " " + r.theme.Subtle.Render("("+note+")")
	}
	return line
}

func (r *ApplyRenderer) names(s entity.ThemeState) string {
	swatch := lipgloss.NewStyle().Foreground(AccentColor(s.Accent())).Render("●")
	return strings.Join([]string{
		fmt.Sprintf("%s %s %s", swatch, r.theme.Subtle.Render("Preferences"), r.theme.Normal.Render(s.Mode().ColorScheme()+" / "+string(s.Accent()))),
		fmt.Sprintf("  %s %s", r.theme.Subtle.Render("Window/Shell"), r.theme.Highlight.Render(s.WindowTheme())),
		fmt.Sprintf("  %s %s", r.theme.Subtle.Render("Icons"), r.theme.Highlight.Render(s.IconTheme())),
	}, "\n")
}

func (r *ApplyRenderer) component(c entity.Component, o entity.ComponentOutcome) string {
	icon, style, text := IconCheck, r.theme.SuccessStyle, "unchanged"
	switch {
	case o.Err != nil && o.Skipped:
		icon, style, text = IconWarning, r.theme.WarningStyle, "skipped: "+o.Err.Error()
	case o.Err != nil:
		icon, style, text = IconX, r.theme.ErrorStyle, o.Err.Error()
	case o.Skipped:
		icon, style, text = IconInfo, r.theme.Subtle, "skipped"
	case !o.OK:
		icon, style, text = IconX, r.theme.ErrorStyle, "failed"
	case o.Changed:
		text = "updated"
	}
	return fmt.Sprintf("%s %-14s %s", style.Render(icon), r.theme.Normal.Render(string(c)), r.theme.Subtle.Render(text))
}
