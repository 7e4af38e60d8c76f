package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location and whether it is in use.
func (r *ConfigRenderer) RenderPath(path string, loadErr error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	if loadErr != nil {
		return fmt.Sprintf(
			"\n  %s Config %s\n  %s %s\n  %s\n",
			iconStyle.Render(IconConfig),
			pathStyle.Render(path),
			r.theme.ErrorStyle.Render(IconX),
			r.theme.Normal.Render(indent(loadErr.Error(), "    ")),
			r.theme.Subtle.Render("Defaults are in use until the file is fixed."),
		)
	}

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s Config is valid\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		r.theme.SuccessStyle.Render(IconCheck),
	)
}

// RenderEffective renders the effective configuration as TOML.
func (r *ConfigRenderer) RenderEffective(body []byte) string {
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			lines[i] = r.theme.Highlight.Render(line)
			continue
		}
		if k, v, ok := strings.Cut(line, "="); ok {
			lines[i] = r.theme.Normal.Render(k) + r.theme.Subtle.Render("=") + r.theme.Subtle.Render(v)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderSchemaWritten renders the success message of config schema --output.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf(
		"\n  %s Schema written to %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
