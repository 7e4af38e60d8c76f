package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/themesync/internal/domain/entity"
)

// NamesRenderer renders the accent × mode mapping table.
type NamesRenderer struct {
	theme *Theme
}

// NewNamesRenderer creates a new names renderer with the given theme.
func NewNamesRenderer(theme *Theme) *NamesRenderer {
	return &NamesRenderer{theme: theme}
}

// NamesRows returns one row per accent and mode: accent, mode, window/shell
// theme and icon theme.
func NamesRows(suffix string) [][]string {
	rows := make([][]string, 0, len(entity.Accents())*2)
	for _, accent := range entity.Accents() {
		for _, mode := range []entity.Mode{entity.ModeLight, entity.ModeDark} {
			rows = append(rows, []string{
				string(accent),
				string(mode),
				entity.WindowThemeName(mode, accent, suffix),
				entity.IconThemeName(mode, accent),
			})
		}
	}
	return rows
}

// Render renders the mapping for suffix.
func (r *NamesRenderer) Render(suffix string) string {
	rows := NamesRows(suffix)

	headerStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(r.theme.Text).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("ACCENT", "MODE", "WINDOW / SHELL", "ICONS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 {
				accent := entity.Accent(rows[row][0])
				return cellStyle.Foreground(AccentColor(accent))
			}
			return cellStyle
		})

	return t.Render()
}
