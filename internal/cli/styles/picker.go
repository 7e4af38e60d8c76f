package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themesync/internal/domain/entity"
)

// PickerModel lets the user choose a mode and accent and previews the
// theme names they map to.
type PickerModel struct {
	theme   *Theme
	keys    PickerKeyMap
	help    help.Model
	accents []entity.Accent
	index   int
	mode    entity.Mode
	suffix  string

	Confirmed bool
	Canceled  bool
}

// NewPicker creates a picker starting at mode and accent.
func NewPicker(theme *Theme, mode entity.Mode, accent entity.Accent, suffix string) PickerModel {
	accents := entity.Accents()
	index := 0
	for i, a := range accents {
		if a == accent {
			index = i
			break
		}
	}
	if mode != entity.ModeDark {
		mode = entity.ModeLight
	}
	return PickerModel{
		theme:   theme,
		keys:    DefaultPickerKeyMap(),
		help:    NewStyledHelp(theme),
		accents: accents,
		index:   index,
		mode:    mode,
		suffix:  suffix,
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Prev):
			m.index = (m.index - 1 + len(m.accents)) % len(m.accents)
		case key.Matches(msg, m.keys.Next):
			m.index = (m.index + 1) % len(m.accents)
		case key.Matches(msg, m.keys.Mode):
			if m.mode.IsDark() {
				m.mode = entity.ModeLight
			} else {
				m.mode = entity.ModeDark
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Confirm):
			m.Confirmed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.Canceled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.Confirmed || m.Canceled {
		return ""
	}
	t := m.theme
	accent := m.Accent()

	light, dark := t.InactiveTab, t.InactiveTab
	if m.mode.IsDark() {
		dark = t.ActiveTab.Background(AccentColor(accent))
	} else {
		light = t.ActiveTab.Background(AccentColor(accent))
	}
	modes := lipgloss.JoinHorizontal(lipgloss.Center,
		light.Render(IconSun+" Light"), " ", dark.Render(IconMoon+" Dark"))

	swatches := make([]string, 0, len(m.accents))
	for i, a := range m.accents {
		dot := "○"
		if i == m.index {
			dot = "●"
		}
		swatches = append(swatches, lipgloss.NewStyle().Foreground(AccentColor(a)).Render(dot))
	}

	preview := []string{
		fmt.Sprintf("%s %s", t.Subtle.Render("Window/Shell"), t.Highlight.Foreground(AccentColor(accent)).Render(entity.WindowThemeName(m.mode, accent, m.suffix))),
		fmt.Sprintf("%s %s", t.Subtle.Render("Icons       "), t.Highlight.Foreground(AccentColor(accent)).Render(entity.IconThemeName(m.mode, accent))),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(IconPalette+" Appearance"),
		"",
		modes,
		"",
		strings.Join(swatches, " ")+"  "+t.Normal.Render(string(accent)),
		"",
		strings.Join(preview, "\n"),
		"",
		m.help.View(m.keys),
	)
	return t.Box.Render(content)
}

// Mode returns the selected mode.
func (m PickerModel) Mode() entity.Mode {
	return m.mode
}

// Accent returns the selected accent.
func (m PickerModel) Accent() entity.Accent {
	return m.accents[m.index]
}
