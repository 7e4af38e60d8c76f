package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/cli/styles"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose mode and accent interactively",
	Long: `Open an interactive picker for the GNOME color scheme and accent color.
The theme names of the selection are previewed live. Confirming writes the
GNOME preferences and syncs the themes like 'themesync apply'.`,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	input, err := applyInput(app, "", "")
	if err != nil {
		return err
	}
	input.DryRun = true
	current, err := app.ApplyUC.Execute(app.Ctx(), input)
	if err != nil {
		return fmt.Errorf("read preferences: %w", err)
	}

	picker := styles.NewPicker(app.Theme, current.Preferences.Mode, current.Preferences.Accent, app.Suffix)
	final, err := tea.NewProgram(picker).Run()
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}
	result, ok := final.(styles.PickerModel)
	if !ok || !result.Confirmed {
		fmt.Println(app.Theme.Subtle.Render("Canceled."))
		return nil
	}

	mode, accent := result.Mode(), result.Accent()
	return executeApply(app, usecase.ApplyThemeInput{
		Mode:          &mode,
		Accent:        &accent,
		DefaultAccent: app.DefaultAccent,
		Suffix:        app.Suffix,
	})
}
