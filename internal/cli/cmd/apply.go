package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/cli"
	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/domain/entity"
)

var (
	applyMode   string
	applyAccent string
	applyDryRun bool
	applyYes    bool
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Sync the themes once and exit",
	Long: `Read the GNOME color-scheme and accent-color preferences, derive the
theme bundle and apply it once.

With --mode or --accent the GNOME preferences are changed first, which
also notifies a running daemon. A confirmation is asked on a terminal
unless --yes is given.

Examples:
  themesync apply                       # sync with the current preferences
  themesync apply --mode dark           # switch GNOME to dark and sync
  themesync apply --accent teal --yes   # change accent without asking
  themesync apply --dry-run             # show what would be applied`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyMode, "mode", "m", "", "set the color scheme first: light or dark")
	applyCmd.Flags().StringVarP(&applyAccent, "accent", "a", "", "set the accent color first")
	applyCmd.Flags().BoolVarP(&applyDryRun, "dry-run", "n", false, "derive and validate without writing")
	applyCmd.Flags().BoolVarP(&applyYes, "yes", "y", false, "skip confirmation prompt")
}

func runApply(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	input, err := applyInput(app, applyMode, applyAccent)
	if err != nil {
		return err
	}
	input.DryRun = applyDryRun

	if !input.DryRun && !applyYes && (input.Mode != nil || input.Accent != nil) && isTerminal(os.Stdin) {
		ok, confirmErr := confirmOverrides(app.Theme, input)
		if confirmErr != nil {
			return confirmErr
		}
		if !ok {
			fmt.Println(app.Theme.Subtle.Render("Canceled."))
			return nil
		}
	}

	return executeApply(app, input)
}

func executeApply(app *cli.App, input usecase.ApplyThemeInput) error {
	out, err := app.ApplyUC.Execute(app.Ctx(), input)
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	app.Prefs.Flush()

	fmt.Println(styles.NewApplyRenderer(app.Theme).Render(out))

	if out.Result != nil && !out.Result.Success {
		return fmt.Errorf("theme not fully applied")
	}
	return nil
}

// applyInput builds the use case input from the flag values.
func applyInput(app *cli.App, mode, accent string) (usecase.ApplyThemeInput, error) {
	input := usecase.ApplyThemeInput{
		DefaultAccent: app.DefaultAccent,
		Suffix:        app.Suffix,
	}
	if mode != "" {
		m, err := parseModeFlag(mode)
		if err != nil {
			return input, err
		}
		input.Mode = &m
	}
	if accent != "" {
		a := entity.ParseAccent(accent)
		if !a.Known() {
			return input, fmt.Errorf("unknown accent %q", accent)
		}
		input.Accent = &a
	}
	return input, nil
}

func parseModeFlag(raw string) (entity.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "light", "default", "prefer-light":
		return entity.ModeLight, nil
	case "dark", "prefer-dark":
		return entity.ModeDark, nil
	default:
		return "", fmt.Errorf("unknown mode %q (use: light, dark)", raw)
	}
}

func confirmOverrides(theme *styles.Theme, input usecase.ApplyThemeInput) (bool, error) {
	var details []string
	if input.Mode != nil {
		details = append(details, "color-scheme: "+input.Mode.ColorScheme())
	}
	if input.Accent != nil {
		details = append(details, "accent-color: "+string(*input.Accent))
	}

	final, err := tea.NewProgram(styles.NewConfirm(theme, "Change GNOME appearance settings?", details...)).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	m, ok := final.(styles.ConfirmModel)
	return ok && m.Result(), nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	return err == nil
}
