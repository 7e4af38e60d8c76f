package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/cli/styles"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show preferences, derived themes and sync state",
	Long: `Show the current GNOME appearance preferences, the theme bundle they
map to, what each subsystem reports right now and the last successful
sync recorded by the daemon. Nothing is written.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewInspectStatusUseCase(app.Prefs, app.FS, app.Assets, app.ValidateUC, app.DriftUC)
	out := uc.Execute(app.Ctx(), usecase.InspectStatusInput{
		DefaultAccent: app.DefaultAccent,
		Suffix:        app.Suffix,
	})

	extras := styles.StatusExtras{
		Suffix:       app.Suffix,
		GTK4Dir:      app.Assets.GTK4ConfigDir,
		GTK4Writable: writableDir(app.Assets.GTK4ConfigDir),
		CacheFile:    app.Store.Path(),
	}
	if app.ConfigErr != nil {
		extras.ConfigWarnings = append(extras.ConfigWarnings, app.ConfigErr.Error())
	}

	fmt.Println(styles.NewStatusRenderer(app.Theme).Render(out, extras))
	return nil
}

// writableDir reports whether dir, or the closest existing parent that
// would hold it, is writable by the current user.
func writableDir(dir string) bool {
	for {
		err := unix.Access(dir, unix.W_OK)
		if err == nil {
			return true
		}
		if !errors.Is(err, unix.ENOENT) {
			return false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}
