package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/domain/entity"
)

var namesSuffix string

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Print the theme names for every accent and mode",
	Long: `Print the Orchis and Tela theme names themesync derives for every
accent color in light and dark mode.

Examples:
  themesync names                   # plain names
  themesync names --suffix -Compact # names of the compact variant`,
	RunE: runNames,
}

func init() {
	rootCmd.AddCommand(namesCmd)
	namesCmd.Flags().StringVarP(&namesSuffix, "suffix", "s", "", "suffix appended to window/shell theme names")
}

func runNames(_ *cobra.Command, _ []string) error {
	renderer := styles.NewNamesRenderer(styles.NewTheme(entity.DefaultAccent))
	fmt.Println(renderer.Render(namesSuffix))
	return nil
}
