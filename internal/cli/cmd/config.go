package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/config"
)

var configSchemaOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Inspect the configuration file and generate its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path and whether it is valid",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration in effect after defaults, environment overrides
(THEMESYNC_*) and normalization have been applied.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or write the JSON schema of the config file",
	Long: `Generate the JSON schema describing config.toml, for editor validation.

Examples:
  themesync config schema                         # print to stdout
  themesync config schema --output schema.json    # write to a file`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().StringVarP(&configSchemaOutput, "output", "o", "", "write the schema to this file")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	fmt.Println(renderer.RenderPath(configFile, app.ConfigErr))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	body, err := config.EncodeTOML(app.Config)
	if err != nil {
		return err
	}
	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderEffective(body))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if configSchemaOutput != "" {
		if err := config.WriteSchemaFile(configSchemaOutput); err != nil {
			return err
		}
		renderer := styles.NewConfigRenderer(styles.NewTheme(entity.DefaultAccent))
		fmt.Println(renderer.RenderSchemaWritten(configSchemaOutput))
		return nil
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(schema))
	return nil
}
