package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	xdgadapter "github.com/bnema/themesync/internal/infrastructure/xdg"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files

By default, man pages are installed to ~/.local/share/man/man1/ so they
are available via 'man themesync'. Run 'mandb' if the index is stale.

Examples:
  themesync gen-docs                       # Install man pages
  themesync gen-docs --format markdown     # Generate markdown into ./docs
  themesync gen-docs --output ./man        # Generate to a local directory`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	outputDir, err := docsOutputDir(genDocsFormat, genDocsOutputDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output
	rootCmd.DisableAutoGenTag = true

	var ext string
	switch genDocsFormat {
	case "man":
		ext = ".1"
		header := &doc.GenManHeader{
			Title:   "THEMESYNC",
			Section: "1",
			Source:  "themesync " + buildInfo.Version,
			Manual:  "themesync Manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
	case "markdown":
		ext = ".md"
		if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
	}

	fmt.Printf("Generated %s docs in %s\n", genDocsFormat, outputDir)
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil // Non-fatal
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Printf("  - %s\n", e.Name())
		}
	}
	return nil
}

// docsOutputDir resolves the target directory for format.
func docsOutputDir(format, output string) (string, error) {
	switch format {
	case "man", "markdown":
	default:
		return "", fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
	if output != "" {
		return output, nil
	}
	if format == "markdown" {
		return "./docs", nil
	}
	manDir, err := xdgadapter.New().ManDir()
	if err != nil {
		return "", fmt.Errorf("resolve man directory: %w", err)
	}
	return manDir, nil
}
