package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content document and report its sections",
	Long: `Loads the configured content document and prints which of the page
sections it provides. Exits non-zero when the document cannot be loaded.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	loader := newLoader(cfg, logger)
	c, err := loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Content document: %s\n\n", loader.Source())

	present := 0
	for _, s := range c.Sections() {
		mark, note := "✓", ""
		if !s.Present {
			mark, note = "-", " (skipped)"
		} else {
			present++
		}
		fmt.Fprintf(out, "  %s %s%s\n", mark, s.Name, note)
	}
	fmt.Fprintf(out, "\n%d of %d sections present\n", present, len(content.SectionNames))
	return nil
}
