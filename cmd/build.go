package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the portfolio page into a static site",
	Long: `Loads the content document, renders it into the page shell, and writes
index.html, the behavior script, the content document, and the static assets
to the output directory.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to site.output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	outputDir := cfg.Site.OutputDir
	if override, _ := cmd.Flags().GetString("output"); override != "" {
		outputDir = override
	}

	builder := site.NewBuilder(site.BuildConfig{
		ShellPath: cfg.Site.Shell,
		StaticDir: cfg.Site.StaticDir,
		OutputDir: outputDir,
		Exclude:   cfg.Site.Exclude,
	}, newLoader(cfg, logger),
		site.WithBuildLogger(logger),
		site.WithReporter(progress.NewReporter(os.Stderr)),
	)

	result, err := builder.Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Site built: %s (%d assets copied, %d unchanged)\n",
		result.OutputDir, result.AssetsCopied, result.AssetsUnchanged)
	if !result.ContentLoaded {
		fmt.Fprintf(out, "Warning: content could not be loaded from %s; the page was written unfilled.\n", cfg.Content.Source)
	}
	return nil
}
