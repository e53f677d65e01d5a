package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Render a portfolio page from a JSON content document",
	Long: `folio fills the regions of a portfolio page (navigation, hero, about,
skills, qualifications, projects, resume, footer) and its meta tags from a
single JSON content document. Build a static site with folio build, or
preview with live reload using folio serve.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
