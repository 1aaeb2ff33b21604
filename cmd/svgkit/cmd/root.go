package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ideamans/svgkit/pkg/config"
	"github.com/ideamans/svgkit/pkg/logging"
)

var (
	cfgFile string
	version = "dev" // Set by build
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "svgkit",
	Short: "svgkit - SVG icon set resolver and renderer",
	Long: `svgkit resolves named references to SVG icon files across configured
icon sets, caches their contents, and renders them as markup with merged
CSS attributes.

Icon sets are directories of SVG files registered under short prefixes in
a YAML or JSON configuration file. Icons are addressed by logical names
like "camera", "icon-camera" (prefixed) or "solid.camera" (subdirectory).`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "svgkit.yaml", "Path to configuration file")
}

// loadConfig loads the configuration file named by the --config flag
func loadConfig() (*config.Config, error) {
	return config.NewFileLoader(cfgFile).Load()
}

// newLogger creates the CLI logger from configuration
func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewSimpleLogger("svgkit", logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Color)
}
