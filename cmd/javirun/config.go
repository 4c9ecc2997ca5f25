package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/javi-run/internal/config"
)

var flagConfigFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after defaults
and repairs are applied. The output is a valid config file.

Examples:
  javirun config
  javirun config --format toml > ~/.javirun/configs/runner.toml
  javirun config --config ./runner.yaml --strict-config`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	format := config.Format(flagConfigFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		fail("unknown format %q (want yaml or toml)", flagConfigFormat)
	}

	s := newSetup()
	defer s.closer.Close()

	data, err := config.Encode(s.cfg, format)
	if err != nil {
		s.closer.Close()
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
