package main

import (
	"github.com/spf13/cobra"

	"github.com/simp-lee/novelpub/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "novelpub",
	Short: "Assemble generated novel chapters into ePub files",
	Long: `novelpub packages a directory of generated novel chapters into a
valid ePub archive, and verifies that configured LLM and embedding
endpoints are reachable before generation.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFileName, "Configuration file path")
}

// loadConfig reads the configuration from the --config path, creating it
// with defaults when missing.
func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}
