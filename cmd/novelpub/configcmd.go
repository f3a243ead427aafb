package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simp-lee/novelpub/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Create(configPath); err != nil {
			return err
		}
		logger.Info("configuration written", zap.String("path", configPath))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
