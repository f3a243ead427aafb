package main

import (
	"os"

	"go.uber.org/zap"
)

// logger is the process-wide logger, shared by all commands.
var logger *zap.Logger

func main() {
	logger = zap.Must(zap.NewProduction())

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
