package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/viper"
)

var version = "dev"

func main() {
	logLevel := &slog.LevelVar{}
	logger := SetupLoggerWithWriter(os.Stderr, logLevel)

	rootCmd := newRootCmd(viper.GetViper(), logger, logLevel)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
