package main

import (
	"log/slog"
	"os"
	"strings"
)

func setupLogger(level string) {
	var logLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ //nolint:exhaustruct
		Level: logLevel,
	})

	slog.SetDefault(slog.New(handler))
}

func main() {
	if errExecute := rootCmd().Execute(); errExecute != nil {
		slog.Error("Command returned error", ErrAttr(errExecute))
		os.Exit(1)
	}
}
