package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger builds the tint console logger and installs it as the slog default.
func NewLogger(level slog.Level, prod bool) *slog.Logger {
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		AddSource:  !prod,
		TimeFormat: time.DateTime,
		NoColor:    prod,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
