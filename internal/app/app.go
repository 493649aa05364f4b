package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/crossedwires/internal/input"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader input.Loader
}

// NewApp returns an App that writes its report to outW and its logs to logW.
// A nil loader selects input.NewLoader.
func NewApp(outW, logW io.Writer, cfg *Config, loader input.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = input.NewLoader()
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
