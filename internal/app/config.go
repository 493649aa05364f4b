package app

import (
	"errors"
	"fmt"
)

// DefaultInputPath is read when no input is given.
const DefaultInputPath = "input.txt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath string // text file, .hcl file or directory of .hcl files

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("invalid worker count %d: must be at least 1", cfg.WorkerCount)
	}
	if _, ok := parseLevel(cfg.LogLevel); !ok {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	return &cfg, nil
}
