// Package config holds process settings read from the environment and flags.
package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"taskflow/internal/form"
)

const (
	// AppName is the application name and the environment variable prefix.
	AppName = "taskflow"
)

// Config holds runtime settings.
// Environment variables use the TASKFLOW_ prefix (TASKFLOW_DEBUG, ...).
type Config struct {
	// Debug enables debug logging.
	Debug bool `default:"false"`

	// Quiet suppresses informational output.
	Quiet bool `default:"false"`

	// Seed preloads the sample tasks into a new board.
	Seed bool `default:"true"`

	// Today pins the current date (YYYY-MM-DD). Empty means the local date.
	Today string

	// Logger receives debug and diagnostic records. Set by the dispatcher.
	Logger *slog.Logger `ignored:"true"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that have a fixed format.
func (c *Config) Validate() error {
	if c.Today == "" {
		return nil
	}
	if _, err := form.ParseDueDate(c.Today); err != nil {
		return fmt.Errorf("invalid today: %s (want YYYY-MM-DD)", c.Today)
	}
	return nil
}
