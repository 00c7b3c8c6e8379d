package main

import (
	"fmt"
	"io"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the CLI configuration.
// Environment variables are parsed from the MEETINGTIME_ prefix and can be
// overridden by flags.
type Config struct {
	Output   string `envconfig:"OUTPUT" default:"text"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
}

// Validate rejects unknown output formats and log levels.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unsupported output %q (want text, json or yaml)", c.Output)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unsupported log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// LoadConfig reads the configuration from the environment.
// Example: MEETINGTIME_OUTPUT=json, MEETINGTIME_LOG_LEVEL=debug
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("MEETINGTIME", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// newLogger returns a console logger on w at the configured level.
func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Str("service", "meetingtime").
		Timestamp().
		Logger(), nil
}
