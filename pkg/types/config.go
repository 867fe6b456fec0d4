package types

import (
	"errors"
	"strings"
)

// Config holds the runtime settings read from config.yaml, the environment,
// and command-line flags. The state file location is not part of Config; it
// is always state.ron in the working directory.
type Config struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file,omitempty"`
	HistoryFile string `mapstructure:"history_file" yaml:"history_file,omitempty"`
}

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = LogLevelWarn

// Config validation errors.
var (
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownLogLevels lists the levels that Validate accepts.
var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{LogLevel: DefaultLogLevel}
}

// Validate checks that the Config is well-formed. An empty LogLevel is
// accepted and means DefaultLogLevel.
func (c Config) Validate() error {
	if c.LogLevel == "" {
		return nil
	}
	if !knownLogLevels[strings.ToLower(c.LogLevel)] {
		return ErrLogLevelUnknown
	}
	return nil
}
