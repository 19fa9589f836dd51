// Package config provides functionality for loading and validating the TOML
// configuration of the strmap command. Values are resolved in the order
// command-line flag, environment variable, configuration file, default.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Config is the top-level configuration file structure.
type Config struct {
	Global GlobalConfig `toml:"global"`
}

// GlobalConfig holds the settings of the [global] table.
type GlobalConfig struct {
	// Codec is the registry name of the codec to apply (json, uri, uri-component, utf8)
	Codec string `toml:"codec"`
	// Direction is either "encode" or "decode"
	Direction string `toml:"direction"`
	// LogLevel is the minimum level written to the console and log file
	LogLevel LogLevel `toml:"log_level"`
	// LogDir enables a per-run JSON log file when non-empty
	LogDir string `toml:"log_dir"`
	// ContinueOnError keeps mapping the remaining lines after a failure
	ContinueOnError bool `toml:"continue_on_error"`
	// Workers is the number of lines mapped concurrently
	Workers int `toml:"workers"`
}

// LogLevel represents the logging level for the application.
// Valid values: debug, info, warn, error
type LogLevel string

const (
	// LogLevelDebug enables debug-level logging
	LogLevelDebug LogLevel = "debug"

	// LogLevelInfo enables info-level logging (default)
	LogLevelInfo LogLevel = "info"

	// LogLevelWarn enables warning-level logging
	LogLevelWarn LogLevel = "warn"

	// LogLevelError enables error-level logging only
	LogLevelError LogLevel = "error"
)

// ErrInvalidLogLevel is returned when an invalid log level is provided
var ErrInvalidLogLevel = errors.New("invalid log level")

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// This enables validation during TOML parsing.
func (l *LogLevel) UnmarshalText(text []byte) error {
	level, err := ParseLogLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// ParseLogLevel converts s to a LogLevel. The empty string yields LogLevelInfo.
func ParseLogLevel(s string) (LogLevel, error) {
	switch level := LogLevel(strings.ToLower(strings.TrimSpace(s))); level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return level, nil
	case "":
		return LogLevelInfo, nil
	default:
		return "", fmt.Errorf("%w: %q (must be one of: debug, info, warn, error)", ErrInvalidLogLevel, s)
	}
}

// ToSlogLevel converts LogLevel to slog.Level for use with the slog package.
func (l LogLevel) ToSlogLevel() (slog.Level, error) {
	switch strings.ToLower(string(l)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l)
	}
}

// String returns the string representation of LogLevel.
func (l LogLevel) String() string {
	return string(l)
}
