package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Common errors
var (
	ErrEmptyLogDirectory = errors.New("log directory cannot be empty")
	ErrLogDirNotDir      = errors.New("log directory path is not a directory")
)

const (
	logDirPerm  os.FileMode = 0o750
	logFilePerm os.FileMode = 0o600

	// SchemaVersion is attached to every JSON log record
	SchemaVersion = 1

	logTimestampFormat = "20060102T150405Z"
)

// osHostname allows tests to replace os.Hostname.
var osHostname = os.Hostname

// UnknownHostFallback is used when the hostname cannot be determined
const UnknownHostFallback = "unknown-host"

// Hostname returns the hostname of the current machine, or UnknownHostFallback.
func Hostname() string {
	hostname, err := osHostname()
	if err != nil {
		return UnknownHostFallback
	}
	return hostname
}

// LoggerConfig holds all configuration for logger setup
type LoggerConfig struct {
	Level         slog.Level
	LogDir        string
	RunID         string
	ConsoleWriter io.Writer // Writer for console output, stderr when nil
}

// Logger is a configured slog.Logger together with the resources it owns.
type Logger struct {
	*slog.Logger
	// LogPath is the JSON log file, empty when no log directory was configured
	LogPath string
	file    *os.File
}

// Close flushes and closes the JSON log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// SetupLogger builds the run logger: a text handler on the console writer and,
// when config.LogDir is set, a JSON handler writing to
// <LogDir>/<hostname>_<timestamp>_<runID>.json.
func SetupLogger(config LoggerConfig) (*Logger, error) {
	console := config.ConsoleWriter
	if console == nil {
		console = os.Stderr
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(console, &slog.HandlerOptions{Level: config.Level}),
	}

	result := &Logger{}
	hostname := Hostname()

	if config.LogDir != "" {
		if err := ValidateLogDir(config.LogDir); err != nil {
			return nil, fmt.Errorf("invalid log directory: %w", err)
		}

		timestamp := time.Now().UTC().Format(logTimestampFormat)
		logPath := filepath.Join(config.LogDir, fmt.Sprintf("%s_%s_%s.json", hostname, timestamp, config.RunID))
		// #nosec G304 - logPath is built from a validated directory and generated name
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, logFilePerm)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		result.file = f
		result.LogPath = logPath

		jsonHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: config.Level})
		handlers = append(handlers, jsonHandler.WithAttrs([]slog.Attr{
			slog.String("hostname", hostname),
			slog.Int("pid", os.Getpid()),
			slog.Int("schema_version", SchemaVersion),
			slog.String("run_id", config.RunID),
		}))
	}

	result.Logger = slog.New(NewMultiHandler(handlers...))
	result.Debug("Logger initialized",
		"log_level", config.Level.String(),
		"log_dir", config.LogDir,
		"run_id", config.RunID,
		"hostname", hostname)

	return result, nil
}

// ValidateLogDir ensures the log directory exists, creating it if needed,
// and is writable.
func ValidateLogDir(dir string) error {
	if dir == "" {
		return ErrEmptyLogDirectory
	}

	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return fmt.Errorf("cannot create log directory %s: %w", dir, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot stat log directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrLogDirNotDir, dir)
	}

	f, err := os.CreateTemp(dir, ".write_test")
	if err != nil {
		return fmt.Errorf("cannot write to log directory %s: %w", dir, err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close test file: %w", err)
	}
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("failed to remove test file: %w", err)
	}

	return nil
}
