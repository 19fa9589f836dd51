package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables consulted by ApplyEnv
const (
	EnvCodec    = "STRMAP_CODEC"
	EnvLogLevel = "STRMAP_LOG_LEVEL"
)

// Loader handles loading and validating configurations
type Loader struct {
	readFile func(string) ([]byte, error)
	lookup   func(string) (string, bool)
}

// NewLoader creates a new config loader reading from the real file system
// and process environment.
func NewLoader() *Loader {
	return &Loader{
		readFile: os.ReadFile,
		lookup:   os.LookupEnv,
	}
}

// NewLoaderWithEnv creates a config loader that resolves environment
// variables through lookup.
func NewLoaderWithEnv(lookup func(string) (string, bool)) *Loader {
	l := NewLoader()
	l.lookup = lookup
	return l
}

// LoadFile reads and loads the configuration at configPath.
// An empty path yields the defaults, with environment overrides applied.
func (l *Loader) LoadFile(configPath string) (*Config, error) {
	if configPath == "" {
		return l.LoadConfig("", nil)
	}

	cleaned := filepath.Clean(configPath)
	info, err := os.Stat(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfigPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidConfigPath, cleaned)
	}

	content, err := l.readFile(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", cleaned, err)
	}
	return l.LoadConfig(cleaned, content)
}

// LoadConfig parses content, applies environment overrides and defaults,
// and validates the result. configPath is only used in error messages.
func (l *Loader) LoadConfig(configPath string, content []byte) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		if configPath == "" {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	if err := l.ApplyEnv(&cfg); err != nil {
		return nil, err
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyEnv overrides cfg with the STRMAP_* environment variables that are set
// and non-empty.
func (l *Loader) ApplyEnv(cfg *Config) error {
	if v, ok := l.lookup(EnvCodec); ok && v != "" {
		cfg.Global.Codec = v
	}
	if v, ok := l.lookup(EnvLogLevel); ok && v != "" {
		level, err := ParseLogLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.Global.LogLevel = level
	}
	return nil
}
