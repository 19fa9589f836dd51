package config

// Default values for configuration fields
const (
	DefaultCodec     = "json"
	DefaultDirection = "encode"
	DefaultLogLevel  = LogLevelInfo
	DefaultWorkers   = 4

	// MaxWorkers bounds the worker pool size
	MaxWorkers = 256
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields of cfg with their default values
func ApplyDefaults(cfg *Config) {
	g := &cfg.Global
	if g.Codec == "" {
		g.Codec = DefaultCodec
	}
	if g.Direction == "" {
		g.Direction = DefaultDirection
	}
	if g.LogLevel == "" {
		g.LogLevel = DefaultLogLevel
	}
	if g.Workers == 0 {
		g.Workers = DefaultWorkers
	}
}
