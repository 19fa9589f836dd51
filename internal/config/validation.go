package config

import (
	"fmt"

	"github.com/isseis/go-string-mapper/internal/codec"
)

// Validate checks that every global setting names something that exists.
func Validate(cfg *Config) error {
	g := &cfg.Global

	if _, err := codec.Lookup(g.Codec); err != nil {
		return fmt.Errorf("%w: %w", &ErrInvalidValue{Field: "codec", Value: g.Codec, Reason: "unknown codec"}, err)
	}

	if _, err := codec.ParseDirection(g.Direction); err != nil {
		return &ErrInvalidValue{Field: "direction", Value: g.Direction, Reason: "must be encode or decode"}
	}

	if _, err := g.LogLevel.ToSlogLevel(); err != nil {
		return &ErrInvalidValue{Field: "log_level", Value: g.LogLevel, Reason: "must be one of: debug, info, warn, error"}
	}

	if g.Workers < 1 || g.Workers > MaxWorkers {
		return &ErrInvalidValue{Field: "workers", Value: g.Workers, Reason: fmt.Sprintf("must be between 1 and %d", MaxWorkers)}
	}

	return nil
}
