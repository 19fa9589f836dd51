package config

import (
	"errors"
	"fmt"
)

// Error definitions for the config package
var (
	// ErrInvalidConfigPath is returned when the config file path is invalid
	ErrInvalidConfigPath = errors.New("invalid config file path")

	// ErrInvalidConfigValue is returned when a setting fails validation
	ErrInvalidConfigValue = errors.New("invalid config value")
)

// ErrInvalidValue provides detailed information about a rejected setting
type ErrInvalidValue struct {
	Field  string
	Value  any
	Reason string
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid value for global.%s: %v (%s)", e.Field, e.Value, e.Reason)
}

func (e *ErrInvalidValue) Unwrap() error {
	return ErrInvalidConfigValue
}
