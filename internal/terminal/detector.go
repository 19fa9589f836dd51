// Package terminal decides whether strmap is attached to a person at a
// terminal or running unattended, for example in a pipeline or CI job.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"TRAVIS",                 // Travis CI
	"CIRCLECI",               // Circle CI
	"JENKINS_URL",            // Jenkins
	"BUILD_NUMBER",           // Jenkins/TeamCity/etc
	"GITLAB_CI",              // GitLab CI
	"APPVEYOR",               // AppVeyor
	"BUILDKITE",              // Buildkite
	"DRONE",                  // Drone CI
	"TF_BUILD",               // Azure DevOps
}

// DetectorOptions contains options for controlling interactive detection
type DetectorOptions struct {
	ForceInteractive    bool // Treat input as interactive regardless of environment
	ForceNonInteractive bool // Treat input as non-interactive regardless of environment

	// Getenv reads environment variables, os.Getenv when nil
	Getenv func(string) string
	// IsTerminal reports whether a file descriptor is a terminal, term.IsTerminal when nil
	IsTerminal func(fd int) bool
}

// fileDescriptor is implemented by *os.File
type fileDescriptor interface {
	Fd() uintptr
}

// Detector decides whether a reader is an interactive terminal
type Detector struct {
	options DetectorOptions
}

// NewDetector creates a new detector with the given options
func NewDetector(options DetectorOptions) *Detector {
	if options.Getenv == nil {
		options.Getenv = os.Getenv
	}
	if options.IsTerminal == nil {
		options.IsTerminal = term.IsTerminal
	}
	return &Detector{options: options}
}

// IsInteractiveInput reports whether reading input would block on a person
// typing at a terminal. Readers that are not files are never interactive.
func (d *Detector) IsInteractiveInput(input any) bool {
	// Priority 1: Command line options (highest priority)
	if d.options.ForceInteractive {
		return true
	}
	if d.options.ForceNonInteractive {
		return false
	}

	// Priority 2: CI environment detection
	if d.IsCIEnvironment() {
		return false
	}

	// Priority 3: Terminal detection
	f, ok := input.(fileDescriptor)
	if !ok {
		return false
	}
	return d.options.IsTerminal(int(f.Fd()))
}

// IsCIEnvironment checks if the current environment is a CI/CD system
func (d *Detector) IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		if value := d.options.Getenv(envVar); value != "" {
			// CI=false and friends do not count
			if envVar == "CI" {
				return isCITruthy(value)
			}
			return true
		}
	}

	return false
}

// isCITruthy checks if a CI environment variable value should be considered "true"
func isCITruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "false" && lower != "0" && lower != "no"
}
