package terminal

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeFile satisfies fileDescriptor without touching the real process files
type fakeFile struct{ fd uintptr }

func (f fakeFile) Fd() uintptr { return f.fd }

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetector_IsInteractiveInput(t *testing.T) {
	terminalFD := func(fd int) bool { return fd == 0 }

	tests := []struct {
		name            string
		envVars         map[string]string
		options         DetectorOptions
		input           any
		wantInteractive bool
	}{
		{
			name:            "terminal stdin",
			input:           fakeFile{fd: 0},
			wantInteractive: true,
		},
		{
			name:            "redirected stdin",
			input:           fakeFile{fd: 7},
			wantInteractive: false,
		},
		{
			name:            "reader without descriptor",
			input:           strings.NewReader("line\n"),
			wantInteractive: false,
		},
		{
			name:            "CI environment detected - GITHUB_ACTIONS",
			envVars:         map[string]string{"GITHUB_ACTIONS": "true"},
			input:           fakeFile{fd: 0},
			wantInteractive: false,
		},
		{
			name:            "CI environment detected - JENKINS_URL",
			envVars:         map[string]string{"JENKINS_URL": "http://jenkins.example.com"},
			input:           fakeFile{fd: 0},
			wantInteractive: false,
		},
		{
			name:            "CI=false is not CI",
			envVars:         map[string]string{"CI": "false"},
			input:           fakeFile{fd: 0},
			wantInteractive: true,
		},
		{
			name:            "force interactive overrides CI",
			envVars:         map[string]string{"CI": "true"},
			options:         DetectorOptions{ForceInteractive: true},
			input:           strings.NewReader(""),
			wantInteractive: true,
		},
		{
			name:            "force non-interactive",
			options:         DetectorOptions{ForceNonInteractive: true},
			input:           fakeFile{fd: 0},
			wantInteractive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.options
			opts.Getenv = envFrom(tt.envVars)
			opts.IsTerminal = terminalFD

			detector := NewDetector(opts)
			assert.Equal(t, tt.wantInteractive, detector.IsInteractiveInput(tt.input))
		})
	}
}

func TestDetector_IsCIEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    bool
	}{
		{name: "no variables", envVars: nil, want: false},
		{name: "CI=true", envVars: map[string]string{"CI": "true"}, want: true},
		{name: "CI=1", envVars: map[string]string{"CI": "1"}, want: true},
		{name: "CI=0", envVars: map[string]string{"CI": "0"}, want: false},
		{name: "CI= No ", envVars: map[string]string{"CI": " No "}, want: false},
		{name: "GITLAB_CI", envVars: map[string]string{"GITLAB_CI": "yes"}, want: true},
		{name: "TF_BUILD", envVars: map[string]string{"TF_BUILD": "True"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewDetector(DetectorOptions{Getenv: envFrom(tt.envVars)})
			assert.Equal(t, tt.want, detector.IsCIEnvironment())
		})
	}
}

func TestDetector_RegularFileIsNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "input")
	if !assert.NoError(t, err) {
		return
	}
	defer f.Close()

	detector := NewDetector(DetectorOptions{Getenv: envFrom(nil)})
	assert.False(t, detector.IsInteractiveInput(f))
}
