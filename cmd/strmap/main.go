// Package main provides the strmap command. It applies one of the escape
// codecs (json, uri, uri-component, utf8) to each command-line argument, or to
// each line of standard input, and writes the results in input order.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/isseis/go-string-mapper/internal/batch"
	"github.com/isseis/go-string-mapper/internal/codec"
	"github.com/isseis/go-string-mapper/internal/config"
	"github.com/isseis/go-string-mapper/internal/logging"
	"github.com/isseis/go-string-mapper/internal/terminal"
)

const (
	// maxLineSize bounds a single stdin line
	maxLineSize = 16 * 1024 * 1024
	initialBuf  = 64 * 1024
)

var (
	errInteractiveInput = errors.New("refusing to read from an interactive terminal; pass arguments or pipe input")

	lookupEnv   = os.LookupEnv
	newDetector = func() *terminal.Detector {
		return terminal.NewDetector(terminal.DetectorOptions{})
	}
)

type cliOptions struct {
	codec      string
	decode     bool
	configPath string
	logLevel   string
	logDir     string
	workers    int
	keepGoing  bool
	list       bool
	set        map[string]bool
	inputs     []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Generate run ID early for error handling
	runID := logging.GenerateRunID()

	opts, fs, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		printUsage(fs, stderr)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.list {
		for _, name := range codec.Names() {
			_, _ = fmt.Fprintln(stdout, name)
		}
		return 0
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		logging.HandleRunError(stderr, &logging.RunError{
			Type:      logging.ErrorTypeConfigParsing,
			Message:   "Failed to load configuration",
			Component: "config",
			RunID:     runID,
			Err:       err,
		})
		return 1
	}

	// Validate has checked the level
	level, _ := cfg.Global.LogLevel.ToSlogLevel()
	logger, err := logging.SetupLogger(logging.LoggerConfig{
		Level:         level,
		LogDir:        cfg.Global.LogDir,
		RunID:         runID,
		ConsoleWriter: stderr,
	})
	if err != nil {
		logging.HandleRunError(stderr, &logging.RunError{
			Type:      logging.ErrorTypeLogFileOpen,
			Message:   "Failed to setup logger",
			Component: "logging",
			RunID:     runID,
			Err:       err,
		})
		return 1
	}
	slog.SetDefault(logger.Logger)
	defer func() {
		if err := logger.Close(); err != nil {
			_, _ = fmt.Fprintf(stderr, "Warning: failed to close log file: %v\n", err)
		}
	}()

	// Validate has checked both names
	c, _ := codec.Lookup(cfg.Global.Codec)
	direction, _ := codec.ParseDirection(cfg.Global.Direction)

	var src batch.Source
	if len(opts.inputs) > 0 {
		src = &argSource{args: opts.inputs}
	} else {
		if newDetector().IsInteractiveInput(stdin) {
			logging.HandleRunError(stderr, &logging.RunError{
				Type:      logging.ErrorTypeInteractiveInput,
				Message:   errInteractiveInput.Error(),
				Component: "input",
				RunID:     runID,
			})
			return 1
		}
		scanner := bufio.NewScanner(stdin)
		scanner.Buffer(make([]byte, 0, initialBuf), maxLineSize)
		src = scanner
	}

	logger.Debug("Mapping started",
		"codec", c.Name(),
		"direction", string(direction),
		"workers", cfg.Global.Workers,
		"continue_on_error", cfg.Global.ContinueOnError)

	out := bufio.NewWriter(stdout)
	sum, runErr := batch.Run(ctx, src, func(line string) (string, error) {
		return c.Apply(direction, line)
	}, batch.Options{
		Workers:         cfg.Global.Workers,
		ContinueOnError: cfg.Global.ContinueOnError,
	}, func(r batch.Result) error {
		if r.Err != nil {
			logger.Debug("Line failed", "line", r.Line(), "error", r.Err)
			// Keep stdout and stderr in input order
			if err := out.Flush(); err != nil {
				return err
			}
			_, err := fmt.Fprintf(stderr, "line %d: %v\n", r.Line(), r.Err)
			return err
		}
		_, err := fmt.Fprintln(out, r.Output)
		return err
	})
	if err := out.Flush(); err != nil && runErr == nil {
		runErr = err
	}

	logger.Info("Mapping finished",
		"codec", c.Name(),
		"direction", string(direction),
		"processed", sum.Processed,
		"failed", sum.Failed,
		"unchanged", sum.Unchanged,
		"run_id", runID)

	if runErr != nil && !errors.Is(runErr, batch.ErrStopped) {
		errorType := logging.ErrorTypeInputRead
		if errors.Is(runErr, context.Canceled) {
			errorType = logging.ErrorTypeUserInterrupted
		}
		logging.HandleRunError(stderr, &logging.RunError{
			Type:      errorType,
			Message:   "Mapping aborted",
			Component: "batch",
			RunID:     runID,
			Err:       runErr,
		})
		return 1
	}

	if runErr != nil || sum.Failed > 0 {
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (*cliOptions, *flag.FlagSet, error) {
	opts := &cliOptions{set: make(map[string]bool)}

	fs := flag.NewFlagSet("strmap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	fs.StringVar(&opts.codec, "codec", config.DefaultCodec, "Codec to apply (see -list)")
	fs.BoolVar(&opts.decode, "decode", false, "Decode instead of encode")
	fs.BoolVar(&opts.decode, "d", false, "Short alias for -decode")
	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML configuration file")
	fs.StringVar(&opts.logLevel, "log-level", string(config.DefaultLogLevel), "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logDir, "log-dir", "", "Directory for per-run JSON log files")
	fs.IntVar(&opts.workers, "workers", config.DefaultWorkers, "Number of lines mapped concurrently")
	fs.BoolVar(&opts.keepGoing, "keep-going", false, "Continue with the remaining lines after a failure")
	fs.BoolVar(&opts.list, "list", false, "List the available codecs and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}

	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	opts.inputs = fs.Args()

	return opts, fs, nil
}

// resolveConfig loads the configuration file and environment, then applies
// the flags given explicitly on the command line.
func resolveConfig(opts *cliOptions) (*config.Config, error) {
	cfg, err := config.NewLoaderWithEnv(lookupEnv).LoadFile(opts.configPath)
	if err != nil {
		return nil, err
	}

	g := &cfg.Global
	if opts.set["codec"] {
		g.Codec = opts.codec
	}
	if opts.set["decode"] || opts.set["d"] {
		g.Direction = string(codec.Encode)
		if opts.decode {
			g.Direction = string(codec.Decode)
		}
	}
	if opts.set["log-level"] {
		level, err := config.ParseLogLevel(opts.logLevel)
		if err != nil {
			return nil, err
		}
		g.LogLevel = level
	}
	if opts.set["log-dir"] {
		g.LogDir = opts.logDir
	}
	if opts.set["workers"] {
		g.Workers = opts.workers
	}
	if opts.set["keep-going"] {
		g.ContinueOnError = opts.keepGoing
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	if fs == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Usage: %s [flags] [<text>...]\n", filepath.Base(os.Args[0]))
	_, _ = fmt.Fprintln(w, "Without arguments, each line of standard input is mapped.")
	fs.PrintDefaults()
}

// argSource feeds command-line arguments to batch.Run as lines.
type argSource struct {
	args []string
	pos  int
}

func (s *argSource) Scan() bool {
	if s.pos >= len(s.args) {
		return false
	}
	s.pos++
	return true
}

func (s *argSource) Text() string { return s.args[s.pos-1] }

func (s *argSource) Err() error { return nil }
