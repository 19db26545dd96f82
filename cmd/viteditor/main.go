// Package main is the entry point for the viteditor editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dshills/viteditor/internal/app"
	"github.com/dshills/viteditor/internal/config"
	"github.com/dshills/viteditor/internal/input"
	"github.com/dshills/viteditor/internal/renderer"
	"github.com/dshills/viteditor/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliOptions struct {
	app.Options

	keys        string
	rows, cols  int
	showVersion bool
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "viteditor %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return exitOK
	}

	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return exitError
	}
	defer application.Shutdown()

	if opts.keys != "" {
		return replay(application, opts, stdout, stderr)
	}

	surface, source, err := newBackend(application.Config().UI.Backend)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return exitError
	}
	if err := application.SetBackend(surface, source); err != nil {
		fmt.Fprintf(stderr, "Error: failed to set backend: %v\n", err)
		return exitError
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	if lc, ok := surface.(app.Lifecycle); ok {
		stop := watchSignals(signals, lc)
		defer stop()
	}

	if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

// watchSignals shuts lc down when a signal arrives. Shutting the backend
// down ends its pending read, which ends Run. The returned stop function
// ends the watch and waits for it to finish.
func watchSignals(signals <-chan os.Signal, lc app.Lifecycle) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		select {
		case <-signals:
			lc.Shutdown()
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		<-finished
	}
}

// newBackend creates the interactive backend named in the configuration.
func newBackend(kind string) (renderer.Surface, input.Source, error) {
	switch kind {
	case config.BackendStream:
		s := backend.NewStream(os.Stdin, os.Stdout)
		return s, s, nil
	default:
		t, err := backend.NewTerminal()
		if err != nil {
			return nil, nil, err
		}
		return t, t, nil
	}
}

// replay runs the key script on an in-memory grid and prints the final
// screen.
func replay(application *app.Application, opts *cliOptions, stdout, stderr io.Writer) int {
	src, err := input.ParseScript(opts.keys)
	if err != nil {
		fmt.Fprintf(stderr, "Error: -keys: %v\n", err)
		return exitUsage
	}

	grid := backend.NewGrid(opts.rows, opts.cols)
	if err := application.SetBackend(grid, src); err != nil {
		fmt.Fprintf(stderr, "Error: failed to set backend: %v\n", err)
		return exitError
	}
	if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	fmt.Fprintln(stdout, grid.String())
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (*cliOptions, error) {
	opts := &cliOptions{}
	fs := flag.NewFlagSet("viteditor", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var logLevel, logFile, backendName string

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (TOML or YAML)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&backendName, "backend", "", "Terminal backend (tcell, ansi)")
	fs.StringVar(&opts.keys, "keys", "", "Replay keys headlessly and print the screen, e.g. 'ihi<Esc>q'")
	fs.IntVar(&opts.rows, "rows", backend.DefaultRows, "Screen rows for -keys")
	fs.IntVar(&opts.cols, "cols", backend.DefaultCols, "Screen columns for -keys")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "viteditor - a minimal modal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: viteditor [options] FILE\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  viteditor notes.txt                   Edit a file\n")
		fmt.Fprintf(stderr, "  viteditor -backend ansi notes.txt     Use the plain ANSI backend\n")
		fmt.Fprintf(stderr, "  viteditor -keys 'jjihi<Esc>q' a.txt    Replay keys and print the screen\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.showVersion {
		return opts, nil
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "Error: expected exactly one file, got %d\n\n", fs.NArg())
		fs.Usage()
		return nil, errors.New("wrong number of arguments")
	}
	opts.Path = fs.Arg(0)

	overrides := map[string]any{}
	if logLevel != "" {
		overrides["log.level"] = logLevel
	}
	if logFile != "" {
		overrides["log.file"] = logFile
	}
	if backendName != "" {
		overrides["ui.backend"] = backendName
	}
	opts.Overrides = overrides

	if opts.keys != "" && (opts.rows < 1 || opts.cols < 1) {
		fmt.Fprintf(stderr, "Error: -rows and -cols must be positive\n")
		return nil, errors.New("invalid size")
	}

	return opts, nil
}
