// Package main is the entry point for the hollow writing app.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/sudokatie/hollow/internal/app"
	"github.com/sudokatie/hollow/internal/config"
	"github.com/sudokatie/hollow/internal/session"
	"github.com/sudokatie/hollow/internal/storage"
	"github.com/sudokatie/hollow/internal/tui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logPath     string
		logLevel    string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&logPath, "log", "", "Write a debug log to this file")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "hollow - distraction-free writing\n\n")
		fmt.Fprintf(os.Stderr, "Usage: hollow [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("hollow %s (%s)\n", version, commit)
		return 0
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	path := flag.Arg(0)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: hollow needs an interactive terminal")
		return 1
	}

	if configPath == "" {
		configPath = defaultConfigPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, cleanup, err := newLogger(logPath, logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer cleanup()

	sess, err := session.New(storage.NewFileStore(path), cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := tui.Run(sess, tui.NewView(cfg.TextWidth), log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newLogger builds a file logger, or a silent one when no log path was
// given. The terminal owns stderr while the screen is up, so there is no
// useful default sink.
func newLogger(path, level string) (*app.Logger, func(), error) {
	if path == "" {
		return app.NullLogger, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log %s: %w", path, err)
	}
	log := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(level),
		Output: f,
		Prefix: "hollow",
	})
	return log, func() { _ = f.Close() }, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".hollow.json"
	}
	return filepath.Join(dir, "hollow", "config.json")
}
