// Package main is the entry point for the actionmap input monitor.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionmap/internal/app"
	"github.com/dshills/actionmap/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	opts, logPath := parseFlags(env)

	// The terminal belongs to the screen, so logs go to a file or nowhere.
	opts.LogOutput = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		opts.LogOutput = f
	}

	// Create application
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetScreen(screen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set screen: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags(env config.Env) (app.Options, string) {
	opts := app.Options{
		ConfigPath:    env.ConfigPath,
		LogLevel:      env.LogLevel,
		FrameInterval: env.FrameInterval,
		Watch:         env.Watch,
	}
	var logPath string
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "Path to binding file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", opts.ConfigPath, "Path to binding file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&logPath, "log", "", "Write logs to this file")
	flag.DurationVar(&opts.FrameInterval, "frame", opts.FrameInterval, "Frame interval")
	flag.BoolVar(&opts.Watch, "watch", opts.Watch, "Reload the binding file when it changes")
	flag.BoolVar(&opts.Watch, "w", opts.Watch, "Reload the binding file when it changes (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "actionmap - mouse action binding monitor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: actionmap [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  ACTIONMAP_CONFIG, ACTIONMAP_LOG_LEVEL, ACTIONMAP_FRAME_INTERVAL, ACTIONMAP_WATCH\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  actionmap                         Use the built-in bindings\n")
		fmt.Fprintf(os.Stderr, "  actionmap -c bindings.toml -w     Load a file and reload on change\n")
		fmt.Fprintf(os.Stderr, "  actionmap -log-level debug -log actionmap.log\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("actionmap %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	return opts, logPath
}
