// Package main is the entry point for the flight controller console.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/fcconsole/internal/app"
	"github.com/dshills/fcconsole/internal/transport"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	clock   = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, code, done := parseFlags(os.Args[1:])
	if done {
		return code
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// parseFlags returns the options, or done with an exit code when the
// process should stop without running.
func parseFlags(args []string) (opts app.Options, code int, done bool) {
	fs := flag.NewFlagSet("fcconsole", flag.ContinueOnError)

	var showVersion, showHelp, listPorts bool

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (default fcconsole.toml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.Port, "port", "", "Serial port to serve the console on")
	fs.StringVar(&opts.Port, "p", "", "Serial port (shorthand)")
	fs.IntVar(&opts.Baud, "baud", 0, "Serial baud rate")
	fs.IntVar(&opts.Baud, "b", 0, "Serial baud rate (shorthand)")
	fs.BoolVar(&opts.Terminal, "terminal", false, "Serve the console on this terminal")
	fs.BoolVar(&opts.Terminal, "t", false, "Serve the console on this terminal (shorthand)")
	fs.StringVar(&opts.StorePath, "store", "", "Path to the flight configuration store")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&listPorts, "list-ports", false, "List serial ports and exit")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "fcconsole - flight controller configuration console\n\n")
		fmt.Fprintf(os.Stderr, "Usage: fcconsole [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fcconsole -t                       Console on this terminal\n")
		fmt.Fprintf(os.Stderr, "  fcconsole -p /dev/ttyUSB0 -b 115200  Console on a serial port\n")
		fmt.Fprintf(os.Stderr, "  fcconsole -c bench.toml            Use another config file\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, 0, true
		}
		return opts, 2, true
	}

	if showHelp {
		fs.Usage()
		return opts, 0, true
	}

	if showVersion {
		fmt.Printf("fcconsole %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s %s\n", date, clock)
		return opts, 0, true
	}

	if listPorts {
		ports, err := transport.ListPorts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return opts, 1, true
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return opts, 0, true
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %v\n", fs.Args())
		return opts, 2, true
	}

	opts.BuildDate = date
	opts.BuildTime = clock
	return opts, 0, false
}
