package main

import (
	"flag"
	"fmt"
	"os"
	rdebug "runtime/debug"

	"github.com/zeveck/claude-session-logger/cmd/session-logger/commands"
	"github.com/zeveck/claude-session-logger/internal/config"
	debugpkg "github.com/zeveck/claude-session-logger/internal/debug"
)

var (
	// Version can be set by ldflags during build
	Version = ""
	// BuildTime can be set by ldflags during build
	BuildTime = ""
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h", "help":
			commands.DefaultRegistry.PrintHelp(os.Stdout)
			os.Exit(0)
		case "--version", "-v", "version":
			printVersion()
			os.Exit(0)
		}
	}

	if len(os.Args) < 2 {
		commands.DefaultRegistry.PrintHelp(os.Stdout)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cmdName := os.Args[1]

	cmd, ok := commands.DefaultRegistry.Get(cmdName)
	if !ok {
		return fmt.Errorf("unknown command: %s\nRun 'session-logger --help' for usage", cmdName)
	}

	fs := flag.NewFlagSet(cmdName, flag.ContinueOnError)

	// Global flags
	var global commands.GlobalConfig
	fs.StringVar(&global.ConfigPath, "config", config.DefaultPath, "Path to config file")
	fs.BoolVar(&global.JSONOutput, "json", false, "Output in JSON format")
	fs.BoolVar(&global.Debug, "debug", false, "Enable debug logging")

	// Command-specific flags
	cmd.Setup(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "session-logger %s - %s\n\n", cmd.Name(), cmd.Description())
		fmt.Fprintf(os.Stderr, "Usage: session-logger %s [flags] [arguments]\n\n", cmd.Name())
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if global.Debug {
		debugpkg.Enabled = true
	}

	ctx := commands.NewContext(&global)

	return cmd.Run(ctx, fs.Args())
}

// printVersion prints version information.
func printVersion() {
	version := Version
	if version == "" {
		if info, ok := rdebug.ReadBuildInfo(); ok {
			version = info.Main.Version
		} else {
			version = "unknown"
		}
	}

	fmt.Printf("session-logger version %s", version)
	if BuildTime != "" {
		fmt.Printf(" (built %s)", BuildTime)
	}
	fmt.Println()
}
