// Package main provides the entry point for the session-logger MCP server.
// This server exposes transcript conversion and log listing over the Model
// Context Protocol so Claude Code agents can render and browse session logs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/zeveck/claude-session-logger/internal/config"
	debugpkg "github.com/zeveck/claude-session-logger/internal/debug"
	"github.com/zeveck/claude-session-logger/internal/mcp"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", config.DefaultPath, "Path to config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *showVersion {
		fmt.Printf("session-logger-mcp %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	if *debug {
		debugpkg.Enabled = true
		log.SetOutput(os.Stderr)
		log.Println("Debug mode enabled")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Warning: ignoring malformed config %s: %v", *configPath, err)
	}

	server := mcp.NewServer()
	mcp.RegisterAllTools(server, cfg)

	if err := server.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
