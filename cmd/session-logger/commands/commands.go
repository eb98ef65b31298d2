// Package commands provides the CLI command infrastructure for
// session-logger.
package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zeveck/claude-session-logger/internal/config"
)

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name (e.g., "convert", "serve").
	Name() string
	// Description returns a short description for help text.
	Description() string
	// Setup configures command-specific flags.
	Setup(fs *flag.FlagSet)
	// Run executes the command with the given context and arguments.
	Run(ctx *Context, args []string) error
}

// GlobalConfig holds global CLI configuration.
type GlobalConfig struct {
	// ConfigPath is the YAML config file location.
	ConfigPath string
	// JSONOutput indicates whether to output in JSON format.
	JSONOutput bool
	// Debug enables debug logging.
	Debug bool
}

// Context provides the execution context for commands.
type Context struct {
	// Global contains global CLI configuration.
	Global *GlobalConfig
	// Config is the loaded YAML configuration.
	Config config.Config
	// Input is the reader for stdin-driven commands (hooks).
	Input io.Reader
	// Output is the writer for command output.
	Output io.Writer
	// ErrOutput is the writer for error output.
	ErrOutput io.Writer
}

// NewContext creates a Context, loading the YAML config file.
func NewContext(global *GlobalConfig) *Context {
	cfg, err := config.Load(global.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed config %s: %v\n", global.ConfigPath, err)
	}
	return &Context{
		Global:    global,
		Config:    cfg,
		Input:     os.Stdin,
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
	}
}

// Registry holds all registered commands.
type Registry struct {
	commands map[string]Command
	order    []string
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd Command) {
	name := cmd.Name()
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = cmd
}

// Get returns a command by name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Commands returns all registered commands in registration order.
func (r *Registry) Commands() []Command {
	result := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.commands[name])
	}
	return result
}

// PrintHelp prints the help text for all commands.
func (r *Registry) PrintHelp(w io.Writer) {
	fmt.Fprintln(w, "session-logger - Claude Code session log converter")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "    session-logger <command> [flags] [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "COMMANDS:")
	for _, cmd := range r.Commands() {
		fmt.Fprintf(w, "    %-20s %s\n", cmd.Name(), cmd.Description())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "GLOBAL FLAGS:")
	fmt.Fprintln(w, "    --config       Path to config file (default: .claude/session-logger.yaml)")
	fmt.Fprintln(w, "    --json         Output results in JSON format (default: human-readable)")
	fmt.Fprintln(w, "    --debug        Enable debug logging")
	fmt.Fprintln(w, "    --help, -h     Show help for command")
	fmt.Fprintln(w, "    --version, -v  Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "EXAMPLES:")
	fmt.Fprintln(w, "    # Convert a transcript to markdown")
	fmt.Fprintln(w, "    session-logger convert --transcript session.jsonl --output session.md")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    # Install the Stop/SubagentStop hooks into .claude/settings.json")
	fmt.Fprintln(w, "    session-logger install --tz America/New_York")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    # List rendered session logs")
	fmt.Fprintln(w, "    session-logger logs --json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    # Serve the logs over HTTPS")
	fmt.Fprintln(w, "    session-logger serve --port 9443")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use \"session-logger <command> --help\" for detailed help on any command.")
}

// DefaultRegistry is the global command registry with all commands
// pre-registered.
var DefaultRegistry = NewRegistry()

// RegisterAll registers all CLI commands with the given registry.
func RegisterAll(r *Registry) {
	r.Register(&ConvertCmd{})
	r.Register(&StopHookCmd{})
	r.Register(&SubagentStopHookCmd{})
	r.Register(&LogsCmd{})
	r.Register(&ServeCmd{})
	r.Register(&InstallCmd{})
}

func init() {
	RegisterAll(DefaultRegistry)
}
