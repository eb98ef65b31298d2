package commands

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/zeveck/claude-session-logger/internal/installer"
)

// InstallCmd implements the install command: wire the Stop and
// SubagentStop hooks into the project's .claude/settings.json.
type InstallCmd struct {
	Timezone string
	Binary   string
	Yes      bool
}

func (c *InstallCmd) Name() string {
	return "install"
}

func (c *InstallCmd) Description() string {
	return "Install the session logging hooks into .claude/settings.json"
}

func (c *InstallCmd) Setup(fs *flag.FlagSet) {
	fs.StringVar(&c.Timezone, "tz", "", "IANA timezone for log timestamps (e.g. America/New_York)")
	fs.StringVar(&c.Binary, "binary", "session-logger", "Command used in the hook entries")
	fs.BoolVar(&c.Yes, "yes", false, "Overwrite an existing installation without prompting")
}

func (c *InstallCmd) Run(ctx *Context, args []string) error {
	out := NewOutputWriter(ctx.Output, false)

	if _, err := os.Stat(".git"); err != nil {
		return fmt.Errorf("not in a git project root; run this from your project directory")
	}

	if installer.Installed(".") && !c.Yes {
		if !confirm(ctx, "Hooks already installed. Overwrite?") {
			out.PrintLine("  Aborted.")
			return nil
		}
	}

	err := installer.Install(installer.Options{
		ProjectDir: ".",
		Binary:     c.Binary,
		Timezone:   c.Timezone,
	})
	if err != nil {
		return err
	}

	out.PrintLine("  Updated %s", installer.SettingsPath)
	out.PrintLine("")
	out.PrintLine("Done! Session logs will appear in %s after each turn.", ctx.Config.LogDir)
	out.PrintLine("Restart Claude Code to pick up the new hooks.")
	return nil
}

func confirm(ctx *Context, question string) bool {
	fmt.Fprintf(ctx.Output, "  %s [y/N] ", question)
	scanner := bufio.NewScanner(ctx.Input)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return strings.HasPrefix(answer, "y")
}
