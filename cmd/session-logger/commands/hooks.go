package commands

import (
	"flag"
	"log"

	"github.com/zeveck/claude-session-logger/internal/debug"
	"github.com/zeveck/claude-session-logger/internal/hook"
)

// StopHookCmd implements the stop-hook command, invoked by Claude Code
// on the Stop event with the hook payload on stdin.
type StopHookCmd struct{}

func (c *StopHookCmd) Name() string {
	return "stop-hook"
}

func (c *StopHookCmd) Description() string {
	return "Convert the finished session's transcript (Stop hook, reads stdin)"
}

func (c *StopHookCmd) Setup(fs *flag.FlagSet) {}

// Run never returns an error: a logging hook must not fail the session
// that triggered it. Failures land in the error log inside the log dir.
func (c *StopHookCmd) Run(ctx *Context, args []string) error {
	runHook(ctx, false)
	return nil
}

// SubagentStopHookCmd implements the subagent-stop-hook command for the
// SubagentStop event.
type SubagentStopHookCmd struct{}

func (c *SubagentStopHookCmd) Name() string {
	return "subagent-stop-hook"
}

func (c *SubagentStopHookCmd) Description() string {
	return "Convert a finished subagent's transcript (SubagentStop hook, reads stdin)"
}

func (c *SubagentStopHookCmd) Setup(fs *flag.FlagSet) {}

func (c *SubagentStopHookCmd) Run(ctx *Context, args []string) error {
	runHook(ctx, true)
	return nil
}

func runHook(ctx *Context, subagent bool) {
	in, err := hook.Decode(ctx.Input)
	if err != nil {
		if debug.Enabled {
			log.Printf("ignoring hook input: %v", err)
		}
		return
	}
	if subagent {
		in.SubagentDefaults()
	}
	if err := hook.Run(in, ctx.Config); err != nil && debug.Enabled {
		log.Printf("hook conversion failed: %v", err)
	}
}
