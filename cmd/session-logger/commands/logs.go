package commands

import (
	"flag"

	"github.com/zeveck/claude-session-logger/internal/logindex"
)

// LogsCmd implements the logs command: list rendered session logs.
type LogsCmd struct {
	Dir string
}

func (c *LogsCmd) Name() string {
	return "logs"
}

func (c *LogsCmd) Description() string {
	return "List rendered session logs, newest first"
}

func (c *LogsCmd) Setup(fs *flag.FlagSet) {
	fs.StringVar(&c.Dir, "dir", "", "Log directory (default: from config)")
}

func (c *LogsCmd) Run(ctx *Context, args []string) error {
	dir := c.Dir
	if dir == "" {
		dir = ctx.Config.LogDir
	}

	entries := logindex.List(dir)
	out := NewOutputWriter(ctx.Output, ctx.Global.JSONOutput)

	if ctx.Global.JSONOutput {
		return out.WriteJSON(entries)
	}

	if len(entries) == 0 {
		out.PrintLine("No session logs found in %s", dir)
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		kind := "session"
		if e.IsSubagent() {
			kind = "subagent:" + e.AgentType
		}
		rows = append(rows, []string{e.Date, e.Time, e.Session, kind, Truncate(e.Label, 40)})
	}
	out.WriteTable([]string{"date", "time", "session", "kind", "label"}, rows)
	out.PrintLine("\n%d log(s) in %s", len(entries), dir)
	return nil
}
