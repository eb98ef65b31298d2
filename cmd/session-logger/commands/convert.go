package commands

import (
	"flag"
	"fmt"

	"github.com/zeveck/claude-session-logger/internal/converter"
)

// ConvertCmd implements the convert command: one transcript in, one
// markdown document out.
type ConvertCmd struct {
	Transcript string
	Output     string
	SessionID  string
	Date       string
	StartTime  string
	AgentType  string
	AgentID    string
}

func (c *ConvertCmd) Name() string {
	return "convert"
}

func (c *ConvertCmd) Description() string {
	return "Convert a JSONL transcript to a markdown session log"
}

func (c *ConvertCmd) Setup(fs *flag.FlagSet) {
	fs.StringVar(&c.Transcript, "transcript", "", "Path to the JSONL transcript file")
	fs.StringVar(&c.Output, "output", "", "Path to the output markdown file")
	fs.StringVar(&c.SessionID, "session-id", "", "Session ID for the log header")
	fs.StringVar(&c.Date, "date", "", "Date string for the log header (e.g. 2026-02-16)")
	fs.StringVar(&c.StartTime, "start-time", "", "Start timestamp (ISO 8601) for the log header")
	fs.StringVar(&c.AgentType, "agent-type", "", "Subagent type (e.g. Explore, Plan) for subagent logs")
	fs.StringVar(&c.AgentID, "agent-id", "", "Subagent ID for subagent logs")
}

func (c *ConvertCmd) Run(ctx *Context, args []string) error {
	if c.Transcript == "" || c.Output == "" {
		return fmt.Errorf("--transcript and --output are required\nUsage: session-logger convert --transcript <file.jsonl> --output <file.md> [flags]")
	}

	return converter.Convert(converter.Options{
		TranscriptPath: c.Transcript,
		OutputPath:     c.Output,
		SessionID:      c.SessionID,
		Date:           c.Date,
		StartTime:      c.StartTime,
		AgentType:      c.AgentType,
		AgentID:        c.AgentID,
	})
}
