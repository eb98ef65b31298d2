// Package converter orchestrates one transcript-to-markdown conversion.
package converter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeveck/claude-session-logger/internal/markdown"
	"github.com/zeveck/claude-session-logger/internal/transcript"
)

// Options describes one conversion invocation.
type Options struct {
	TranscriptPath string
	OutputPath     string
	SessionID      string
	Date           string
	StartTime      string
	AgentType      string
	AgentID        string
}

// Convert reads a JSONL transcript and writes the rendered markdown
// document to the output path, creating parent directories as needed.
//
// A transcript with zero parseable records writes an empty output file
// only if none exists yet; an existing file is left untouched so that a
// duplicate or retried invocation cannot clobber a prior render.
func Convert(opts Options) error {
	records, err := transcript.Read(opts.TranscriptPath)
	if err != nil {
		return fmt.Errorf("reading transcript: %w", err)
	}

	if len(records) == 0 {
		if _, err := os.Stat(opts.OutputPath); err == nil {
			return nil
		}
		return writeOutput(opts.OutputPath, "")
	}

	items := transcript.Group(records)
	header := markdown.RenderHeader(markdown.HeaderInfo{
		SessionID: opts.SessionID,
		Date:      opts.Date,
		StartTime: opts.StartTime,
		AgentType: opts.AgentType,
		AgentID:   opts.AgentID,
	})
	body := markdown.RenderBody(items)

	return writeOutput(opts.OutputPath, header+body)
}

func writeOutput(path, content string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
