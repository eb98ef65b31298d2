package mcp

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zeveck/claude-session-logger/internal/config"
	"github.com/zeveck/claude-session-logger/internal/converter"
	"github.com/zeveck/claude-session-logger/internal/logindex"
)

// RegisterAllTools registers every tool with the server.
func RegisterAllTools(server *Server, cfg config.Config) {
	server.RegisterTool(&ConvertTranscriptTool{})
	server.RegisterTool(&ListSessionLogsTool{cfg: cfg})
}

// ConvertTranscriptTool renders a JSONL transcript to markdown.
type ConvertTranscriptTool struct{}

func (t *ConvertTranscriptTool) Name() string { return "convert_transcript" }

func (t *ConvertTranscriptTool) Description() string {
	return "Convert a Claude Code JSONL transcript into a readable markdown session log"
}

func (t *ConvertTranscriptTool) InputSchema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"transcript_path": {"type": "string", "description": "Path to the JSONL transcript file"},
			"output_path": {"type": "string", "description": "Path for the markdown output file"},
			"session_id": {"type": "string", "description": "Session ID for the log header"},
			"date": {"type": "string", "description": "Date string for the log header (e.g. 2026-02-16)"},
			"start_time": {"type": "string", "description": "ISO 8601 start timestamp for the log header"},
			"agent_type": {"type": "string", "description": "Subagent type for subagent logs"},
			"agent_id": {"type": "string", "description": "Subagent ID for subagent logs"}
		},
		"required": ["transcript_path", "output_path"]
	}`)
}

// ConversionResult reports a completed conversion.
type ConversionResult struct {
	OutputPath string `json:"output_path"`
	SessionID  string `json:"session_id,omitempty"`
}

func (t *ConvertTranscriptTool) Execute(args map[string]interface{}) (interface{}, error) {
	transcriptPath, _ := args["transcript_path"].(string)
	outputPath, _ := args["output_path"].(string)
	if transcriptPath == "" || outputPath == "" {
		return nil, fmt.Errorf("transcript_path and output_path are required")
	}
	if _, err := os.Stat(transcriptPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("transcript not found: %s", transcriptPath)
	}

	opts := converter.Options{
		TranscriptPath: transcriptPath,
		OutputPath:     outputPath,
	}
	opts.SessionID, _ = args["session_id"].(string)
	opts.Date, _ = args["date"].(string)
	opts.StartTime, _ = args["start_time"].(string)
	opts.AgentType, _ = args["agent_type"].(string)
	opts.AgentID, _ = args["agent_id"].(string)

	if err := converter.Convert(opts); err != nil {
		return nil, err
	}

	return &ConversionResult{OutputPath: outputPath, SessionID: opts.SessionID}, nil
}

// ListSessionLogsTool lists rendered session logs.
type ListSessionLogsTool struct {
	cfg config.Config
}

func (t *ListSessionLogsTool) Name() string { return "list_session_logs" }

func (t *ListSessionLogsTool) Description() string {
	return "List rendered session logs in the log directory, newest first"
}

func (t *ListSessionLogsTool) InputSchema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"log_dir": {"type": "string", "description": "Log directory (default: from config)"}
		}
	}`)
}

// LogListing is the list_session_logs result.
type LogListing struct {
	LogDir  string           `json:"log_dir"`
	Count   int              `json:"count"`
	Entries []logindex.Entry `json:"entries"`
}

func (t *ListSessionLogsTool) Execute(args map[string]interface{}) (interface{}, error) {
	logDir, _ := args["log_dir"].(string)
	if logDir == "" {
		logDir = t.cfg.LogDir
	}

	entries := logindex.List(logDir)
	return &LogListing{LogDir: logDir, Count: len(entries), Entries: entries}, nil
}

// Interface checks.
var (
	_ Tool = (*ConvertTranscriptTool)(nil)
	_ Tool = (*ListSessionLogsTool)(nil)
)
