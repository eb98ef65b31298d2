// Package hook handles Stop and SubagentStop hook invocations: decoding
// the hook payload, waiting for the transcript to finish flushing, and
// deriving the output log name.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"time"
)

// Input is the JSON payload delivered on stdin by a hook event. Stop
// events populate TranscriptPath; SubagentStop events populate the
// agent fields instead.
type Input struct {
	SessionID           string `json:"session_id"`
	TranscriptPath      string `json:"transcript_path"`
	AgentTranscriptPath string `json:"agent_transcript_path"`
	AgentID             string `json:"agent_id"`
	AgentType           string `json:"agent_type"`
}

// Decode reads one hook payload from r.
func Decode(r io.Reader) (Input, error) {
	var in Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return Input{}, fmt.Errorf("decoding hook input: %w", err)
	}
	if in.SessionID == "" {
		in.SessionID = "unknown"
	}
	return in, nil
}

// SubagentDefaults fills the agent identity fields for SubagentStop
// payloads that omit them, so the log still names itself as a subagent.
func (in *Input) SubagentDefaults() {
	if in.AgentType == "" {
		in.AgentType = "subagent"
	}
	if in.AgentID == "" {
		in.AgentID = "unknown"
	}
}

var isoTimestamp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)

// StartMeta is the header metadata derived from a transcript's first
// timestamp, localized to the configured zone.
type StartMeta struct {
	Date      string // 2006-01-02
	TimePart  string // 1504, used in the log filename
	StartTime string // ISO-8601 local timestamp for the header
}

// DeriveStartMeta localizes an RFC3339-ish transcript timestamp. An
// empty or unparsable timestamp falls back to the current time with a
// zeroed time part, matching a transcript whose start is unknown.
func DeriveStartMeta(rawTimestamp, timezone string, now time.Time) StartMeta {
	fallback := StartMeta{
		Date:      now.Format("2006-01-02"),
		TimePart:  "0000",
		StartTime: rawTimestamp,
	}

	if !isoTimestamp.MatchString(rawTimestamp) {
		return fallback
	}

	loc := time.Local
	if timezone != "" {
		if l, err := time.LoadLocation(timezone); err == nil {
			loc = l
		}
	}

	t, err := time.Parse(time.RFC3339, rawTimestamp)
	if err != nil {
		// Transcripts occasionally carry zone-less timestamps; read
		// those in the configured zone.
		t, err = time.ParseInLocation("2006-01-02T15:04:05", rawTimestamp, loc)
		if err != nil {
			return fallback
		}
	}

	local := t.In(loc)
	return StartMeta{
		Date:      local.Format("2006-01-02"),
		TimePart:  local.Format("1504"),
		StartTime: local.Format(time.RFC3339),
	}
}

// LogFileName builds the output file name for a session log. Subagent
// logs carry the agent type and short agent ID.
func LogFileName(logDir string, meta StartMeta, sessionID, agentType, agentID string) string {
	name := fmt.Sprintf("%s-%s-%s", meta.Date, meta.TimePart, shortID(sessionID))
	if agentType != "" {
		name += fmt.Sprintf("-subagent-%s-%s", agentType, shortID(agentID))
	}
	return filepath.Join(logDir, name+".md")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
