package hook

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	in, err := Decode(strings.NewReader(`{"session_id":"abc","transcript_path":"/tmp/t.jsonl"}`))
	require.NoError(t, err)

	assert.Equal(t, "abc", in.SessionID)
	assert.Equal(t, "/tmp/t.jsonl", in.TranscriptPath)
}

func TestDecode_SubagentFields(t *testing.T) {
	in, err := Decode(strings.NewReader(`{"session_id":"abc","agent_transcript_path":"/tmp/a.jsonl","agent_id":"agent123","agent_type":"Explore"}`))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/a.jsonl", in.AgentTranscriptPath)
	assert.Equal(t, "agent123", in.AgentID)
	assert.Equal(t, "Explore", in.AgentType)
}

func TestDecode_MissingSessionID(t *testing.T) {
	in, err := Decode(strings.NewReader(`{}`))
	require.NoError(t, err)

	assert.Equal(t, "unknown", in.SessionID)
}

func TestSubagentDefaults(t *testing.T) {
	in := Input{SessionID: "abc", AgentTranscriptPath: "/tmp/a.jsonl"}
	in.SubagentDefaults()

	assert.Equal(t, "subagent", in.AgentType)
	assert.Equal(t, "unknown", in.AgentID)
}

func TestSubagentDefaults_KeepsProvidedIdentity(t *testing.T) {
	in := Input{AgentType: "Explore", AgentID: "agent123"}
	in.SubagentDefaults()

	assert.Equal(t, "Explore", in.AgentType)
	assert.Equal(t, "agent123", in.AgentID)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode(strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestDeriveStartMeta_Localizes(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	meta := DeriveStartMeta("2026-02-17T01:30:00Z", "America/New_York", now)

	assert.Equal(t, "2026-02-16", meta.Date)
	assert.Equal(t, "2030", meta.TimePart)
	assert.Equal(t, "2026-02-16T20:30:00-05:00", meta.StartTime)
}

func TestDeriveStartMeta_UTC(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	meta := DeriveStartMeta("2026-02-16T18:56:03Z", "UTC", now)

	assert.Equal(t, "2026-02-16", meta.Date)
	assert.Equal(t, "1856", meta.TimePart)
}

func TestDeriveStartMeta_ZonelessTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	meta := DeriveStartMeta("2026-02-16T18:56:03", "America/New_York", now)

	assert.Equal(t, "2026-02-16", meta.Date)
	assert.Equal(t, "1856", meta.TimePart)
	assert.Equal(t, "2026-02-16T18:56:03-05:00", meta.StartTime)
}

func TestDeriveStartMeta_EmptyTimestampFallsBack(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	meta := DeriveStartMeta("", "UTC", now)

	assert.Equal(t, "2026-03-01", meta.Date)
	assert.Equal(t, "0000", meta.TimePart)
	assert.Equal(t, "", meta.StartTime)
}

func TestDeriveStartMeta_UnparsableTimestampFallsBack(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	meta := DeriveStartMeta("yesterday-ish", "UTC", now)

	assert.Equal(t, "2026-03-01", meta.Date)
	assert.Equal(t, "0000", meta.TimePart)
	assert.Equal(t, "yesterday-ish", meta.StartTime)
}

func TestDeriveStartMeta_UnknownTimezoneStillLocalizes(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	meta := DeriveStartMeta("2026-02-16T18:56:03Z", "Not/AZone", now)

	// An unknown zone falls back to local time; the instant survives.
	parsed, err := time.Parse(time.RFC3339, meta.StartTime)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2026, 2, 16, 18, 56, 3, 0, time.UTC)))
	assert.Len(t, meta.TimePart, 4)
}

func TestLogFileName_Session(t *testing.T) {
	meta := StartMeta{Date: "2026-02-16", TimePart: "1856"}

	name := LogFileName("/logs", meta, "abcdef1234567890", "", "")

	assert.Equal(t, filepath.Join("/logs", "2026-02-16-1856-abcdef12.md"), name)
}

func TestLogFileName_Subagent(t *testing.T) {
	meta := StartMeta{Date: "2026-02-16", TimePart: "1900"}

	name := LogFileName("/logs", meta, "abcdef1234567890", "Explore", "11112222333344")

	assert.Equal(t, filepath.Join("/logs", "2026-02-16-1900-abcdef12-subagent-Explore-11112222.md"), name)
}
