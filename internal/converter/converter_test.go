package converter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTranscript = `{"type":"user","message":{"role":"user","content":"Hello"},"timestamp":"2026-02-16T18:56:03Z"}
{"type":"assistant","message":{"id":"m1","role":"assistant","content":[{"type":"text","text":"Hi there"}]},"timestamp":"2026-02-16T18:56:05Z"}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConvert_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	transcriptPath := writeFile(t, dir, "session.jsonl", sampleTranscript)
	outputPath := filepath.Join(dir, "session.md")

	err := Convert(Options{
		TranscriptPath: transcriptPath,
		OutputPath:     outputPath,
		SessionID:      "abcdef1234567890",
		Date:           "2026-02-16",
		StartTime:      "2026-02-16T18:56:03Z",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# Session `abcdef12` — 2026-02-16 18:56")
	assert.Contains(t, content, "> Hello")
	assert.Contains(t, content, "Hi there")
}

func TestConvert_Deterministic(t *testing.T) {
	dir := t.TempDir()
	transcriptPath := writeFile(t, dir, "session.jsonl", sampleTranscript)

	opts := Options{
		TranscriptPath: transcriptPath,
		SessionID:      "abcdef1234567890",
		Date:           "2026-02-16",
	}

	opts.OutputPath = filepath.Join(dir, "first.md")
	require.NoError(t, Convert(opts))
	opts.OutputPath = filepath.Join(dir, "second.md")
	require.NoError(t, Convert(opts))

	first, err := os.ReadFile(filepath.Join(dir, "first.md"))
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "second.md"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConvert_CreatesOutputDirectories(t *testing.T) {
	dir := t.TempDir()
	transcriptPath := writeFile(t, dir, "session.jsonl", sampleTranscript)
	outputPath := filepath.Join(dir, "nested", "deeper", "session.md")

	require.NoError(t, Convert(Options{TranscriptPath: transcriptPath, OutputPath: outputPath}))

	_, err := os.Stat(outputPath)
	assert.NoError(t, err)
}

func TestConvert_MissingTranscript(t *testing.T) {
	dir := t.TempDir()

	err := Convert(Options{
		TranscriptPath: filepath.Join(dir, "nope.jsonl"),
		OutputPath:     filepath.Join(dir, "out.md"),
	})
	assert.Error(t, err)
}

func TestConvert_EmptyTranscriptCreatesEmptyOutput(t *testing.T) {
	dir := t.TempDir()
	transcriptPath := writeFile(t, dir, "empty.jsonl", "")
	outputPath := filepath.Join(dir, "out.md")

	require.NoError(t, Convert(Options{TranscriptPath: transcriptPath, OutputPath: outputPath}))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestConvert_EmptyTranscriptLeavesExistingOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	transcriptPath := writeFile(t, dir, "empty.jsonl", "not json\nalso not json\n")
	outputPath := writeFile(t, dir, "out.md", "earlier render")

	require.NoError(t, Convert(Options{TranscriptPath: transcriptPath, OutputPath: outputPath}))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "earlier render", string(data))
}
