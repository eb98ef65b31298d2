package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zeveck/claude-session-logger/internal/config"
	"github.com/zeveck/claude-session-logger/internal/converter"
	"github.com/zeveck/claude-session-logger/internal/transcript"
)

// errorLogName collects conversion failures; its presence is the signal
// that something went wrong, so an empty one is removed.
const errorLogName = ".converter-errors.log"

// Run converts the transcript referenced by a hook payload into a log
// file under cfg.LogDir. Subagent events pass the agent transcript and
// identity; top-level Stop events leave those empty.
//
// A missing transcript path is a no-op: hooks must never fail the
// session that triggered them.
func Run(in Input, cfg config.Config) error {
	transcriptPath := in.TranscriptPath
	if in.AgentTranscriptPath != "" {
		transcriptPath = in.AgentTranscriptPath
	}
	if transcriptPath == "" {
		return nil
	}
	if info, err := os.Stat(transcriptPath); err != nil || info.IsDir() {
		return nil
	}

	WaitForQuiesce(transcriptPath)

	meta := DeriveStartMeta(transcript.FirstTimestamp(transcriptPath), cfg.Timezone, time.Now())
	outputPath := LogFileName(cfg.LogDir, meta, in.SessionID, in.AgentType, in.AgentID)

	err := converter.Convert(converter.Options{
		TranscriptPath: transcriptPath,
		OutputPath:     outputPath,
		SessionID:      in.SessionID,
		Date:           meta.Date,
		StartTime:      meta.StartTime,
		AgentType:      in.AgentType,
		AgentID:        in.AgentID,
	})
	if err != nil {
		recordError(cfg.LogDir, err)
		return err
	}

	cleanErrorLog(cfg.LogDir)
	return nil
}

func recordError(logDir string, convErr error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(logDir, errorLogName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s %v\n", time.Now().Format(time.RFC3339), convErr)
}

func cleanErrorLog(logDir string) {
	path := filepath.Join(logDir, errorLogName)
	if info, err := os.Stat(path); err == nil && info.Size() == 0 {
		os.Remove(path)
	}
}
