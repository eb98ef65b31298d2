package transcript

import (
	"bufio"
	"encoding/json"
	"math"
	"os"
)

// FirstTimestamp returns the timestamp of the first record that carries
// one, scanning lazily so large transcripts are not fully parsed.
// Returns "" when no record has a timestamp or the file is unreadable.
func FirstTimestamp(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, defaultScannerBufferSize)
	scanner.Buffer(buf, math.MaxInt)

	for scanner.Scan() {
		var probe struct {
			Timestamp string `json:"timestamp"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &probe); err != nil {
			continue
		}
		if probe.Timestamp != "" {
			return probe.Timestamp
		}
	}
	return ""
}
