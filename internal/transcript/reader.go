package transcript

import (
	"bufio"
	"encoding/json"
	"log"
	"math"
	"os"
	"strings"

	"github.com/zeveck/claude-session-logger/internal/debug"
)

const defaultScannerBufferSize = 1024 * 1024

// Read parses a JSONL transcript file into an ordered slice of records.
// Blank lines and lines that fail to parse are skipped. An unreadable
// file is the only error condition.
func Read(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, defaultScannerBufferSize)
	scanner.Buffer(buf, math.MaxInt)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var record Record
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			if debug.Enabled {
				log.Printf("skipping unparsable line %d: %v", lineNum, err)
			}
			continue
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
