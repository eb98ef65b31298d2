// Package logindex catalogs rendered session logs by their file names.
// It treats log files as opaque text apart from the optional label on
// the first header line.
package logindex

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// logName matches YYYY-MM-DD-HHMM-{session}[-subagent-{type}-{agent}].
var logName = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2})-(\d{4})-(\w+?)(?:-subagent-(.+)-(\w+))?$`)

// headerLabel extracts an optional trailing label from the first line:
//
//	# Session `abc12345` — 2026-02-17 18:56 — My Label
//	# Subagent: Explore `dddd1111` — 2026-02-17 19:00 — My Label
var headerLabel = regexp.MustCompile(
	`^#\s+(?:Session|Subagent:\s+\S+)\s+.+?\x{2014}\s+\d{4}-\d{2}-\d{2}(?:\s+\d{2}:\d{2})?\s*\x{2014}\s+(.+)$`)

// Entry is one catalogued session log.
type Entry struct {
	Name      string `json:"name"` // file name without .md
	Date      string `json:"date"`
	Time      string `json:"time"` // HH:MM
	Session   string `json:"session"`
	AgentType string `json:"agent_type,omitempty"`
	AgentID   string `json:"agent_id,omitempty"`
	Label     string `json:"label,omitempty"`
}

// IsSubagent reports whether the entry is a subagent log.
func (e Entry) IsSubagent() bool {
	return e.AgentType != ""
}

// ParseName extracts metadata from a log file name (with or without the
// .md extension). Returns false for names outside the strict pattern.
func ParseName(filename string) (Entry, bool) {
	name := strings.TrimSuffix(filename, ".md")
	m := logName.FindStringSubmatch(name)
	if m == nil {
		return Entry{}, false
	}
	return Entry{
		Name:      name,
		Date:      m[1],
		Time:      m[2][:2] + ":" + m[2][2:],
		Session:   m[3],
		AgentType: m[4],
		AgentID:   m[5],
	}, true
}

// ReadLabel returns the label from a log file's first header line, or
// "" if the file has none.
func ReadLabel(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return ""
	}
	m := headerLabel.FindStringSubmatch(strings.TrimRight(scanner.Text(), " \t\r"))
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// List catalogs all well-formed .md logs in dir, newest first. A
// missing directory yields an empty list.
func List(dir string) []Entry {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") || strings.HasPrefix(f.Name(), ".") {
			continue
		}
		entry, ok := ParseName(f.Name())
		if !ok {
			continue
		}
		entry.Label = ReadLabel(filepath.Join(dir, f.Name()))
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name > entries[j].Name
	})
	return entries
}
