package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

var startClock = regexp.MustCompile(`T(\d{2}:\d{2})`)

// HeaderInfo carries the metadata rendered at the top of a document.
// AgentType marks the document as a subagent log.
type HeaderInfo struct {
	SessionID string
	Date      string
	StartTime string
	AgentType string
	AgentID   string
}

// RenderHeader formats the document title block: session or subagent
// line, optional parent-session note, and a horizontal rule.
func RenderHeader(info HeaderInfo) string {
	shortSession := "unknown"
	if info.SessionID != "" {
		shortSession = shorten(info.SessionID)
	}

	dateDisplay := info.Date
	if dateDisplay == "" {
		dateDisplay = "unknown date"
	}
	if m := startClock.FindStringSubmatch(info.StartTime); m != nil {
		dateDisplay += " " + m[1]
	}

	var title, meta string
	if info.AgentType != "" {
		title = "# Subagent: " + info.AgentType
		if info.AgentID != "" {
			title += fmt.Sprintf(" `%s`", shorten(info.AgentID))
		}
		title += " — " + dateDisplay
		meta = fmt.Sprintf("*Parent session: `%s`*", shortSession)
	} else {
		title = fmt.Sprintf("# Session `%s` — %s", shortSession, dateDisplay)
	}

	parts := []string{title, ""}
	if meta != "" {
		parts = append(parts, meta, "")
	}
	parts = append(parts, "---", "")
	return strings.Join(parts, "\n")
}

func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
