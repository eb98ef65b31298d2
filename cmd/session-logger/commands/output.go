package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// OutputWriter handles formatted output for commands.
type OutputWriter struct {
	w      io.Writer
	isJSON bool
}

// NewOutputWriter creates a new OutputWriter.
func NewOutputWriter(w io.Writer, isJSON bool) *OutputWriter {
	return &OutputWriter{w: w, isJSON: isJSON}
}

// WriteJSON writes data as indented JSON.
func (o *OutputWriter) WriteJSON(data interface{}) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteTable writes rows as a column-aligned table.
func (o *OutputWriter) WriteTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, h := range headers {
		fmt.Fprintf(o.w, "%-*s  ", widths[i], strings.ToUpper(h))
	}
	fmt.Fprintln(o.w)

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprintf(o.w, "%-*s  ", widths[i], cell)
			}
		}
		fmt.Fprintln(o.w)
	}
}

// PrintLine prints a formatted line of text.
func (o *OutputWriter) PrintLine(format string, args ...interface{}) {
	fmt.Fprintf(o.w, format+"\n", args...)
}

// Truncate shortens a string to maxLen with a trailing ellipsis.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
