// Package markdown renders grouped transcript items into a markdown
// conversation document.
package markdown

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// inlineResultMaxLines is the largest result, in lines, still rendered
// inline under its tool header. Longer results collapse into a
// <details> block.
const inlineResultMaxLines = 4

// Per-field truncation limits for tool headers.
const (
	maxCommandLen = 120
	maxPatternLen = 80
	maxURLLen     = 100
	maxDescLen    = 100
)

// headerFunc formats a one-line header for one known tool.
type headerFunc func(input map[string]interface{}) string

// toolHeaders is the closed dispatch set of known tool names. Anything
// else falls back to the generic header.
var toolHeaders = map[string]headerFunc{
	"Bash": func(input map[string]interface{}) string {
		cmd, _, _ := strings.Cut(inputString(input, "command"), "\n")
		return fmt.Sprintf("● `Bash(%s)`", truncate(cmd, maxCommandLen))
	},
	"Read": func(input map[string]interface{}) string {
		return fmt.Sprintf("● `Read(%s)`", inputString(input, "file_path"))
	},
	"Write": func(input map[string]interface{}) string {
		return fmt.Sprintf("● `Write(%s)`", inputString(input, "file_path"))
	},
	"Edit": func(input map[string]interface{}) string {
		return fmt.Sprintf("● `Update(%s)`", inputString(input, "file_path"))
	},
	"Glob": func(input map[string]interface{}) string {
		return fmt.Sprintf("● `Glob(%s)`", inputString(input, "pattern"))
	},
	"Grep": func(input map[string]interface{}) string {
		pattern := inputString(input, "pattern")
		if pattern == "" {
			return "● Searched codebase"
		}
		return fmt.Sprintf("● Searched for `%s`", truncate(pattern, maxPatternLen))
	},
	"WebFetch": func(input map[string]interface{}) string {
		return fmt.Sprintf("● `WebFetch(%s)`", truncate(inputString(input, "url"), maxURLLen))
	},
	"WebSearch": func(input map[string]interface{}) string {
		return fmt.Sprintf("● `WebSearch(%s)`", inputString(input, "query"))
	},
	"Task": func(input map[string]interface{}) string {
		desc := truncate(inputString(input, "description"), maxDescLen)
		if agent := inputString(input, "subagent_type"); agent != "" {
			return fmt.Sprintf("● `Task(%s: %s)`", agent, desc)
		}
		return fmt.Sprintf("● `Task(%s)`", desc)
	},
}

// ToolHeader formats the one-line header for a tool invocation.
func ToolHeader(name string, input map[string]interface{}) string {
	if name == "" {
		name = "unknown"
	}
	if input != nil {
		if format, known := toolHeaders[name]; known {
			return format(input)
		}
	}
	return "● " + name
}

func inputString(input map[string]interface{}, key string) string {
	s, _ := input[key].(string)
	return s
}

// truncate limits s to maxLen characters, not bytes, so multibyte
// input is never cut mid-rune.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen]) + "..."
}

var toolUseErrorTag = regexp.MustCompile(`</?tool_use_error>`)

// cleanResultText strips internal XML markers from tool result text.
func cleanResultText(text string) string {
	return strings.TrimSpace(toolUseErrorTag.ReplaceAllString(text, ""))
}

func escapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	return strings.ReplaceAll(text, ">", "&gt;")
}

func unescapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	return strings.ReplaceAll(text, "&amp;", "&")
}
