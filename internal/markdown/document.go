package markdown

import (
	"strings"

	"github.com/zeveck/claude-session-logger/internal/transcript"
)

// continuationPrefix marks a user message that restores context from an
// earlier session; such messages collapse behind a summary block.
const continuationPrefix = "This session is being continued from a previous"

// matchedResult is a tool result paired to a tool_use ID.
type matchedResult struct {
	content string
	isError bool
}

// RenderBody renders grouped items as the document body. Tool results
// are first indexed by tool_use ID, then each tool_use block renders
// paired with its result; standalone results render nowhere.
func RenderBody(items []transcript.Item) string {
	results := make(map[string]matchedResult)
	for _, item := range items {
		if tr, ok := item.(transcript.ToolResult); ok && tr.ToolUseID != "" {
			results[tr.ToolUseID] = matchedResult{content: tr.Content, isError: tr.IsError}
		}
	}

	var lines []string
	for _, item := range items {
		switch it := item.(type) {
		case transcript.UserTurn:
			lines = renderUserTurn(lines, it.Text)
		case transcript.ToolResult:
			// Consumed via the index above.
		case transcript.AssistantTurn:
			lines = renderAssistantTurn(lines, it.Blocks, results)
		}
	}

	return strings.Join(lines, "\n")
}

func renderUserTurn(lines []string, text string) []string {
	quoted := blockQuote(text)

	if strings.HasPrefix(text, continuationPrefix) {
		lines = append(lines,
			"**Context restored from previous session (ran out of context):**",
			"<details>",
			"<summary>Session summary</summary>",
			"",
			quoted,
			"",
			"</details>",
			"<br>",
			"")
		return lines
	}

	lines = append(lines, "**User:**\n"+quoted, "")
	return lines
}

func blockQuote(text string) string {
	split := strings.Split(text, "\n")
	quoted := make([]string, len(split))
	for i, line := range split {
		quoted[i] = "> " + line
	}
	return strings.Join(quoted, "\n")
}

func renderAssistantTurn(lines []string, blocks []transcript.ContentBlock, results map[string]matchedResult) []string {
	for _, block := range blocks {
		switch block.Type {
		case transcript.BlockThinking, transcript.BlockUnknown, transcript.BlockToolResult:
			// Not rendered inside assistant turns.

		case transcript.BlockText:
			text := unescapeHTML(strings.TrimSpace(block.Text))
			if text == "" {
				continue
			}
			if n := len(lines); n > 0 && lines[n-1] != "" {
				lines = append(lines, "")
			}
			lines = append(lines, text, "")

		case transcript.BlockToolUse:
			header := ToolHeader(block.Name, block.Input)
			result, matched := results[block.ID]
			if block.Name == "Edit" {
				lines = renderEdit(lines, header, block.Input, result, matched)
			} else {
				lines = renderToolWithResult(lines, header, result)
			}
		}
	}

	if n := len(lines); n > 0 && lines[n-1] != "" {
		lines = append(lines, "")
	}
	return lines
}

// renderEdit renders the Edit tool: header, a fenced diff when old/new
// strings are present, then the result always inline.
func renderEdit(lines []string, header string, input map[string]interface{}, result matchedResult, matched bool) []string {
	lines = append(lines, header)

	oldStr, _ := input["old_string"].(string)
	newStr, _ := input["new_string"].(string)
	if oldStr != "" || newStr != "" {
		if diff := RenderDiff(oldStr, newStr); len(diff) > 0 {
			lines = append(lines, "```diff")
			lines = append(lines, diff...)
			lines = append(lines, "```")
		}
	}

	content := cleanResultText(result.content)
	if matched && content != "" {
		lines = renderResultInline(lines, content, result.isError)
	} else {
		lines = append(lines, "")
	}
	return lines
}

// renderToolWithResult pairs a tool header with its result. Short
// results render inline under the header; long ones collapse with the
// header as the details summary.
func renderToolWithResult(lines []string, header string, result matchedResult) []string {
	content := cleanResultText(result.content)
	if content == "" {
		lines = append(lines, header, "")
		return lines
	}

	if strings.Count(content, "\n")+1 <= inlineResultMaxLines {
		lines = append(lines, header)
		return renderResultInline(lines, content, result.isError)
	}
	return renderResultCollapsed(lines, content, escapeHTML(header), result.isError)
}

func renderResultInline(lines []string, content string, isError bool) []string {
	prefix := "  ⎿  "
	if isError {
		prefix = "  ⎿  **Error:** "
	}
	for i, line := range strings.Split(content, "\n") {
		if i == 0 {
			lines = append(lines, prefix+line)
		} else {
			lines = append(lines, "     "+line)
		}
	}
	return append(lines, "")
}

func renderResultCollapsed(lines []string, content, summary string, isError bool) []string {
	if isError {
		summary = "<b>Error:</b> " + summary
	}
	lines = append(lines,
		"<details>",
		"<summary>"+summary+"</summary>",
		"<pre><code>"+escapeHTML(content)+"</code></pre>",
		"</details>",
		"<br>",
		"")
	return lines
}
