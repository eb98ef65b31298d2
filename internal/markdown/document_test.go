package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeveck/claude-session-logger/internal/transcript"
)

func textBlock(text string) transcript.ContentBlock {
	return transcript.ContentBlock{Type: transcript.BlockText, Text: text}
}

func toolUseBlock(id, name string, input map[string]interface{}) transcript.ContentBlock {
	return transcript.ContentBlock{Type: transcript.BlockToolUse, ID: id, Name: name, Input: input}
}

func TestRenderBody_UserAndAssistantText(t *testing.T) {
	items := []transcript.Item{
		transcript.UserTurn{Text: "Hello"},
		transcript.AssistantTurn{Blocks: []transcript.ContentBlock{textBlock("Hi there")}},
	}

	body := RenderBody(items)

	assert.Contains(t, body, "**User:**\n> Hello")
	assert.Contains(t, body, "\nHi there\n")
}

func TestRenderBody_MultilineUserTextBlockQuoted(t *testing.T) {
	items := []transcript.Item{transcript.UserTurn{Text: "line one\nline two"}}

	body := RenderBody(items)

	assert.Contains(t, body, "> line one\n> line two")
}

func TestRenderBody_ContinuationMessageCollapses(t *testing.T) {
	items := []transcript.Item{
		transcript.UserTurn{Text: "This session is being continued from a previous conversation."},
	}

	body := RenderBody(items)

	assert.Contains(t, body, "**Context restored from previous session (ran out of context):**")
	assert.Contains(t, body, "<summary>Session summary</summary>")
	assert.Contains(t, body, "> This session is being continued")
	assert.NotContains(t, body, "**User:**")
}

func TestRenderBody_ShortResultInline(t *testing.T) {
	items := []transcript.Item{
		transcript.ToolResult{ToolUseID: "t1", Content: "one\ntwo\nthree\nfour"},
		transcript.AssistantTurn{Blocks: []transcript.ContentBlock{
			toolUseBlock("t1", "Bash", map[string]interface{}{"command": "ls"}),
		}},
	}

	body := RenderBody(items)

	assert.Contains(t, body, "● `Bash(ls)`")
	assert.Contains(t, body, "  ⎿  one\n     two\n     three\n     four")
	assert.NotContains(t, body, "<details>")
}

func TestRenderBody_LongResultCollapses(t *testing.T) {
	items := []transcript.Item{
		transcript.ToolResult{ToolUseID: "t1", Content: "one\ntwo\nthree\nfour\nfive"},
		transcript.AssistantTurn{Blocks: []transcript.ContentBlock{
			toolUseBlock("t1", "Bash", map[string]interface{}{"command": "ls"}),
		}},
	}

	body := RenderBody(items)

	assert.Contains(t, body, "<details>")
	assert.Contains(t, body, "<summary>● `Bash(ls)`</summary>")
	assert.Contains(t, body, "<pre><code>one\ntwo\nthree\nfour\nfive</code></pre>")
	assert.Contains(t, body, "<br>")
	assert.NotContains(t, body, "  ⎿  ")
}

func TestRenderBody_ErrorResultInline(t *testing.T) {
	items := []transcript.Item{
		transcript.ToolResult{ToolUseID: "t1", Content: "command failed", IsError: true},
		transcript.AssistantTurn{Blocks: []transcript.ContentBlock{
			toolUseBlock("t1", "Bash", map[string]interface{}{"command": "false"}),
		}},
	}

	body := RenderBody(items)

	assert.Contains(t, body, "  ⎿  **Error:** command failed")
}

func TestRenderBody_ErrorResultCollapsed(t *testing.T) {
	items := []transcript.Item{
		transcript.ToolResult{ToolUseID: "t1", Content: "a\nb\nc\nd\ne", IsError: true},
		transcript.AssistantTurn{Blocks: []transcript.ContentBlock{
			toolUseBlock("t1", "Bash", map[string]interface{}{"command": "false"}),
		}},
	}

	body := RenderBody(items)

	assert.Contains(t, body, "<summary><b>Error:</b> ● `Bash(false)`</summary>")
}

func TestRenderBody_ToolUseErrorTagsStripped(t *testing.T) {
	items := []transcript.Item{
		transcript.ToolResult{ToolUseID: "t1", Content: "<tool_use_error>no such file</tool_use_error>", IsError: true},
		transcript.AssistantTurn{Blocks: []transcript.ContentBlock{
			toolUseBlock("t1", "Read", map[string]interface{}{"file_path": "/x"}),
		}},
	}

	body := RenderBody(items)

	assert.Contains(t, body, "  ⎿  **Error:** no such file")
	assert.NotContains(t, body, "tool_use_error")
}

func TestRenderBody_EmptyResultRendersHeaderOnly(t *testing.T) {
	items := []transcript.Item{
		transcript.AssistantTurn{Blocks: []transcript.ContentBlock{
			toolUseBlock("t1", "Bash", map[string]interface{}{"command": "true"}),
		}},
	}

	body := RenderBody(items)

	assert.Contains(t, body, "● `Bash(true)`")
	assert.NotContains(t, body, "  ⎿  ")
	assert.NotContains(t, body, "<details>")
}

func TestRenderBody_EditRendersDiff(t *testing.T) {
	items := []transcript.Item{
		transcript.ToolResult{ToolUseID: "t1", Content: "Updated /tmp/f.go"},
		transcript.AssistantTurn{Blocks: []transcript.ContentBlock{
			toolUseBlock("t1", "Edit", map[string]interface{}{
				"file_path":  "/tmp/f.go",
				"old_string": "a\nb\nc",
				"new_string": "a\nx\nc",
			}),
		}},
	}

	body := RenderBody(items)

	assert.Contains(t, body, "● `Update(/tmp/f.go)`")
	assert.Contains(t, body, "```diff\n a\n+x\n-b\n c\n```")
	assert.Contains(t, body, "  ⎿  Updated /tmp/f.go")
}

func TestRenderBody_EditLongResultStaysInline(t *testing.T) {
	long := strings.Repeat("result line\n", 7) + "tail"
	items := []transcript.Item{
		transcript.ToolResult{ToolUseID: "t1", Content: long},
		transcript.AssistantTurn{Blocks: []transcript.ContentBlock{
			toolUseBlock("t1", "Edit", map[string]interface{}{
				"file_path":  "/tmp/f.go",
				"old_string": "a",
				"new_string": "b",
			}),
		}},
	}

	body := RenderBody(items)

	assert.Contains(t, body, "  ⎿  result line")
	assert.NotContains(t, body, "<details>")
}

func TestRenderBody_ThinkingBlocksDropped(t *testing.T) {
	items := []transcript.Item{
		transcript.AssistantTurn{Blocks: []transcript.ContentBlock{
			{Type: transcript.BlockThinking},
			textBlock("visible text"),
		}},
	}

	body := RenderBody(items)

	assert.Equal(t, "visible text", strings.TrimSpace(body))
}

func TestRenderBody_AssistantTextUnescaped(t *testing.T) {
	items := []transcript.Item{
		transcript.AssistantTurn{Blocks: []transcript.ContentBlock{
			textBlock("use &lt;ctx&gt; here"),
		}},
	}

	body := RenderBody(items)

	assert.Contains(t, body, "use <ctx> here")
}

func TestRenderBody_UnmatchedToolResultDropped(t *testing.T) {
	items := []transcript.Item{
		transcript.ToolResult{ToolUseID: "orphan", Content: "never shown"},
	}

	body := RenderBody(items)

	assert.NotContains(t, body, "never shown")
}

func TestRenderBody_Deterministic(t *testing.T) {
	items := []transcript.Item{
		transcript.UserTurn{Text: "Hello"},
		transcript.ToolResult{ToolUseID: "t1", Content: "ok"},
		transcript.AssistantTurn{Blocks: []transcript.ContentBlock{
			textBlock("Working on it"),
			toolUseBlock("t1", "Bash", map[string]interface{}{"command": "ls"}),
		}},
	}

	assert.Equal(t, RenderBody(items), RenderBody(items))
}

func TestRenderBody_Empty(t *testing.T) {
	assert.Equal(t, "", RenderBody(nil))
}
