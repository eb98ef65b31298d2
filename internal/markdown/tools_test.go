package markdown

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestToolHeader_Bash(t *testing.T) {
	header := ToolHeader("Bash", map[string]interface{}{"command": "ls -la"})
	assert.Equal(t, "● `Bash(ls -la)`", header)
}

func TestToolHeader_BashMultilineCommand(t *testing.T) {
	header := ToolHeader("Bash", map[string]interface{}{"command": "echo first\necho second"})
	assert.Equal(t, "● `Bash(echo first)`", header)
}

func TestToolHeader_BashCommandAtLimit(t *testing.T) {
	cmd := strings.Repeat("x", 120)
	header := ToolHeader("Bash", map[string]interface{}{"command": cmd})
	assert.Equal(t, "● `Bash("+cmd+")`", header)
	assert.NotContains(t, header, "...")
}

func TestToolHeader_BashCommandOverLimit(t *testing.T) {
	cmd := strings.Repeat("x", 121)
	header := ToolHeader("Bash", map[string]interface{}{"command": cmd})
	assert.Equal(t, "● `Bash("+strings.Repeat("x", 120)+"...)`", header)
}

func TestToolHeader_BashMultibyteCommandAtLimit(t *testing.T) {
	// 100 characters but 300 bytes: under the limit, so untouched.
	cmd := strings.Repeat("世", 100)
	header := ToolHeader("Bash", map[string]interface{}{"command": cmd})
	assert.Equal(t, "● `Bash("+cmd+")`", header)
	assert.NotContains(t, header, "...")
}

func TestToolHeader_BashMultibyteCommandOverLimit(t *testing.T) {
	cmd := "a" + strings.Repeat("世", 121)
	header := ToolHeader("Bash", map[string]interface{}{"command": cmd})

	assert.True(t, utf8.ValidString(header))
	assert.Equal(t, "● `Bash(a"+strings.Repeat("世", 119)+"...)`", header)
}

func TestToolHeader_ReadWriteEdit(t *testing.T) {
	input := map[string]interface{}{"file_path": "/tmp/f.go"}

	assert.Equal(t, "● `Read(/tmp/f.go)`", ToolHeader("Read", input))
	assert.Equal(t, "● `Write(/tmp/f.go)`", ToolHeader("Write", input))
	assert.Equal(t, "● `Update(/tmp/f.go)`", ToolHeader("Edit", input))
}

func TestToolHeader_Glob(t *testing.T) {
	header := ToolHeader("Glob", map[string]interface{}{"pattern": "**/*.go"})
	assert.Equal(t, "● `Glob(**/*.go)`", header)
}

func TestToolHeader_Grep(t *testing.T) {
	header := ToolHeader("Grep", map[string]interface{}{"pattern": "func main"})
	assert.Equal(t, "● Searched for `func main`", header)
}

func TestToolHeader_GrepEmptyPattern(t *testing.T) {
	header := ToolHeader("Grep", map[string]interface{}{})
	assert.Equal(t, "● Searched codebase", header)
}

func TestToolHeader_GrepPatternOverLimit(t *testing.T) {
	pattern := strings.Repeat("p", 81)
	header := ToolHeader("Grep", map[string]interface{}{"pattern": pattern})
	assert.Equal(t, "● Searched for `"+strings.Repeat("p", 80)+"...`", header)
}

func TestToolHeader_WebFetch(t *testing.T) {
	header := ToolHeader("WebFetch", map[string]interface{}{"url": "https://example.com"})
	assert.Equal(t, "● `WebFetch(https://example.com)`", header)
}

func TestToolHeader_WebSearch(t *testing.T) {
	header := ToolHeader("WebSearch", map[string]interface{}{"query": "go testing"})
	assert.Equal(t, "● `WebSearch(go testing)`", header)
}

func TestToolHeader_Task(t *testing.T) {
	header := ToolHeader("Task", map[string]interface{}{
		"description":   "Explore the repo",
		"subagent_type": "Explore",
	})
	assert.Equal(t, "● `Task(Explore: Explore the repo)`", header)
}

func TestToolHeader_TaskWithoutAgentType(t *testing.T) {
	header := ToolHeader("Task", map[string]interface{}{"description": "Do a thing"})
	assert.Equal(t, "● `Task(Do a thing)`", header)
}

func TestToolHeader_UnknownTool(t *testing.T) {
	header := ToolHeader("Foo", map[string]interface{}{})
	assert.Equal(t, "● Foo", header)
}

func TestToolHeader_EmptyName(t *testing.T) {
	assert.Equal(t, "● unknown", ToolHeader("", map[string]interface{}{}))
}

func TestToolHeader_NilInput(t *testing.T) {
	// A tool_use whose input was not an object gets the generic
	// header even for a known tool name.
	assert.Equal(t, "● Bash", ToolHeader("Bash", nil))
}

func TestCleanResultText(t *testing.T) {
	assert.Equal(t, "File not found",
		cleanResultText("<tool_use_error>File not found</tool_use_error>"))
	assert.Equal(t, "plain output", cleanResultText("  plain output\n"))
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp;c", escapeHTML("a <b> &c"))
}

func TestUnescapeHTML(t *testing.T) {
	assert.Equal(t, "a <b> &c", unescapeHTML("a &lt;b&gt; &amp;c"))
}
