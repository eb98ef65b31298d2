// Package transcript parses Claude Code JSONL transcripts and folds the
// raw record stream into renderable conversation items.
package transcript

import (
	"encoding/json"
	"strings"
)

// Record kinds that carry conversation content.
const (
	RecordTypeUser      = "user"
	RecordTypeAssistant = "assistant"
)

// skipTypes are record kinds that never reach the grouping engine.
var skipTypes = map[string]bool{
	"file-history-snapshot": true,
	"queue-operation":       true,
	"progress":              true,
	"system":                true,
}

// Record is a single parsed line of a JSONL transcript.
type Record struct {
	Type      string   `json:"type"`
	Message   *Message `json:"message"`
	Timestamp string   `json:"timestamp"`
	IsMeta    bool     `json:"isMeta"`
}

// Skip reports whether the record should be discarded before grouping.
func (r Record) Skip() bool {
	return skipTypes[r.Type] || r.IsMeta
}

// Message is the message payload of a user or assistant record.
type Message struct {
	ID      string         `json:"id"`
	Role    string         `json:"role"`
	Content MessageContent `json:"content"`
}

// MessageContent is either a plain string or a list of content blocks.
// Exactly one of Text/Blocks is meaningful, discriminated by IsText.
type MessageContent struct {
	IsText bool
	Text   string
	Blocks []ContentBlock
}

// UnmarshalJSON accepts both the string and block-list content shapes.
// Any other shape decodes to an empty content value.
func (c *MessageContent) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.IsText = true
		c.Text = s
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var blocks []ContentBlock
		if err := json.Unmarshal(data, &blocks); err != nil {
			return err
		}
		c.Blocks = blocks
		return nil
	}
	*c = MessageContent{}
	return nil
}

// BlockType discriminates content block variants.
type BlockType string

const (
	BlockText       BlockType = "text"
	BlockToolUse    BlockType = "tool_use"
	BlockToolResult BlockType = "tool_result"
	BlockThinking   BlockType = "thinking"
	BlockUnknown    BlockType = ""
)

// ContentBlock is one unit of a message content list. The Type field
// selects which of the remaining fields are meaningful; unrecognized
// types decode as BlockUnknown and are ignored downstream.
type ContentBlock struct {
	Type BlockType

	// text
	Text string

	// tool_use
	ID    string
	Name  string
	Input map[string]interface{}

	// tool_result
	ToolUseID string
	IsError   bool
	Result    json.RawMessage
}

type rawBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text"`
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Input     json.RawMessage `json:"input"`
	ToolUseID string          `json:"tool_use_id"`
	IsError   bool            `json:"is_error"`
	Content   json.RawMessage `json:"content"`
}

// decodeInput parses a tool_use input object. A missing input decodes
// to an empty map; a non-object input decodes to nil, which downstream
// formatting treats as "render the generic header".
func decodeInput(raw json.RawMessage) map[string]interface{} {
	if len(raw) == 0 {
		return map[string]interface{}{}
	}
	var input map[string]interface{}
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil
	}
	if input == nil {
		input = map[string]interface{}{}
	}
	return input
}

// UnmarshalJSON decodes the block, keeping only the fields relevant to
// its type. Non-object blocks decode as BlockUnknown.
func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	var raw rawBlock
	if err := json.Unmarshal(data, &raw); err != nil {
		*b = ContentBlock{Type: BlockUnknown}
		return nil
	}

	switch BlockType(raw.Type) {
	case BlockText:
		*b = ContentBlock{Type: BlockText, Text: raw.Text}
	case BlockToolUse:
		*b = ContentBlock{Type: BlockToolUse, ID: raw.ID, Name: raw.Name, Input: decodeInput(raw.Input)}
	case BlockToolResult:
		*b = ContentBlock{Type: BlockToolResult, ToolUseID: raw.ToolUseID, IsError: raw.IsError, Result: raw.Content}
	case BlockThinking:
		*b = ContentBlock{Type: BlockThinking}
	default:
		*b = ContentBlock{Type: BlockUnknown}
	}
	return nil
}

// ResultText extracts display text from a tool_result content field.
// String content is returned as-is. Block-list content joins text
// blocks with newlines, renders images as a placeholder, and falls back
// to the raw JSON for anything else.
func (b ContentBlock) ResultText() string {
	if len(b.Result) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(b.Result, &s); err == nil {
		return s
	}

	var list []json.RawMessage
	if err := json.Unmarshal(b.Result, &list); err != nil {
		return ""
	}

	var parts []string
	for _, elem := range list {
		var str string
		if err := json.Unmarshal(elem, &str); err == nil {
			parts = append(parts, str)
			continue
		}
		var obj struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}
		if err := json.Unmarshal(elem, &obj); err != nil {
			continue
		}
		switch obj.Type {
		case "text":
			parts = append(parts, obj.Text)
		case "image":
			parts = append(parts, "[image]")
		default:
			parts = append(parts, string(elem))
		}
	}
	return strings.Join(parts, "\n")
}
