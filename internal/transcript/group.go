package transcript

import (
	"strings"

	"github.com/google/uuid"
)

// Item is one renderable unit of the conversation: a user turn, a tool
// result, or a grouped assistant turn.
type Item interface {
	item()
}

// UserTurn is a plain user message.
type UserTurn struct {
	Text      string
	Timestamp string
}

// ToolResult is a tool result delivered inside a user-role record.
type ToolResult struct {
	ToolUseID string
	Content   string
	IsError   bool
	Timestamp string
}

// AssistantTurn is one logical assistant response, possibly assembled
// from several raw records sharing a message ID.
type AssistantTurn struct {
	Blocks    []ContentBlock
	Timestamp string
}

func (UserTurn) item()      {}
func (ToolResult) item()    {}
func (AssistantTurn) item() {}

// assistantGroup accumulates blocks for one assistant message ID.
type assistantGroup struct {
	blocks    []ContentBlock
	timestamp string
}

// Group folds records into items. Consecutive assistant records sharing
// a message ID merge into a single AssistantTurn; open groups are
// flushed in first-seen order whenever a user record arrives and again
// at end of stream, preserving the chronological interleaving of turns
// and tool results.
func Group(records []Record) []Item {
	var items []Item
	groups := make(map[string]*assistantGroup)
	var order []string

	flush := func() {
		for _, id := range order {
			grp := groups[id]
			items = append(items, AssistantTurn{Blocks: grp.blocks, Timestamp: grp.timestamp})
		}
		groups = make(map[string]*assistantGroup)
		order = nil
	}

	for _, record := range records {
		if record.Skip() || record.Message == nil {
			continue
		}

		switch record.Type {
		case RecordTypeUser:
			flush()
			if record.Message.Role != "user" {
				continue
			}
			items = append(items, userItems(record)...)

		case RecordTypeAssistant:
			id := record.Message.ID
			if grp, open := groups[id]; id != "" && open {
				grp.blocks = append(grp.blocks, record.Message.Content.Blocks...)
				continue
			}
			if id == "" {
				// Identifier-less records never merge with anything.
				id = uuid.NewString()
			}
			groups[id] = &assistantGroup{
				blocks:    append([]ContentBlock(nil), record.Message.Content.Blocks...),
				timestamp: record.Timestamp,
			}
			order = append(order, id)
		}
	}

	flush()
	return items
}

// userItems expands a user record into at most one UserTurn plus any
// tool results found in its content list, in list order.
func userItems(record Record) []Item {
	content := record.Message.Content

	if content.IsText {
		text := strings.TrimSpace(content.Text)
		if text == "" {
			return nil
		}
		return []Item{UserTurn{Text: text, Timestamp: record.Timestamp}}
	}

	var textParts []string
	var results []Item
	for _, block := range content.Blocks {
		switch block.Type {
		case BlockText:
			if t := strings.TrimSpace(block.Text); t != "" {
				textParts = append(textParts, t)
			}
		case BlockToolResult:
			results = append(results, ToolResult{
				ToolUseID: block.ToolUseID,
				Content:   strings.TrimSpace(block.ResultText()),
				IsError:   block.IsError,
				Timestamp: record.Timestamp,
			})
		}
	}

	var items []Item
	if len(textParts) > 0 {
		items = append(items, UserTurn{Text: strings.Join(textParts, "\n"), Timestamp: record.Timestamp})
	}
	return append(items, results...)
}
