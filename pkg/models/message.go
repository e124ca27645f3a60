package models

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ContentBlock is one block of message content. Exactly one field is set.
type ContentBlock struct {
	Text string `json:"text,omitempty"`
	// JSON carries structured (non-text) content, e.g. tool results or
	// multi-modal blocks forwarded verbatim from the request.
	JSON map[string]any `json:"json,omitempty"`
}

// TextBlock builds a text content block.
func TextBlock(text string) ContentBlock {
	return ContentBlock{Text: text}
}

// Message is a single conversation message.
type Message struct {
	Role    Role           `json:"role"`
	Content []ContentBlock `json:"content"`
}

// UserText builds a single-block user message.
func UserText(text string) Message {
	return Message{Role: RoleUser, Content: []ContentBlock{TextBlock(text)}}
}
