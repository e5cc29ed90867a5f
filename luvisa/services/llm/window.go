package llm

import (
	"luvisa/luvisa/sources/psql/models"
)

// DefaultWindowSize caps how many stored turns travel with each completion
// request. Bounds prompt size and cost.
const DefaultWindowSize = 5

// BuildWindow takes the most recent size turns from a chronologically ordered
// history and maps them to completion roles: sender "user" stays user, any
// other sender becomes assistant. Pure; tolerates empty messages and returns
// fewer entries when history is shorter than size.
func BuildWindow(history []models.ChatMessage, size int) []Message {
	if size <= 0 {
		size = DefaultWindowSize
	}
	start := len(history) - size
	if start < 0 {
		start = 0
	}

	window := make([]Message, 0, len(history)-start)
	for _, turn := range history[start:] {
		role := "assistant"
		if turn.Sender == models.SenderUser {
			role = "user"
		}
		window = append(window, Message{Role: role, Content: turn.Message})
	}
	return window
}
