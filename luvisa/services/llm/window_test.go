package llm

import (
	"fmt"
	"testing"
	"time"

	"luvisa/luvisa/sources/psql/models"
)

func makeHistory(n int) []models.ChatMessage {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	history := make([]models.ChatMessage, 0, n)
	for i := 0; i < n; i++ {
		sender := models.SenderUser
		if i%2 == 1 {
			sender = models.SenderAssistant
		}
		history = append(history, models.ChatMessage{
			UserID:    1,
			Sender:    sender,
			Message:   fmt.Sprintf("message %d", i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return history
}

func TestBuildWindowCapsSize(t *testing.T) {
	window := BuildWindow(makeHistory(12), 5)
	if len(window) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(window))
	}
	// Most recent 5, order preserved.
	for i, msg := range window {
		want := fmt.Sprintf("message %d", 7+i)
		if msg.Content != want {
			t.Errorf("entry %d: expected %q, got %q", i, want, msg.Content)
		}
	}
}

func TestBuildWindowShortHistory(t *testing.T) {
	window := BuildWindow(makeHistory(3), 5)
	if len(window) != 3 {
		t.Errorf("expected 3 entries, got %d", len(window))
	}
}

func TestBuildWindowEmptyHistory(t *testing.T) {
	window := BuildWindow(nil, 5)
	if len(window) != 0 {
		t.Errorf("expected empty window, got %d entries", len(window))
	}
}

func TestBuildWindowRoleMapping(t *testing.T) {
	history := []models.ChatMessage{
		{Sender: models.SenderUser, Message: "hi"},
		{Sender: models.SenderAssistant, Message: "hello"},
		{Sender: "luvisa", Message: "legacy sender"},
	}
	window := BuildWindow(history, 5)
	if window[0].Role != "user" {
		t.Errorf("expected role user, got %q", window[0].Role)
	}
	if window[1].Role != "assistant" {
		t.Errorf("expected role assistant, got %q", window[1].Role)
	}
	// Any non-user sender maps to assistant.
	if window[2].Role != "assistant" {
		t.Errorf("expected legacy sender to map to assistant, got %q", window[2].Role)
	}
}

func TestBuildWindowTolerate(t *testing.T) {
	history := []models.ChatMessage{{Sender: models.SenderUser}}
	window := BuildWindow(history, 5)
	if len(window) != 1 || window[0].Content != "" {
		t.Errorf("expected single empty-content entry, got %+v", window)
	}
}
