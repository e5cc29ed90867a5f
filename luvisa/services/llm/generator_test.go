package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"luvisa/luvisa/persona"
	"luvisa/luvisa/services/emotion"
	"luvisa/luvisa/sources/psql/models"
	"luvisa/luvisa/utils/logging"
)

type captureCompleter struct {
	lastReq ChatRequest
	text    string
	err     error
}

func (c *captureCompleter) Complete(ctx context.Context, req ChatRequest) (string, error) {
	c.lastReq = req
	return c.text, c.err
}

func newTestGenerator(c Completer) *Generator {
	logging.InitLogger() // ensures ErrorLogger isn't nil
	return NewGenerator(c, "test-model", persona.Default(), 5, time.Second)
}

func TestGenerateSuccess(t *testing.T) {
	completer := &captureCompleter{text: "hello there"}
	g := newTestGenerator(completer)

	got := g.Generate(context.Background(), "hi", nil, emotion.Neutral)
	if got != "hello there" {
		t.Errorf("expected completion text, got %q", got)
	}
}

func TestGenerateMessageAssembly(t *testing.T) {
	completer := &captureCompleter{text: "ok"}
	g := newTestGenerator(completer)

	history := []models.ChatMessage{
		{Sender: models.SenderUser, Message: "earlier"},
		{Sender: models.SenderAssistant, Message: "reply"},
	}
	g.Generate(context.Background(), "how are you", history, emotion.Happy)

	msgs := completer.lastReq.Messages
	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages (system + 2 history + user), got %d", len(msgs))
	}
	if msgs[0].Role != "system" {
		t.Errorf("first message should be system, got %q", msgs[0].Role)
	}
	if !strings.Contains(msgs[0].Content, "playfully teasing and cheerful") {
		t.Errorf("system prompt missing tone directive: %q", msgs[0].Content)
	}
	if !strings.Contains(msgs[0].Content, "**happy**") {
		t.Errorf("system prompt missing lowercased emotion: %q", msgs[0].Content)
	}
	if !strings.Contains(msgs[0].Content, "Luvisa💗") {
		t.Errorf("system prompt missing persona name: %q", msgs[0].Content)
	}
	last := msgs[len(msgs)-1]
	if last.Role != "user" || last.Content != "how are you" {
		t.Errorf("last message should be the user turn, got %+v", last)
	}
}

func TestGenerateFixedParams(t *testing.T) {
	completer := &captureCompleter{text: "ok"}
	g := newTestGenerator(completer)
	g.Generate(context.Background(), "hi", nil, emotion.Neutral)

	req := completer.lastReq
	if req.Model != "test-model" {
		t.Errorf("expected model test-model, got %q", req.Model)
	}
	if req.Temperature != 0.9 || req.TopP != 1.0 || req.MaxTokens != 1024 {
		t.Errorf("unexpected generation params: %+v", req)
	}
}

func TestGenerateCallFailureReturnsFallback(t *testing.T) {
	completer := &captureCompleter{err: errors.New("connection refused")}
	g := newTestGenerator(completer)

	got := g.Generate(context.Background(), "hi", nil, emotion.Neutral)
	if got != persona.Default().FallbackReply {
		t.Errorf("expected fallback reply, got %q", got)
	}
}

func TestGenerateNilClientReturnsFallback(t *testing.T) {
	g := newTestGenerator(nil)

	got := g.Generate(context.Background(), "hi", nil, emotion.Sad)
	if got != persona.Default().FallbackReply {
		t.Errorf("expected fallback reply, got %q", got)
	}
}
