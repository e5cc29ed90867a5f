package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"luvisa/luvisa/persona"
	"luvisa/luvisa/services/emotion"
	"luvisa/luvisa/sources/psql/models"
	"luvisa/luvisa/utils/logging"

	"go.uber.org/zap"
)

// Generation policy constants. Not tunable per request.
const (
	temperature = 0.9
	maxTokens   = 1024
	topP        = 1.0
)

const systemPromptTemplate = `You are %s, %s.
The user is feeling **%s**, so %s.
You are gentle, loving, and human-like in tone.
Always reply with warmth, empathy, and soft emotional understanding.`

// Generator builds the persona+tone prompt, windows the history, and invokes
// the completion API. client may be nil when no credential was configured;
// every failure path collapses into the persona fallback reply, so callers
// always receive displayable text.
type Generator struct {
	client     Completer
	model      string
	persona    persona.Persona
	windowSize int
	timeout    time.Duration
}

func NewGenerator(client Completer, model string, p persona.Persona, windowSize int, timeout time.Duration) *Generator {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Generator{
		client:     client,
		model:      model,
		persona:    p,
		windowSize: windowSize,
		timeout:    timeout,
	}
}

func (g *Generator) Generate(ctx context.Context, userText string, history []models.ChatMessage, label emotion.Label) string {
	if g.client == nil {
		logging.ErrorLogger.Error("completion client unavailable, returning fallback")
		return g.persona.FallbackReply
	}

	system := fmt.Sprintf(systemPromptTemplate,
		g.persona.Name,
		g.persona.Description,
		strings.ToLower(string(label)),
		emotion.Tone(label),
	)

	messages := make([]Message, 0, g.windowSize+2)
	messages = append(messages, Message{Role: "system", Content: system})
	messages = append(messages, BuildWindow(history, g.windowSize)...)
	messages = append(messages, Message{Role: "user", Content: userText})

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.client.Complete(callCtx, ChatRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		TopP:        topP,
	})
	if err != nil {
		logging.ErrorLogger.Error("completion call failed, returning fallback", zap.Error(err))
		return g.persona.FallbackReply
	}
	return text
}
