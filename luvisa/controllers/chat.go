// luvisa/controllers/chat.go
package controllers

import (
	"context"
	"math/rand"
	"time"

	"luvisa/luvisa/services/emotion"
	"luvisa/luvisa/services/reply"
	"luvisa/luvisa/sources/psql/models"
	"luvisa/luvisa/utils/logging"
	"luvisa/luvisa/utils/types"

	"go.uber.org/zap"
)

// HistoryStore is the transcript boundary. Reads must preserve
// insertion-chronological order.
type HistoryStore interface {
	SaveMessage(ctx context.Context, userID int, sender, message string, ts time.Time) (*models.ChatMessage, error)
	GetHistory(ctx context.Context, userID int) ([]models.ChatMessage, error)
	DeleteHistory(ctx context.Context, userID int) error
}

// ReplyGenerator produces displayable text for every input; completion
// failures surface as the in-persona fallback, never as an error.
type ReplyGenerator interface {
	Generate(ctx context.Context, userText string, history []models.ChatMessage, label emotion.Label) string
}

type ChatController struct {
	history   HistoryStore
	generator ReplyGenerator
	processor *reply.Processor
	pacingMin time.Duration
	pacingMax time.Duration
}

func NewChatController(history HistoryStore, generator ReplyGenerator, processor *reply.Processor, pacingMin, pacingMax time.Duration) *ChatController {
	return &ChatController{
		history:   history,
		generator: generator,
		processor: processor,
		pacingMin: pacingMin,
		pacingMax: pacingMax,
	}
}

// Converse runs one full conversation turn. No step is transactional with
// another: persistence failures are logged and the pipeline continues, so the
// caller always gets a reply and an emotion label.
func (c *ChatController) Converse(ctx context.Context, userID int, text string) types.ChatResponse {
	now := time.Now().UTC()
	if _, err := c.history.SaveMessage(ctx, userID, models.SenderUser, text, now); err != nil {
		logging.ErrorLogger.Error("save user message failed", zap.Int("user_id", userID), zap.Error(err))
	}

	c.pace(ctx)

	history, err := c.history.GetHistory(ctx, userID)
	if err != nil {
		logging.ErrorLogger.Error("load history failed, continuing with empty context",
			zap.Int("user_id", userID), zap.Error(err))
		history = nil
	}

	label := emotion.Classify(text)
	raw := c.generator.Generate(ctx, text, history, label)
	enhanced := c.processor.Process(raw)

	if _, err := c.history.SaveMessage(ctx, userID, models.SenderAssistant, enhanced, time.Now().UTC()); err != nil {
		logging.ErrorLogger.Error("save assistant message failed", zap.Int("user_id", userID), zap.Error(err))
	}

	return types.ChatResponse{Reply: enhanced, DetectedEmotion: string(label)}
}

// pace blocks this one request for a random conversational-pacing interval.
// Disabled when the max bound is zero; returns early on context cancellation.
func (c *ChatController) pace(ctx context.Context) {
	if c.pacingMax <= 0 {
		return
	}
	delay := c.pacingMin
	if spread := c.pacingMax - c.pacingMin; spread > 0 {
		delay += time.Duration(rand.Int63n(int64(spread)))
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func (c *ChatController) History(ctx context.Context, userID int) ([]types.Turn, error) {
	history, err := c.history.GetHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	turns := make([]types.Turn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, types.Turn{
			Sender:  msg.Sender,
			Message: msg.Message,
			Time:    msg.Timestamp.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	return turns, nil
}

func (c *ChatController) Forget(ctx context.Context, userID int) error {
	return c.history.DeleteHistory(ctx, userID)
}
