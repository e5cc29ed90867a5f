package controllers

import (
	"context"
	"errors"
	"testing"
	"time"

	"luvisa/luvisa/persona"
	"luvisa/luvisa/services/emotion"
	"luvisa/luvisa/services/reply"
	"luvisa/luvisa/sources/psql/models"
	"luvisa/luvisa/utils/logging"
)

// --- Fakes ---

type fakeHistoryStore struct {
	saved      []models.ChatMessage
	history    []models.ChatMessage
	saveErr    error
	loadErr    error
	deleteErr  error
	deletedFor int
}

func (f *fakeHistoryStore) SaveMessage(ctx context.Context, userID int, sender, message string, ts time.Time) (*models.ChatMessage, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	msg := models.ChatMessage{UserID: userID, Sender: sender, Message: message, Timestamp: ts}
	f.saved = append(f.saved, msg)
	return &msg, nil
}

func (f *fakeHistoryStore) GetHistory(ctx context.Context, userID int) ([]models.ChatMessage, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.history, nil
}

func (f *fakeHistoryStore) DeleteHistory(ctx context.Context, userID int) error {
	f.deletedFor = userID
	return f.deleteErr
}

type fakeGenerator struct {
	reply       string
	gotHistory  []models.ChatMessage
	gotLabel    emotion.Label
	gotUserText string
}

func (f *fakeGenerator) Generate(ctx context.Context, userText string, history []models.ChatMessage, label emotion.Label) string {
	f.gotUserText = userText
	f.gotHistory = history
	f.gotLabel = label
	return f.reply
}

func newTestChatController(store *fakeHistoryStore, gen *fakeGenerator) *ChatController {
	logging.InitLogger()
	processor := reply.NewProcessor(persona.Default())
	// pacing disabled in tests
	return NewChatController(store, gen, processor, 0, 0)
}

// --- Tests ---

func TestConverseFullTurn(t *testing.T) {
	store := &fakeHistoryStore{}
	gen := &fakeGenerator{reply: "I missed you so much"}
	ctrl := newTestChatController(store, gen)

	resp := ctrl.Converse(context.Background(), 7, "I am so happy today")

	if resp.Reply == "" {
		t.Fatal("expected non-empty reply")
	}
	if resp.DetectedEmotion != "Happy" {
		t.Errorf("expected Happy, got %s", resp.DetectedEmotion)
	}
	if gen.gotLabel != emotion.Happy {
		t.Errorf("generator should receive the classified label, got %s", gen.gotLabel)
	}
	if gen.gotUserText != "I am so happy today" {
		t.Errorf("generator should receive the raw user text, got %q", gen.gotUserText)
	}
	if len(store.saved) != 2 {
		t.Fatalf("expected user turn and assistant turn persisted, got %d", len(store.saved))
	}
	if store.saved[0].Sender != models.SenderUser || store.saved[1].Sender != models.SenderAssistant {
		t.Errorf("unexpected senders: %s, %s", store.saved[0].Sender, store.saved[1].Sender)
	}
	if store.saved[1].Message != resp.Reply {
		t.Errorf("persisted assistant turn should be the post-processed reply")
	}
	if store.saved[1].Timestamp.Before(store.saved[0].Timestamp) {
		t.Errorf("assistant timestamp precedes user timestamp")
	}
}

func TestConverseSurvivesPersistenceFailure(t *testing.T) {
	store := &fakeHistoryStore{saveErr: errors.New("db down")}
	gen := &fakeGenerator{reply: "still here for you"}
	ctrl := newTestChatController(store, gen)

	resp := ctrl.Converse(context.Background(), 7, "hello")
	if resp.Reply == "" {
		t.Error("expected a reply despite persistence failure")
	}
	if resp.DetectedEmotion == "" {
		t.Error("expected an emotion label despite persistence failure")
	}
}

func TestConverseSurvivesHistoryLoadFailure(t *testing.T) {
	store := &fakeHistoryStore{loadErr: errors.New("db down")}
	gen := &fakeGenerator{reply: "ok"}
	ctrl := newTestChatController(store, gen)

	resp := ctrl.Converse(context.Background(), 7, "hello")
	if resp.Reply == "" {
		t.Error("expected a reply despite history load failure")
	}
	if gen.gotHistory != nil {
		t.Errorf("generator should get empty history on load failure, got %d turns", len(gen.gotHistory))
	}
}

func TestConversePostprocessesReply(t *testing.T) {
	store := &fakeHistoryStore{}
	gen := &fakeGenerator{reply: "llama will always love you"}
	ctrl := newTestChatController(store, gen)

	resp := ctrl.Converse(context.Background(), 7, "hi")
	if resp.Reply != "Luvisa💗 will always love ❤️ you" {
		t.Errorf("unexpected post-processed reply: %q", resp.Reply)
	}
}

func TestHistoryFormatting(t *testing.T) {
	ts := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	store := &fakeHistoryStore{history: []models.ChatMessage{
		{Sender: models.SenderUser, Message: "hi", Timestamp: ts},
	}}
	ctrl := newTestChatController(store, &fakeGenerator{})

	turns, err := ctrl.History(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
	if turns[0].Time != "2025-06-01 09:30:00" {
		t.Errorf("unexpected time format: %q", turns[0].Time)
	}
}

func TestForget(t *testing.T) {
	store := &fakeHistoryStore{}
	ctrl := newTestChatController(store, &fakeGenerator{})

	if err := ctrl.Forget(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.deletedFor != 7 {
		t.Errorf("expected deletion for user 7, got %d", store.deletedFor)
	}
}
