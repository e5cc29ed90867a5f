// Command-line interface for talking to the companion locally
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"luvisa/luvisa/config"
	"luvisa/luvisa/controllers"
	"luvisa/luvisa/persona"
	"luvisa/luvisa/services/llm"
	"luvisa/luvisa/services/reply"
	"luvisa/luvisa/sources/psql"
	"luvisa/luvisa/sources/psql/dao"
	"luvisa/luvisa/utils/color"
	"luvisa/luvisa/utils/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	args := os.Args[1:]
	if len(args) < 1 || args[0] != "chat" {
		fmt.Println("Luvisa CLI usage:")
		fmt.Println("  luvisa chat [user_id]   # Talk to the companion from the terminal")
		os.Exit(1)
	}

	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		fmt.Println(color.ColorError("could not connect to database: " + err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	userID := 1
	if len(args) >= 2 {
		fmt.Sscanf(args[1], "%d", &userID)
	}
	sessionID := fmt.Sprintf("cli-%s", uuid.New().String()[:8])

	companion := persona.Load()
	var completer llm.Completer
	if cfg.GroqAPIKey != "" {
		completer = llm.NewGroqClient(cfg.GroqAPIKey)
	} else {
		fmt.Println(color.ColorWarning("GROQ_API_KEY not set; replies will use the fallback text"))
	}
	generator := llm.NewGenerator(completer, cfg.GroqModel, companion, cfg.HistoryWindow, cfg.CompletionTimeout)
	processor := reply.NewProcessor(companion)
	chatDAO := dao.NewChatMessageDAO(db.DB)
	// No pacing delay at the terminal.
	ctrl := controllers.NewChatController(chatDAO, generator, processor, 0, 0)

	logging.AppLogger.Info("cli chat started",
		zap.String("sessionID", sessionID),
		zap.Int("userID", userID),
	)
	fmt.Println(color.ColorInfo("Connected. Session: " + sessionID))
	fmt.Println("Type your message or 'exit' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.ColorPrompt("you> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			fmt.Println(color.ColorInfo("👋 Goodbye!"))
			break
		}
		if line == "" {
			continue
		}

		resp := ctrl.Converse(context.Background(), userID, line)
		fmt.Printf("%s %s\n", color.ColorCompanion(companion.CardName+">"), resp.Reply)
		fmt.Println(color.ColorInfo("  (detected: " + resp.DetectedEmotion + ")"))
		fmt.Println()
	}
}
