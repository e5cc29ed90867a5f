package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"luvisa/luvisa/config"
	"luvisa/luvisa/controllers"
	"luvisa/luvisa/persona"
	"luvisa/luvisa/routes"
	"luvisa/luvisa/services/llm"
	"luvisa/luvisa/services/reply"
	"luvisa/luvisa/sources/psql"
	"luvisa/luvisa/sources/psql/dao"
	"luvisa/luvisa/sources/storage"
	"luvisa/luvisa/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	userDAO := dao.NewUserDAO(db.DB)
	chatDAO := dao.NewChatMessageDAO(db.DB)
	companion := persona.Load()

	// Avatar storage is ancillary: a down MinIO degrades picture uploads
	// but must not take the chat down with it.
	avatars, err := storage.NewAvatarStore(cfg)
	if err != nil {
		logging.ErrorLogger.Error("minio connection error, avatar storage disabled", zap.Error(err))
		avatars = nil
	}

	// Same policy for the completion credential: a missing key leaves the
	// generator in its explicit unavailable state, replies fall back.
	var completer llm.Completer
	if cfg.GroqAPIKey != "" {
		completer = llm.NewGroqClient(cfg.GroqAPIKey)
	} else {
		logging.ErrorLogger.Error("GROQ_API_KEY not set, replies will use the fallback text")
	}
	generator := llm.NewGenerator(completer, cfg.GroqModel, companion, cfg.HistoryWindow, cfg.CompletionTimeout)
	processor := reply.NewProcessor(companion)

	authCtrl := controllers.NewAuthController(userDAO, cfg)
	userCtrl := controllers.NewUserController(userDAO, avatars, companion)
	chatCtrl := controllers.NewChatController(chatDAO, generator, processor, cfg.PacingMin, cfg.PacingMax)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/auth", routes.AuthRoutes(authCtrl))
	r.Mount("/users", routes.UserRoutes(userCtrl, cfg))
	r.Mount("/chat", routes.ChatRoutes(chatCtrl, cfg))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	logging.AppLogger.Info("server started", zap.String("port", cfg.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
