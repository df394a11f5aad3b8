package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/matb3l/tg-bot/config"
	"github.com/matb3l/tg-bot/database"
	"github.com/matb3l/tg-bot/handlers"
	"github.com/matb3l/tg-bot/states"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	if cfg.TelegramToken == "" {
		log.Fatal("telegram token not set in env (BOT_TOKEN or TELEGRAM_TOKEN)")
	}
	if cfg.DBDSN == "" {
		log.Fatal("database dsn not set (DATABASE_URL or DB_* env vars)")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("bot init: %v", err)
	}

	store, err := database.Open(cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer store.Close()

	if cfg.HTTPPort != "" {
		go serveHealth(cfg.HTTPPort, logger)
	}

	b := handlers.New(bot, store, states.NewManager(), logger, cfg.RulesFile)

	ucfg := tgbotapi.NewUpdate(0)
	ucfg.Timeout = 30
	updates := bot.GetUpdatesChan(ucfg)

	logger.Info("bot started", "account", bot.Self.UserName)
	for update := range updates {
		b.HandleUpdate(update)
	}
}

func serveHealth(port string, logger *slog.Logger) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	logger.Info("health endpoint listening", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Error("health endpoint", "err", err)
	}
}
