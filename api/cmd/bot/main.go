package main

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"adcheck/api/internal/config"
	"adcheck/api/internal/factcheck"
	"adcheck/api/internal/factcheck/gemini"
	"adcheck/api/internal/factcheck/gpt"
	"adcheck/api/internal/telegram"
)

func main() {
	cfg := config.Load()

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	} else if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8080"
	}

	if cfg.TelegramBotToken == "" {
		log.Fatal("missing required env TELEGRAM_BOT_TOKEN")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false

	engines := &factcheck.Engines{
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.MaxOutputTokens),
		OpenAI: gpt.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.MaxOutputTokens),
	}
	engine, err := engines.Get(cfg.Engine)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	r := &telegram.Router{
		Bot:    bot,
		Engine: engine,
	}

	addr := "0.0.0.0:" + cfg.Port

	webhookURL := strings.TrimSpace(os.Getenv("WEBHOOK_URL"))
	if webhookURL != "" {
		startWebhookMode(addr, bot, r, webhookURL)
		return
	}
	startPollingMode(addr, bot, r)
}

func startWebhookMode(addr string, bot *tgbotapi.BotAPI, r *telegram.Router, baseURL string) {
	path := "/webhook/" + shortHash(bot.Token)
	public := strings.TrimRight(baseURL, "/") + path

	wh, err := tgbotapi.NewWebhook(public)
	if err != nil {
		log.Fatal(err)
	}
	wh.DropPendingUpdates = true
	if _, err := bot.Request(wh); err != nil {
		log.Fatal(err)
	}

	// ListenForWebhook registers on the DefaultServeMux, where the health
	// endpoint also lives.
	updates := bot.ListenForWebhook(path)

	go func() {
		// One goroutine per update, so the per-chat in-flight guard can
		// see overlapping submissions.
		for upd := range updates {
			go r.HandleUpdate(upd)
		}
		log.Printf("webhook updates channel closed")
	}()

	log.Printf("webhook listening on %s%s", addr, path)
	log.Fatal(serveHealth(addr))
}

func startPollingMode(addr string, bot *tgbotapi.BotAPI, r *telegram.Router) {
	go func() {
		log.Fatal(serveHealth(addr))
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	log.Printf("polling as @%s", bot.Self.UserName)
	for upd := range bot.GetUpdatesChan(u) {
		go r.HandleUpdate(upd)
	}
}

// serveHealth answers the hosting platform's liveness probes on the
// DefaultServeMux so webhook mode shares the listener.
func serveHealth(addr string) error {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("adcheck telegram bot"))
	})
	log.Printf("health server listening on %s/healthz", addr)
	return http.ListenAndServe(addr, nil)
}

func shortHash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])[:16]
}
