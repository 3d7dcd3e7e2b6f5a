package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Engine selects the inference provider once at startup: "gemini" or "gpt".
	Engine string

	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	// MaxOutputTokens caps the model's answer; the fact-check JSON is small.
	MaxOutputTokens int

	TelegramBotToken string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Fatalf("bad %s: want a positive integer, got %q", k, v)
	}
	return def
}

// Load reads configuration from the environment (.env honored for local runs).
// The selected provider's credential is required; everything else defaults.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8000"),

		Engine: getEnv("ADCHECK_ENGINE", "gemini"),

		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		MaxOutputTokens: getEnvInt("ADCHECK_MAX_OUTPUT_TOKENS", 1024),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	switch cfg.Engine {
	case "gemini":
		cfg.GeminiAPIKey = mustEnv("GEMINI_API_KEY")
		cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	case "gpt", "openai":
		cfg.OpenAIAPIKey = mustEnv("OPENAI_API_KEY")
		cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	default:
		log.Fatalf("unknown ADCHECK_ENGINE %q: use 'gemini' or 'gpt'", cfg.Engine)
	}

	return cfg
}
