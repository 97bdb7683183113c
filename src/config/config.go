package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	LogLevel      string
	AllowedOrigin string

	// Language the extraction patterns are written for. Text arriving in any
	// other language goes through the translation service first.
	ProcessingLanguage string

	TranslationAPIURL   string
	TranslationAPIKey   string
	TranslationCacheTTL time.Duration

	TariffAPIURL   string
	TariffAPIKey   string
	TariffCacheTTL time.Duration

	// Optional bearer auth for the voice-assistant webhook. Empty secret
	// leaves the webhook open (hackathon default).
	WebhookJWTSecret   string
	WebhookTokenExpiry time.Duration

	HTTPClientTimeout time.Duration
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	webhookSecret := getEnv("WEBHOOK_JWT_SECRET", "")
	if webhookSecret != "" && len(webhookSecret) < 32 {
		log.Fatalf("FATAL: WEBHOOK_JWT_SECRET must be at least 32 bytes long when set. Current length: %d", len(webhookSecret))
	}

	Cfg = &AppConfig{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		ProcessingLanguage: getEnv("PROCESSING_LANGUAGE", "en"),

		TranslationAPIURL:   getEnv("TRANSLATION_API_URL", ""),
		TranslationAPIKey:   getEnv("TRANSLATION_API_KEY", ""),
		TranslationCacheTTL: getEnvAsDuration("TRANSLATION_CACHE_TTL", 15*time.Minute),

		TariffAPIURL:   getEnv("TARIFF_API_URL", ""),
		TariffAPIKey:   getEnv("TARIFF_API_KEY", ""),
		TariffCacheTTL: getEnvAsDuration("TARIFF_CACHE_TTL", 30*time.Minute),

		WebhookJWTSecret:   webhookSecret,
		WebhookTokenExpiry: getEnvAsDuration("WEBHOOK_TOKEN_EXPIRY", 24*time.Hour),

		HTTPClientTimeout: getEnvAsDuration("HTTP_CLIENT_TIMEOUT", 20*time.Second),
	}

	if Cfg.TranslationAPIURL == "" {
		log.Println("WARNING: TRANSLATION_API_URL not set. Translation falls back to passing text through untranslated.")
	}
	if Cfg.TariffAPIURL == "" {
		log.Println("Info: TARIFF_API_URL not set. Tariff lookups use the built-in rate table.")
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, ProcessingLanguage=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.ProcessingLanguage)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Integer value for %s not set or empty, using default: %d", key, fallback)
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
