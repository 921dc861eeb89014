package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DBPath           string
	DefaultLanguage  string
	ReferralBaseURL  string
	GeminiAPIKey     string
	GeminiTextModel  string
	GeminiImageModel string
	TipCheckInterval time.Duration
	TipMinInterval   time.Duration
	LogLevel         string
}

// Load reads configuration from the environment, with an optional .env
// file for local development. Every setting has a working default
// except the AI key, whose absence only disables the AI endpoints.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:             getEnv("PORT", "8080"),
		DBPath:           getEnv("DB_PATH", filepath.Join("data", "refboard.db")),
		DefaultLanguage:  getEnv("DEFAULT_LANGUAGE", "en"),
		ReferralBaseURL:  getEnv("REFERRAL_BASE_URL", "https://realiste.ai"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiTextModel:  getEnv("GEMINI_MODEL", ""),
		GeminiImageModel: getEnv("GEMINI_IMAGE_MODEL", ""),
		TipCheckInterval: getEnvDuration("TIP_CHECK_INTERVAL", 5*time.Minute),
		TipMinInterval:   getEnvDuration("TIP_MIN_INTERVAL", 45*time.Second),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
