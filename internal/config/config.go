package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port                string
	GoogleAppCredsFile  string
	DefaultLanguageCode string
	LogLevel            string
	LogFormat           string
}

// Load reads configuration from the environment, preloading a .env file when
// one is present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:                getenv("PORT", "3000"),
		GoogleAppCredsFile:  os.Getenv("GOOGLE_APP_CREDS_FILE"),
		DefaultLanguageCode: getenv("DEFAULT_LANGUAGE_CODE", "ru"),
		LogLevel:            getenv("LOG_LEVEL", "info"),
		LogFormat:           getenv("LOG_FORMAT", "json"),
	}

	if cfg.GoogleAppCredsFile == "" {
		return Config{}, errors.New("GOOGLE_APP_CREDS_FILE is not set")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
