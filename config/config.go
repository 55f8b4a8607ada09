package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host           string
	Port           string
	Env            string
	DBPath         string
	PrefsBackend   string
	PrefsPath      string
	RedisURL       string
	LogLevel       string
	LogFile        string
	SessionTTL     time.Duration
	SessionCleanup time.Duration
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		// Loopback by default: the process is a single user's notebook
		Host:           GetEnv("HOST", "127.0.0.1"),
		Port:           GetEnv("PORT", "3000"),
		Env:            GetEnv("ENV", "development"),
		DBPath:         GetEnv("DB_PATH", "./data/notes.db"),
		PrefsBackend:   GetEnv("PREFS_BACKEND", "sqlite"),
		PrefsPath:      GetEnv("PREFS_PATH", "./data/preferences.db"),
		RedisURL:       GetEnv("REDIS_URL", "redis://localhost:6379/0"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		LogFile:        GetEnv("LOG_FILE", ""),
		SessionTTL:     GetDuration("EDITOR_SESSION_TTL", 12*time.Hour),
		SessionCleanup: GetDuration("EDITOR_SESSION_CLEANUP", 10*time.Minute),
	}

	if AppConfig.PrefsBackend != "sqlite" && AppConfig.PrefsBackend != "redis" {
		log.Fatalf("PREFS_BACKEND must be sqlite or redis, got %q", AppConfig.PrefsBackend)
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetDuration parses a Go duration string such as "30m", falling back to
// defaultValue when unset or malformed.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
