package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	Env               string
	DBPath            string
	LogLevel          string
	CORSOrigins       string
	SessionTTL        time.Duration
	SessionCookieName string
	DebugSQL          bool
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	ttlMinutes, err := strconv.Atoi(GetEnv("SESSION_TTL_MINUTES", "10"))
	if err != nil || ttlMinutes <= 0 {
		log.Fatal("SESSION_TTL_MINUTES must be a positive integer")
	}

	AppConfig = &Config{
		Port:              GetEnv("PORT", "3000"),
		Env:               GetEnv("ENV", "development"),
		DBPath:            GetEnv("DB_PATH", "./data/meow-notes.db"),
		LogLevel:          GetEnv("LOG_LEVEL", "info"),
		CORSOrigins:       GetEnv("CORS_ORIGINS", "*"),
		SessionTTL:        time.Duration(ttlMinutes) * time.Minute,
		SessionCookieName: GetEnv("SESSION_COOKIE_NAME", "MeowNotes"),
		DebugSQL:          GetEnv("DEBUG_SQL", "false") == "true",
	}
}

// Defaults returns the configuration used when no environment is set.
// Tests install it directly instead of calling Load.
func Defaults() *Config {
	return &Config{
		Port:              "3000",
		Env:               "test",
		DBPath:            "./data/meow-notes.db",
		LogLevel:          "info",
		CORSOrigins:       "*",
		SessionTTL:        10 * time.Minute,
		SessionCookieName: "MeowNotes",
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
