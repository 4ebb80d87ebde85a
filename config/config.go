package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_DRIVER   string
	DB_URL      string
	CORS_ORIGIN string
	APP_ENV     string

	// Calendar days ("today") are taken in this location.
	APP_LOCATION *time.Location

	IMPORT_DEFAULT_PLAN_KEYWORD string

	CACHE_HOST      string
	CACHE_PORT      string
	CACHE_PASSWORD  string
	STATS_CACHE_TTL time.Duration
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_DRIVER = getEnv("DB_DRIVER", "postgres")
	DB_URL = mustEnv("DB_URL")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")
	APP_ENV = getEnv("APP_ENV", "production")

	APP_LOCATION = time.Local
	if tz := getEnv("APP_TIMEZONE", ""); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Fatalf("Invalid APP_TIMEZONE %q: %v", tz, err)
		}
		APP_LOCATION = loc
	}

	IMPORT_DEFAULT_PLAN_KEYWORD = getEnv("IMPORT_DEFAULT_PLAN_KEYWORD", "mensual")

	CACHE_HOST = getEnv("CACHE_HOST", "")
	CACHE_PORT = getEnv("CACHE_PORT", "6379")
	CACHE_PASSWORD = getEnv("CACHE_PASSWORD", "")
	STATS_CACHE_TTL = getDuration("STATS_CACHE_TTL", 60*time.Second)
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
