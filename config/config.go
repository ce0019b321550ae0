package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment-supplied settings for the service.
type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
}

// Load reads configuration from the environment. A .env file is honored when
// present. DATABASE_URL may legitimately be empty: the service then starts in
// a degraded mode where every store-backed operation reports unavailability.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getEnv("DATABASE_NAME", "food_delivery"),
		Port:         getEnv("PORT", "8000"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
