package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	MediaRoot  string
	SessionTTL time.Duration

	OwnerEmail    string
	OwnerName     string
	OwnerPassword string
}

func Load() Config {

	// optional overlay; missing .env is not an error
	_ = godotenv.Load()

	cfg := Config{

		AppPort: getEnv("APP_PORT", "3000"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MediaRoot:  getEnv("MEDIA_ROOT", "public/uploads"),
		SessionTTL: getDuration("SESSION_TTL", 24*time.Hour),

		OwnerEmail:    os.Getenv("OWNER_EMAIL"),
		OwnerName:     os.Getenv("OWNER_NAME"),
		OwnerPassword: os.Getenv("OWNER_PASSWORD"),
	}

	return cfg

}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
