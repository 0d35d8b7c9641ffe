package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries every environment-driven setting. Load reads a local .env
// first so development works without exporting anything.
type Config struct {
	Port        string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	RedisAddr string // empty means the in-memory cart store

	JWTSecret   string
	AdminAPIKey string

	WhatsAppNumber string // fixed order recipient
	UploadDir      string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getenv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBHost:         getenv("DB_HOST", "localhost"),
		DBPort:         getenv("DB_PORT", "5432"),
		DBUser:         getenv("DB_USER", "postgres"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getenv("DB_NAME", "mounifull"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		JWTSecret:      getenv("JWT_SECRET", "dev-secret"),
		AdminAPIKey:    os.Getenv("ADMIN_API_KEY"),
		WhatsAppNumber: getenv("WHATSAPP_NUMBER", "81796383"),
		UploadDir:      getenv("UPLOAD_DIR", "./uploads"),
	}
}

// DSN builds the postgres connection string when DATABASE_URL is not set.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
