package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	LogLevel       string
	StaticDir      string
	AllowedOrigins string
}

// NewConfig loads configuration from environment variables,
// reading an optional .env file first
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "taskmanager"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		StaticDir:      getEnv("STATIC_DIR", "./web"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
