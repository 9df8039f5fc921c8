package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (optional; idempotent replay is disabled without it)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// OpenAI configuration
	OpenAIAPIKey    string
	OpenAIChatURL   string
	OpenAIImagesURL string

	// S3 configuration
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a new Config instance from the environment. In
// development a .env file in the working directory is loaded first; secrets
// may alternatively be supplied through *_FILE variables pointing at
// mounted secret files.
func LoadConfig() (*Config, error) {
	if IsDevelopment() {
		// Missing .env is fine; the environment may already be populated.
		_ = godotenv.Load()
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getSecret("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "recipegenie"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getSecret("REDIS_PASSWORD"),
		RedisURL:      getEnv("REDIS_URL", ""),

		OpenAIAPIKey:    getSecret("OPENAI_API_KEY"),
		OpenAIChatURL:   getEnv("OPENAI_CHAT_API_URL", "https://api.openai.com/v1/chat/completions"),
		OpenAIImagesURL: getEnv("OPENAI_IMAGES_API_URL", "https://api.openai.com/v1/images/generations"),

		S3Bucket:  getEnv("S3_BUCKET_NAME", "recipe-genie-images"),
		AWSRegion: getEnv("AWS_REGION", "us-east-1"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks the values without which the service cannot operate.
func validate(cfg *Config) error {
	var errs []string
	if cfg.OpenAIAPIKey == "" {
		errs = append(errs, "OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" {
		errs = append(errs, "DB_HOST and DB_PORT must be set")
	}
	if cfg.S3Bucket == "" {
		errs = append(errs, "S3_BUCKET_NAME must be set")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// getEnv returns the environment variable or a default value.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getSecret resolves a sensitive value either directly from the
// environment or from a file referenced by <KEY>_FILE.
func getSecret(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if path := os.Getenv(key + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return ""
}
