package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port                string
	DatabaseURL         string
	TransferThreshold   int64
	BaselineWindowDays  int
	WebhookURL          string
	LogLevel            string
	PrettyLogs          bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8000"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		TransferThreshold:  getEnvAsInt64("TRANSFER_THRESHOLD", 1_000_000),
		BaselineWindowDays: getEnvAsInt("BASELINE_WINDOW_DAYS", 10),
		WebhookURL:         getEnv("WEBHOOK_URL", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		PrettyLogs:         getEnvAsBool("PRETTY_LOGS", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.TransferThreshold <= 0 {
		return fmt.Errorf("TRANSFER_THRESHOLD must be positive")
	}
	if c.BaselineWindowDays <= 0 {
		return fmt.Errorf("BASELINE_WINDOW_DAYS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
