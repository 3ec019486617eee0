// Package common holds run configuration shared by the CLIs.
package common

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Gemini GeminiConfig
	Retry  RetryConfig
}

// GeminiConfig holds generative-model configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig parameterizes the field extractor's backoff.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// LoadConfig loads configuration from environment variables. Flags may
// override individual values afterwards.
func LoadConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
		},
		Retry: RetryConfig{
			MaxRetries: getEnvAsInt("MAX_RETRIES", 3),
			BaseDelay:  getEnvAsDuration("RETRY_BASE_DELAY", 3*time.Second),
		},
	}
}

// Validate reports configuration faults that must be fatal before any
// processing begins.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return errors.New("GEMINI_API_KEY is required")
	}
	if c.Retry.MaxRetries <= 0 {
		return errors.New("MAX_RETRIES must be positive")
	}
	if c.Retry.BaseDelay <= 0 {
		return errors.New("RETRY_BASE_DELAY must be positive")
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
