// Package config provides configuration management for PolyPulse.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	// Gemini settings
	GeminiAPIKey   string
	GeminiEndpoint string
	GeminiModel    string

	// MongoDB settings
	MongoURI string
	MongoDB  string

	// Run settings
	EventLimit  int
	SearchQuery string
	SearchSort  string
	RunTimeout  time.Duration

	// Optional fixed reference date (YYYY-MM-DD). When empty, the run
	// uses the wall-clock date captured once at startup.
	ArticleDate string

	// Server settings
	HTTPAddr string
	Debug    bool
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Try to load .env file
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{
		// Gemini
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiEndpoint: getEnv("GEMINI_ENDPOINT", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		// MongoDB
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "polypulse"),

		// Run
		EventLimit:  getEnvInt("EVENT_LIMIT", 25),
		SearchQuery: getEnv("SEARCH_QUERY", ""),
		SearchSort:  getEnv("SEARCH_SORT", "volume24hr"),
		RunTimeout:  getEnvDuration("RUN_TIMEOUT", 10*time.Minute),
		ArticleDate: getEnv("ARTICLE_DATE", ""),

		// Server
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Debug:    getEnvBool("DEBUG", false),
	}

	return cfg, nil
}

// Validate checks if required configuration is present.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.ArticleDate != "" {
		if _, err := time.Parse("2006-01-02", c.ArticleDate); err != nil {
			return fmt.Errorf("ARTICLE_DATE must be YYYY-MM-DD: %w", err)
		}
	}
	return nil
}

// ReferenceDate returns the fixed date for this run: the configured override
// when present, otherwise now. The caller captures it once so every prompt of
// the run renders the same date.
func (c *Config) ReferenceDate(now time.Time) time.Time {
	if c.ArticleDate == "" {
		return now
	}
	d, err := time.Parse("2006-01-02", c.ArticleDate)
	if err != nil {
		return now
	}
	return d
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
