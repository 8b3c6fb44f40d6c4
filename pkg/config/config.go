package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Telegram Bot configuration
	BotToken string

	// Catalog configuration
	RecipesFile string
	RecipesDir  string

	// Matching configuration
	MatchThreshold float64

	// Storage configuration
	DataDir string

	// OpenAI configuration (optional; used for free-text ingredient parsing)
	OpenAIAPIBase string
	OpenAIAPIKey  string
	OpenAIModel   string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{}

	// Required configurations
	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable is required")
	}
	cfg.BotToken = botToken

	recipesFile := os.Getenv("RECIPES_FILE")
	if recipesFile == "" {
		return nil, fmt.Errorf("RECIPES_FILE environment variable is required")
	}
	cfg.RecipesFile = recipesFile

	// Optional configurations with defaults
	cfg.RecipesDir = getEnvWithDefault("RECIPES_DIR", filepath.Dir(recipesFile))
	cfg.DataDir = getEnvWithDefault("DATA_DIR", filepath.Join(".", "data"))

	threshold := getEnvWithDefault("MATCH_THRESHOLD", "0.72")
	cfg.MatchThreshold, err = strconv.ParseFloat(threshold, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MATCH_THRESHOLD %q: %w", threshold, err)
	}
	if cfg.MatchThreshold <= 0 || cfg.MatchThreshold > 1 {
		return nil, fmt.Errorf("MATCH_THRESHOLD must be in (0, 1], got %v", cfg.MatchThreshold)
	}

	// OpenAI is optional: without a key the bot still works, falling back
	// to comma/newline splitting when parsing ingredient messages.
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIAPIBase = getEnvWithDefault("OPENAI_API_BASE", "https://api.openai.com/v1")
	cfg.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")

	// Log configuration with sensitive data redacted
	logCfg := *cfg
	if len(logCfg.BotToken) > 8 {
		logCfg.BotToken = logCfg.BotToken[:8] + "...REDACTED..."
	}
	if len(logCfg.OpenAIAPIKey) > 8 {
		logCfg.OpenAIAPIKey = logCfg.OpenAIAPIKey[:8] + "...REDACTED..."
	}
	log.Printf("Configuration loaded: %+v", logCfg)
	return cfg, nil
}

// getEnvWithDefault returns the value of the environment variable or the default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
