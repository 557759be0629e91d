// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// History backend identifiers accepted by HISTORY_BACKEND.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Port           string
	FrontendURL    string
	AssistantName  string
	HistoryBackend string // "json" = flat file, "sqlite" = local database
	HistoryPath    string
	DBPath         string
	OpenAI         OpenAIConfig
}

// OpenAIConfig controls the optional AI reply generator. An empty
// APIKey disables AI replies entirely.
type OpenAIConfig struct {
	APIKey    string
	Model     string // empty selects the client default
	BaseURL   string
	MaxTokens int // zero selects the client default
	Timeout   time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		FrontendURL:    getEnv("FRONTEND_URL", ""),
		AssistantName:  getEnv("ASSISTANT_NAME", "HealthBot"),
		HistoryBackend: strings.ToLower(getEnv("HISTORY_BACKEND", BackendJSON)),
		HistoryPath:    getEnv("HISTORY_PATH", "./data/chat_history.json"),
		DBPath:         getEnv("DB_PATH", "./data/healthbot.db"),
		OpenAI: OpenAIConfig{
			APIKey:    getEnv("OPENAI_API_KEY", ""),
			Model:     getEnv("OPENAI_MODEL", ""),
			BaseURL:   getEnv("OPENAI_BASE_URL", ""),
			MaxTokens: getEnvInt("OPENAI_MAX_TOKENS", 0),
			Timeout:   getEnvDuration("OPENAI_TIMEOUT", 10*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.AssistantName == "" {
		return fmt.Errorf("ASSISTANT_NAME cannot be empty")
	}
	switch c.HistoryBackend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("HISTORY_BACKEND must be %q or %q, got %q", BackendJSON, BackendSQLite, c.HistoryBackend)
	}
	if c.HistoryBackend == BackendJSON && c.HistoryPath == "" {
		return fmt.Errorf("HISTORY_PATH cannot be empty")
	}
	if c.HistoryBackend == BackendSQLite && c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.OpenAI.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be > 0")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
