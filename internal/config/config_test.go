package config

import (
	"os"
	"testing"
	"time"
)

// unsetenv clears key for the duration of the test. t.Setenv registers
// the restore; the value itself must be absent, not empty.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "FRONTEND_URL", "ASSISTANT_NAME",
		"HISTORY_BACKEND", "HISTORY_PATH", "DB_PATH",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"OPENAI_MAX_TOKENS", "OPENAI_TIMEOUT",
	} {
		unsetenv(t, key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.AssistantName != "HealthBot" {
		t.Errorf("AssistantName = %q, want HealthBot", cfg.AssistantName)
	}
	if cfg.HistoryBackend != BackendJSON {
		t.Errorf("HistoryBackend = %q, want %q", cfg.HistoryBackend, BackendJSON)
	}
	if cfg.HistoryPath != "./data/chat_history.json" {
		t.Errorf("HistoryPath = %q", cfg.HistoryPath)
	}
	if cfg.OpenAI.APIKey != "" {
		t.Errorf("OpenAI.APIKey = %q, want empty", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Timeout != 10*time.Second {
		t.Errorf("OpenAI.Timeout = %v, want 10s", cfg.OpenAI.Timeout)
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false with no FRONTEND_URL, want true")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ASSISTANT_NAME", "TriageBot")
	t.Setenv("HISTORY_BACKEND", "SQLite")
	t.Setenv("DB_PATH", "/tmp/triage.db")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_MAX_TOKENS", "200")
	t.Setenv("OPENAI_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.AssistantName != "TriageBot" {
		t.Errorf("AssistantName = %q, want TriageBot", cfg.AssistantName)
	}
	if cfg.HistoryBackend != BackendSQLite {
		t.Errorf("HistoryBackend = %q, want %q (case-normalized)", cfg.HistoryBackend, BackendSQLite)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("OpenAI.Model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.MaxTokens != 200 {
		t.Errorf("OpenAI.MaxTokens = %d, want 200", cfg.OpenAI.MaxTokens)
	}
	if cfg.OpenAI.Timeout != 30*time.Second {
		t.Errorf("OpenAI.Timeout = %v, want 30s", cfg.OpenAI.Timeout)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HISTORY_BACKEND", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted an unknown HISTORY_BACKEND")
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("OPENAI_MAX_TOKENS", "lots")
	t.Setenv("OPENAI_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpenAI.MaxTokens != 0 {
		t.Errorf("MaxTokens = %d, want fallback 0", cfg.OpenAI.MaxTokens)
	}
	if cfg.OpenAI.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want fallback 10s", cfg.OpenAI.Timeout)
	}
}

func TestValidateRequiresAssistantName(t *testing.T) {
	cfg := &Config{
		Port:           "8080",
		AssistantName:  "HealthBot",
		HistoryBackend: BackendJSON,
		HistoryPath:    "x.json",
		OpenAI:         OpenAIConfig{Timeout: time.Second},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed on a complete config: %v", err)
	}

	cfg.AssistantName = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted an empty ASSISTANT_NAME")
	}
}
