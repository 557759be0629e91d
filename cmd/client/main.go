// HealthBot - interactive CLI client.
//
// Sends each line to the server's /chat endpoint and prints the reply.
// If the server is unreachable, it falls back to a local assistant
// instance, so the CLI keeps working offline with identical behavior.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/triagelabs/healthbot/internal/assistant"
	"github.com/triagelabs/healthbot/internal/config"
	"github.com/triagelabs/healthbot/internal/llm"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
	AI    bool   `json:"ai"`
}

func main() {
	serverURL := flag.String("server", "http://127.0.0.1:8080", "base URL of the healthbot server")
	timeout := flag.Duration("timeout", 3*time.Second, "per-request server timeout")
	flag.Parse()

	// Keep the REPL quiet: only warnings from the local assistant reach
	// stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	local := newLocalAssistant(cfg)

	httpClient := &http.Client{Timeout: *timeout}
	chatURL := strings.TrimRight(*serverURL, "/") + "/chat"

	// Ctrl-C behaves like end of input: say goodbye instead of dying
	// mid-prompt.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Println("\nGoodbye")
		os.Exit(0)
	}()

	fmt.Println("Health assistant CLI. Type 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			fmt.Println("\nGoodbye")
			return
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if low := strings.ToLower(message); low == "exit" || low == "quit" {
			fmt.Println("Goodbye")
			return
		}

		// Try the server first.
		if reply, err := askServer(httpClient, chatURL, message); err == nil {
			fmt.Println("Bot:", reply)
			continue
		}
		fmt.Println("(Server not reachable, using local assistant)")

		res := local.Respond(context.Background(), message, nil)
		fmt.Println("Bot:", res.Reply)
	}
}

// newLocalAssistant builds the offline fallback engine from the same
// configuration the server reads.
func newLocalAssistant(cfg *config.Config) *assistant.Assistant {
	client, aiEnabled := llm.FromConfig(llm.Config{
		APIKey:    cfg.OpenAI.APIKey,
		Model:     cfg.OpenAI.Model,
		BaseURL:   cfg.OpenAI.BaseURL,
		MaxTokens: cfg.OpenAI.MaxTokens,
	})
	return assistant.New(assistant.Config{
		Name:           cfg.AssistantName,
		Client:         client,
		UseAIByDefault: aiEnabled,
		AITimeout:      cfg.OpenAI.Timeout,
	})
}

// askServer posts one message to the chat endpoint and returns the
// reply.
func askServer(client *http.Client, url, message string) (string, error) {
	body, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("post chat: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned %s", resp.Status)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode reply: %w", err)
	}
	return out.Reply, nil
}
