package llm

import (
	"context"
	"fmt"
	"net/url"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"
	// DefaultMaxTokens bounds the length of generated replies.
	DefaultMaxTokens = 350

	// replyTemperature keeps triage replies conservative and repeatable.
	replyTemperature = 0.2
)

// Config holds settings for the OpenAI-backed client.
type Config struct {
	APIKey    string
	Model     string
	BaseURL   string // optional custom endpoint, e.g. a proxy
	MaxTokens int
}

// OpenAIClient generates replies via the OpenAI chat completion API.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIClient constructs an OpenAI-backed client. It validates the
// configuration but performs no network call; authentication problems
// surface on the first GenerateReply.
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
			return nil, fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
		}
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &OpenAIClient{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Model returns the configured model identity.
func (c *OpenAIClient) Model() string {
	return c.model
}

// GenerateReply sends the system directive and user message to the chat
// completion API and returns the assistant's reply. An empty choice list
// yields an empty reply with a nil error.
func (c *OpenAIClient) GenerateReply(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   c.maxTokens,
		Temperature: replyTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
