package aiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// ErrNotConfigured is returned when the API key for the selected provider
// is missing from the client configuration.
var ErrNotConfigured = errors.New("provider api key not configured")

// Message is one turn of a chat exchange in provider-neutral form.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply is the provider-neutral result of a chat completion.
type Reply struct {
	Content    string `json:"content"`
	Model      string `json:"model"`
	TokensUsed int    `json:"tokens_used,omitempty"`
}

// Config carries all provider credentials. It is built once at process
// start and injected; the client never reads the environment itself.
type Config struct {
	GeminiAPIKey    string
	AnthropicAPIKey string
	OpenAIAPIKey    string
	GroqAPIKey      string
}

// Client talks to the external AI providers over their HTTP APIs.
type Client struct {
	cfg  Config
	http *http.Client

	// Base URLs are variable so tests can point the client at a local server.
	geminiBaseURL    string
	anthropicBaseURL string
	openAIBaseURL    string
	groqBaseURL      string
}

// NewClient creates an AI client from an explicit configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		geminiBaseURL:    "https://generativelanguage.googleapis.com/v1beta",
		anthropicBaseURL: "https://api.anthropic.com/v1",
		openAIBaseURL:    "https://api.openai.com/v1",
		groqBaseURL:      "https://api.groq.com/openai/v1",
	}
}

// ResolveProvider maps a model id onto the provider that serves it, based
// on the model id naming conventions of the supported vendors.
func ResolveProvider(modelID string) string {
	switch {
	case strings.HasPrefix(modelID, "gemini"):
		return "gemini"
	case strings.HasPrefix(modelID, "claude"):
		return "anthropic"
	case strings.HasPrefix(modelID, "gpt"):
		return "openai"
	case strings.Contains(modelID, "llama"), strings.Contains(modelID, "mixtral"):
		return "groq"
	default:
		return "gemini"
	}
}

// Chat sends the messages to whichever provider owns the model id and
// returns the normalized reply. The system message, when present, is
// translated into each provider's native form.
func (c *Client) Chat(ctx context.Context, modelID string, messages []Message) (*Reply, error) {
	switch ResolveProvider(modelID) {
	case "anthropic":
		return c.chatAnthropic(ctx, modelID, messages)
	case "openai":
		return c.chatOpenAICompatible(ctx, c.openAIBaseURL, c.cfg.OpenAIAPIKey, modelID, messages)
	case "groq":
		return c.chatOpenAICompatible(ctx, c.groqBaseURL, c.cfg.GroqAPIKey, modelID, messages)
	default:
		if !strings.HasPrefix(modelID, "gemini") {
			modelID = "gemini-2.5-flash"
		}
		return c.chatGemini(ctx, modelID, messages)
	}
}

func splitSystemMessage(messages []Message) (string, []Message) {
	system := ""
	rest := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == "system" {
			system = m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}

func providerStatusError(provider string, status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	if len(msg) > 512 {
		msg = msg[:512]
	}
	return fmt.Errorf("%s request failed with status %d: %s", provider, status, msg)
}
