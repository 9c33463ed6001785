// Package gemini provides a client for Google's Gemini API.
// Uses the OpenAI-compatible endpoint for chat completions.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// OpenAI-compatible endpoint
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/openai"

	// Available models
	ModelGeminiFlash = "gemini-2.5-flash"
	ModelGeminiPro   = "gemini-2.5-pro"
)

// ErrToolCallReply is returned when the model answers with a structured tool
// call instead of free text. Such replies must never be persisted as content.
var ErrToolCallReply = errors.New("gemini: model returned a tool call instead of text")

// Client wraps the OpenAI SDK configured for the Gemini endpoint.
type Client struct {
	client *openai.Client
	model  string
}

// Config holds the configuration for the Gemini client.
type Config struct {
	APIKey   string
	Endpoint string
	Model    string
}

// NewClient creates a new Gemini client.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = ModelGeminiFlash
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.Endpoint

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}
}

// Generate sends a single user message and returns the first candidate's text.
// No streaming, no multi-turn context.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	log.Debug().
		Str("model", c.model).
		Int("prompt_len", len(prompt)).
		Msg("Sending generation request to Gemini")

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("gemini: no candidates in response")
	}

	choice := resp.Choices[0]
	if len(choice.Message.ToolCalls) > 0 || choice.Message.FunctionCall != nil {
		return "", ErrToolCallReply
	}

	return choice.Message.Content, nil
}
