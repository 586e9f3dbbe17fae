package responder

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/hieudt/replyflock/pkg/config"
)

const openaiSystemPrompt = "You are a friendly social media user who replies in the language of the post."

// OpenAI is a chat-completion provider for OpenAI-compatible endpoints
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewOpenAI creates an OpenAI provider with the given account key
func NewOpenAI(apiKey string, cfg config.AIConfig) *OpenAI {
	clientConfig := openai.DefaultConfig(apiKey)
	if cfg.OpenAIEndpoint != "" {
		clientConfig.BaseURL = cfg.OpenAIEndpoint
	}

	return &OpenAI{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.OpenAIModel,
		temperature: float32(cfg.Temperature),
		maxTokens:   cfg.MaxTokens,
	}
}

// Name returns the provider identifier
func (p *OpenAI) Name() string { return "openai" }

// Complete issues a single chat completion request
func (p *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openaiSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}
