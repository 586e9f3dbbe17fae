package responder

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/hieudt/replyflock/pkg/config"
)

// Gemini is a generate-content provider for Google's Gemini models
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

// NewGemini creates a Gemini provider with the given account key
func NewGemini(ctx context.Context, apiKey string, cfg config.AIConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{
		client:      client,
		model:       cfg.GeminiModel,
		temperature: float32(cfg.Temperature),
		maxTokens:   int32(cfg.MaxTokens), //nolint:gosec // config values are small
	}, nil
}

// Name returns the provider identifier
func (p *Gemini) Name() string { return "gemini" }

// Complete issues a single generate-content request
func (p *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(p.temperature),
			MaxOutputTokens: p.maxTokens,
		})
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 ||
		result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from gemini")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
