// Package ai wraps the Anthropic Messages API behind a small answer-provider
// surface.
package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/rootsai/rootschat/internal/config"
)

// Service answers questions through the configured Anthropic model.
type Service struct {
	client *anthropic.Client
	cfg    config.AIConfig
}

// NewService creates the provider from configuration.
func NewService(cfg config.AIConfig) (*Service, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return &Service{client: &client, cfg: cfg}, nil
}

// Answer sends one system-framed user turn and returns the model's text.
func (s *Service) Answer(ctx context.Context, system, prompt string) (string, error) {
	resp, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(s.cfg.Model),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: anthropic.Float(s.cfg.Temperature),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}

	answer := sb.String()
	if answer == "" {
		return "", fmt.Errorf("anthropic response contained no text")
	}

	log.Printf("[ai] model=%s answered, length=%d", s.cfg.Model, len(answer))
	return answer, nil
}
