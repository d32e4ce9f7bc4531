package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/obaidAfridi75/Afridibot-repo/internal/config"
)

// Service wraps the Gemini generation API behind a single-prompt interface.
type Service struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewService creates a Gemini-backed AI service.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("gemini api key is missing")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Service{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// Generate runs a single-shot completion for the given prompt and returns the
// extracted text. The call is bounded by the configured timeout so a stuck
// upstream cannot hold a worker indefinitely.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.client.Models.GenerateContent(genCtx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := extractText(result)
	log.Printf("[ai] generated response, model=%s, length=%d", s.model, len(text))
	return text, nil
}

func extractText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 {
		return ""
	}

	var b strings.Builder
	candidate := result.Candidates[0]
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
