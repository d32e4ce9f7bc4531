// Package chat orchestrates the request pipeline: memory, intent detection,
// market data aggregation, reply composition, and model generation.
package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/obaidAfridi75/Afridibot-repo/internal/analysis/intent"
	"github.com/obaidAfridi75/Afridibot-repo/internal/metrics"
	chatModel "github.com/obaidAfridi75/Afridibot-repo/internal/model/chat"
	"github.com/obaidAfridi75/Afridibot-repo/internal/model/city"
	marketModel "github.com/obaidAfridi75/Afridibot-repo/internal/model/market"
	"github.com/obaidAfridi75/Afridibot-repo/internal/service/ai"
	"github.com/obaidAfridi75/Afridibot-repo/internal/service/market"
	"github.com/obaidAfridi75/Afridibot-repo/internal/service/memory"
	"github.com/obaidAfridi75/Afridibot-repo/internal/service/reply"
)

// MarketFetcher retrieves live market data. Both calls degrade internally and
// never return an error.
type MarketFetcher interface {
	SpotPrice(ctx context.Context) market.SpotResult
	ConversionRate(ctx context.Context) market.RateResult
}

// Generator produces model text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service runs the chat pipeline for one message at a time. All external
// calls are blocking and sequential.
type Service struct {
	store     memory.Store
	fetcher   MarketFetcher
	generator Generator
	metrics   *metrics.Metrics
}

// NewService wires the pipeline. generator may be nil when the model backend
// is not configured; replies then fall back to the composed text.
func NewService(store memory.Store, fetcher MarketFetcher, generator Generator, m *metrics.Metrics) *Service {
	return &Service{
		store:     store,
		fetcher:   fetcher,
		generator: generator,
		metrics:   m,
	}
}

// HandleMessage processes one user message end to end and returns the final
// reply. Upstream flakiness is absorbed into fallback values; only unexpected
// failures (session store errors) surface as errors.
func (s *Service) HandleMessage(ctx context.Context, sessionID, message string) (string, error) {
	s.metrics.ChatRequests.Inc()

	userTurn := chatModel.Turn{Role: chatModel.RoleUser, Content: message}
	if err := s.store.Append(ctx, sessionID, userTurn); err != nil {
		s.metrics.ChatFailures.Inc()
		return "", fmt.Errorf("failed to record user turn: %w", err)
	}

	// Market data is fetched only when the message looks like a price query.
	priceQuery := intent.PriceLookup(message)
	var quote *marketModel.Quote
	cityName := city.Default
	if priceQuery {
		spot := s.fetcher.SpotPrice(ctx)
		rate := s.fetcher.ConversionRate(ctx)
		if spot.Status == market.StatusOK {
			q := marketModel.NewQuote(spot.PriceUSD, rate.Rate)
			quote = &q
			cityName = city.Resolve(message)
		}
	}

	composed := reply.Compose(priceQuery, quote, cityName)

	recent, err := s.store.Recent(ctx, sessionID, memory.ContextWindowSize)
	if err != nil {
		s.metrics.ChatFailures.Inc()
		return "", fmt.Errorf("failed to load conversation window: %w", err)
	}

	prompt := ai.BuildPrompt(message, intent.PromptFraming(message), composed, memory.ContextWindow(recent))

	final := s.generate(ctx, sessionID, prompt, composed)

	botTurn := chatModel.Turn{Role: chatModel.RoleBot, Content: final}
	if err := s.store.Append(ctx, sessionID, botTurn); err != nil {
		s.metrics.ChatFailures.Inc()
		return "", fmt.Errorf("failed to record bot turn: %w", err)
	}

	return final, nil
}

// generate invokes the model and falls back to the composed reply on any
// failure or empty result. Gateway failure is never fatal to the response.
func (s *Service) generate(ctx context.Context, sessionID, prompt, composed string) string {
	if s.generator == nil {
		return composed
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[chat] model generation failed for session=%s, using composed reply: %v", sessionID, err)
		s.metrics.UpstreamFailures.WithLabelValues(metrics.SourceGemini).Inc()
		s.metrics.LLMFallbacks.Inc()
		return composed
	}
	if strings.TrimSpace(text) == "" {
		log.Printf("[chat] model returned empty text for session=%s, using composed reply", sessionID)
		s.metrics.LLMFallbacks.Inc()
		return composed
	}
	return text
}
