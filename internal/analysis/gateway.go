// Package analysis delegates clinical-note analysis to a hosted language model.
// Analyze never fails: any error degrades to FallbackMessage.
package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

const (
	FallbackMessage      = "Error connecting to AI service. Please ensure your environment is configured correctly."
	EmptyResponseMessage = "No analysis could be generated."
)

// Analyzer turns symptoms, history and vitals into a free-text assessment
type Analyzer interface {
	Analyze(ctx context.Context, symptoms, history, vitals string) string
}

// Gateway is the Analyzer backed by a Generator
type Gateway struct {
	generator Generator
	timeout   time.Duration
	cache     *lru.Cache[string, string]
	logger    zerolog.Logger
}

type GatewayOption func(*Gateway)

// WithTimeout bounds each model call; zero means the caller's context alone applies
func WithTimeout(d time.Duration) GatewayOption {
	return func(g *Gateway) { g.timeout = d }
}

// WithCache keeps up to size successful replies keyed by prompt
func WithCache(size int) GatewayOption {
	return func(g *Gateway) {
		if size <= 0 {
			return
		}
		cache, err := lru.New[string, string](size)
		if err != nil {
			g.logger.Error().Err(err).Int("size", size).Msg("analysis cache disabled")
			return
		}
		g.cache = cache
	}
}

func WithLogger(logger zerolog.Logger) GatewayOption {
	return func(g *Gateway) { g.logger = logger }
}

// NewGateway builds a gateway. A nil generator yields a gateway that always
// answers with FallbackMessage.
func NewGateway(generator Generator, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		generator: generator,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With().Str("component", "analysis").Logger()
	return g
}

func (g *Gateway) Analyze(ctx context.Context, symptoms, history, vitals string) string {
	if g.generator == nil {
		g.logger.Warn().Msg("no model configured")
		return FallbackMessage
	}

	prompt := BuildPrompt(symptoms, history, vitals)
	key := promptKey(prompt)
	if g.cache != nil {
		if text, ok := g.cache.Get(key); ok {
			g.logger.Debug().Str("key", key).Msg("analysis cache hit")
			return text
		}
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := g.generator.Generate(ctx, prompt)
	if err != nil {
		g.logger.Error().Err(err).Dur("latency", time.Since(start)).Msg("analysis request failed")
		return FallbackMessage
	}
	if strings.TrimSpace(text) == "" {
		return EmptyResponseMessage
	}

	g.logger.Info().Dur("latency", time.Since(start)).Int("chars", len(text)).Msg("analysis completed")
	if g.cache != nil {
		g.cache.Add(key, text)
	}
	return text
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
