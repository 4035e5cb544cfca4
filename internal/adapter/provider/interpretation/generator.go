package interpretation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/tarot-backend/internal/config"
	"github.com/heartmarshall/tarot-backend/internal/domain"
)

// Generator produces reading interpretations through the Anthropic Messages
// API. Failures are reported as domain.ErrGenerationUnavailable; there are
// no retries.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// NewGenerator creates a Generator from configuration.
func NewGenerator(cfg config.GenerationConfig, logger *slog.Logger) *Generator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Generator{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		log:       logger.With("adapter", "interpretation"),
	}
}

// Generate returns the interpretation text for req.
func (g *Generator) Generate(ctx context.Context, req domain.InterpretationRequest) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt(req.Style)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(req))),
		},
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		g.log.WarnContext(ctx, "generation failed",
			slog.String("reading_type", req.Type.String()),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationUnavailable, err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	out := strings.TrimSpace(text.String())
	if out == "" {
		return "", fmt.Errorf("%w: empty response", domain.ErrGenerationUnavailable)
	}

	g.log.DebugContext(ctx, "interpretation generated",
		slog.String("reading_type", req.Type.String()),
		slog.Int("chars", len(out)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}
