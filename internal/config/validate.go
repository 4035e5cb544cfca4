package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Reading.validate(); err != nil {
		return fmt.Errorf("reading: %w", err)
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if err := c.CardArt.validate(); err != nil {
		return fmt.Errorf("card_art: %w", err)
	}

	if c.RateLimit.ReadingsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.readings_per_minute must be > 0 (got %d)", c.RateLimit.ReadingsPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (r *ReadingConfig) validate() error {
	if strings.TrimSpace(r.DefaultStyle) == "" {
		return fmt.Errorf("default_style must not be empty")
	}
	if r.MaxQuestionLen <= 0 {
		return fmt.Errorf("max_question_len must be > 0 (got %d)", r.MaxQuestionLen)
	}
	if r.MaxNoteLen <= 0 {
		return fmt.Errorf("max_note_len must be > 0 (got %d)", r.MaxNoteLen)
	}
	if r.DefaultPage <= 0 || r.MaxPage < r.DefaultPage {
		return fmt.Errorf("page sizes must satisfy 0 < default_page <= max_page (got %d, %d)", r.DefaultPage, r.MaxPage)
	}
	return nil
}

func (g *GenerationConfig) validate() error {
	if !g.Enabled() {
		return nil
	}
	if g.Model == "" {
		return fmt.Errorf("model is required when api_key is set")
	}
	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", g.MaxTokens)
	}
	if g.Timeout <= 0 || g.Timeout > 5*time.Minute {
		return fmt.Errorf("timeout must be in (0, 5m] (got %v)", g.Timeout)
	}
	return nil
}

func (a *CardArtConfig) validate() error {
	if !a.UsesBucket() {
		return nil
	}
	if (a.AccessKeyID == "") != (a.SecretAccessKey == "") {
		return fmt.Errorf("access_key_id and secret_access_key must be set together")
	}
	if a.PresignTTL < time.Minute || a.PresignTTL > 7*24*time.Hour {
		return fmt.Errorf("presign_ttl must be between 1m and 168h (got %v)", a.PresignTTL)
	}
	return nil
}
