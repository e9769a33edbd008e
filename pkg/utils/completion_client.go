package utils

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderDeepSeek = "deepseek"
	ProviderOpenAI   = "openai"
	ProviderOllama   = "ollama"
	ProviderGemini   = "gemini"
	ProviderNone     = "none"
)

// CompletionClientInterface is a text-generation backend.
type CompletionClientInterface interface {
	// GenerateText sends a single prompt and returns the raw model text.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// ListModels names the models the endpoint serves.
	ListModels(ctx context.Context) ([]string, error)
	Close() error
}

// CompletionConfig selects and configures a backend.
type CompletionConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
}

// NewCompletionClient builds the backend for cfg.Provider. ProviderNone yields
// ErrProviderDisabled so callers can fall back to rule-based extraction.
func NewCompletionClient(ctx context.Context, cfg CompletionConfig) (CompletionClientInterface, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderDeepSeek, ProviderOpenAI, ProviderOllama:
		return NewOpenAICompletionClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature), nil
	case ProviderGemini:
		return NewGeminiCompletionClient(ctx, cfg.APIKey, cfg.Model, cfg.Temperature)
	case ProviderNone, "":
		return nil, ErrProviderDisabled
	default:
		return nil, fmt.Errorf("unsupported provider: %s. Use 'deepseek', 'openai', 'ollama', 'gemini' or 'none'", cfg.Provider)
	}
}
