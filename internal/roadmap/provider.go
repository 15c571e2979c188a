package roadmap

import (
	"context"
	"fmt"

	"github.com/bilgisen/nexus/internal/config"
)

// NewProvider builds the provider selected by cfg. It returns
// ErrConfigurationMissing when no credential is configured.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	if cfg.AIApiKey == "" {
		return nil, ErrConfigurationMissing
	}

	switch cfg.AIProvider {
	case config.ProviderGenAI:
		p, err := NewGenAIClient(ctx, cfg.AIApiKey, cfg.AIModel, cfg.AIBaseURL)
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.ProviderREST, "":
		p, err := NewGeminiClient(cfg.AIApiKey, cfg.AIModel, cfg.AIBaseURL)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
	}
}
