// cmd/fx/prompt_fx/init.go
package prompt_fx

import (
	"context"
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripagent/internal/catalog"
	"tripagent/internal/config"
	"tripagent/internal/services"
	"tripagent/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideExtractorService)

// ProvideCompletionClient creates the text-generation client for semantic
// extraction. It returns a nil client when the provider is disabled or has no
// key, which leaves extraction to the rules.
func ProvideCompletionClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.CompletionClientInterface, error) {
	llm := cfg.LLM
	if !llm.Enabled() {
		if llm.Provider != utils.ProviderNone {
			logger.Warn("no API key for provider, extraction will use rules only", zap.String("provider", llm.Provider))
		}
		return nil, nil
	}

	logger.Info("initializing completion client",
		zap.String("provider", llm.Provider),
		zap.String("model", llm.Model),
		zap.Duration("timeout", llm.Timeout))

	client, err := utils.NewCompletionClient(context.Background(), llm.Completion())
	if errors.Is(err, utils.ErrProviderDisabled) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

// ProvideExtractorService creates the extractor with all dependencies
func ProvideExtractorService(
	client utils.CompletionClientInterface,
	c *catalog.Catalog,
	clock utils.Clock,
	cfg *config.Config,
	logger *zap.Logger,
) services.ExtractorServiceInterface {
	return services.NewExtractorService(client, c, clock, cfg.LLM.Timeout, logger)
}
