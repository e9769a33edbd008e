package catalog_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripagent/internal/catalog"
	"tripagent/internal/config"
)

var Module = fx.Provide(provideCatalog)

func provideCatalog(cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	c, err := catalog.LoadFromFile(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded",
		zap.String("path", cfg.Catalog.Path),
		zap.Strings("destinations", c.CityNames()))
	return c, nil
}
