package controllers_fx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripagent/internal/api"
	"tripagent/internal/api/controllers"
	"tripagent/internal/config"
	"tripagent/pkg/metrics"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(provideRouter))

func provideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.PlannerMetrics,
	planController *controllers.PlanController,
	catalogController *controllers.CatalogController,
) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	return api.NewRouter(logger.Named("http"), m, planController, catalogController)
}
