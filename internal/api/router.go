package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tripagent/internal/api/controllers"
	"tripagent/pkg/metrics"
	"tripagent/pkg/middleware"
)

func NewRouter(
	logger *zap.Logger,
	m *metrics.PlannerMetrics,
	planController *controllers.PlanController,
	catalogController *controllers.CatalogController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, m, planController, catalogController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	m *metrics.PlannerMetrics,
	planController *controllers.PlanController,
	catalogController *controllers.CatalogController) {

	r.GET("/healthz", catalogController.HealthHandler)
	if m != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})))
	}

	apiGroup := r.Group("/api")

	plansGroup := apiGroup.Group("/plans")
	plansGroup.POST("", planController.CreatePlanHandler)
	plansGroup.GET("", planController.ListPlansHandler)
	plansGroup.GET("/:id", planController.GetPlanHandler)

	apiGroup.GET("/destinations", catalogController.ListDestinationsHandler)
	apiGroup.GET("/templates", catalogController.ListTemplatesHandler)
}
