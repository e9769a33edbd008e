package planner_fx

import (
	"go.uber.org/fx"

	"tripagent/internal/services"
	"tripagent/pkg/metrics"
)

var Module = fx.Provide(
	metrics.New,
	services.NewPlannerService,
	services.NewPlanService,
)
