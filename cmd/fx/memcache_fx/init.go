package memcache_fx

import (
	"go.uber.org/fx"

	"tripagent/internal/config"
	mem "tripagent/pkg/memcache"
)

var Module = fx.Provide(providePlanHistory)

func providePlanHistory(cfg *config.Config) mem.PlanHistoryStore {
	return mem.NewPlanHistory(cfg.History.TTL, cfg.History.MaxEntries)
}
