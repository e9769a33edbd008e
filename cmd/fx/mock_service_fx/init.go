package mock_service_fx

import (
	"go.uber.org/fx"

	"tripagent/internal/services"
	"tripagent/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		provideClock,
		services.NewFlightService,
		services.NewHotelService,
		services.NewBookingService,
		services.NewHotelSelector,
	),
)

func provideClock() utils.Clock {
	return utils.SystemClock
}
