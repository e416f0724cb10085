package trip_fx

import (
	"go.uber.org/fx"

	"pathwise/internal/services"
)

var Module = fx.Provide(services.NewTripService)
