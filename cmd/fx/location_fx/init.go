package location_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"pathwise/internal/services"
	"pathwise/pkg/config"
	"pathwise/pkg/metrics"
)

var Module = fx.Provide(provideLocationService)

func provideLocationService(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) services.LocationServiceInterface {
	return services.NewIPLocationService(cfg.Location.LookupURL, cfg.Location.Timeout, logger, m)
}
