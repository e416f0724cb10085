package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"pathwise/pkg/config"
	"pathwise/pkg/metrics"
)

var Module = fx.Provide(
	config.Load,
	ProvideLogger,
	metrics.New,
)

// ProvideLogger builds a development logger unless gin runs in release mode.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.GinMode == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
