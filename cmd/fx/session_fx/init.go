package session_fx

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"pathwise/internal/infra"
	"pathwise/internal/repositories"
	"pathwise/pkg/config"
	"pathwise/pkg/utils"
)

const sweepInterval = 10 * time.Minute

var Module = fx.Options(
	fx.Provide(
		ProvideSessionStore,
		ProvideSessionTokens,
	),
	fx.Invoke(startSweeper),
)

// ProvideSessionStore returns the store selected by SESSION_STORE.
func ProvideSessionStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (repositories.TripSessionRepositoryInterface, error) {
	if cfg.Session.Store != "postgres" {
		logger.Info("Using in-memory session store", zap.Duration("ttl", cfg.Session.TTL))
		return repositories.NewMemoryTripSessionRepository(cfg.Session.TTL, sweepInterval), nil
	}

	db, err := infra.InitPostgresql(cfg.Session.PostgresURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return repositories.NewTripSessionRepository(db, cfg.Session.TTL), nil
}

func ProvideSessionTokens(cfg *config.Config, logger *zap.Logger) (*utils.SessionTokens, error) {
	secret := cfg.Session.Secret
	if secret == "" {
		logger.Warn("SESSION_SECRET is not set, sessions will not survive a restart")
		secret = uuid.NewString() + uuid.NewString()
	}
	return utils.NewSessionTokens(secret, cfg.Session.TTL)
}

// startSweeper purges expired sessions until the app stops.
func startSweeper(lc fx.Lifecycle, store repositories.TripSessionRepositoryInterface, logger *zap.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						n, err := store.DeleteExpired(ctx)
						if err != nil {
							logger.Warn("expired session sweep failed", zap.Error(err))
							continue
						}
						if n > 0 {
							logger.Debug("expired sessions removed", zap.Int64("count", n))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}
