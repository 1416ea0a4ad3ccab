package cache

import (
	"log/slog"

	"editorradar/config"
	"editorradar/internal/domain/constants"
	"editorradar/internal/domain/repository"
	"editorradar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the session store and query guard, injected by Fx
type StoreParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Client *redis.Client `optional:"true"`
}

// NewSessionRepository selects the discovery session store from configuration
func NewSessionRepository(params StoreParams) (repository.SessionRepository, error) {
	session := params.Config.Discovery.WithDefaults().Session

	switch session.Store {
	case "", constants.SessionStoreMemory:
		params.Logger.Info("Using in-memory discovery session store", slog.Duration("ttl", session.TTL))

		return NewMemorySessionRepository(session.TTL), nil

	case constants.SessionStoreRedis:
		if params.Client == nil {
			return nil, errors.New("redis session store requires redis.enabled")
		}
		params.Logger.Info("Using Redis discovery session store", slog.Duration("ttl", session.TTL))

		return NewRedisSessionRepository(params.Client, session.TTL), nil

	default:
		return nil, errors.Errorf("unknown session store: %s", session.Store)
	}
}

// NewQueryGuard creates the distinct-center guard, or a no-op guard when disabled
func NewQueryGuard(params StoreParams) (service.QueryGuard, error) {
	cfg := params.Config.QueryGuard
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Query guard disabled")

		return NewNoopQueryGuard(), nil
	}
	if params.Client == nil {
		return nil, errors.New("query guard requires redis.enabled")
	}

	params.Logger.Info("Using Redis query guard",
		slog.Int("max_distinct_centers", cfg.MaxDistinctCenters),
		slog.Duration("window", cfg.Window),
	)

	return NewRedisQueryGuard(params.Client, cfg.MaxDistinctCenters, cfg.Window, cfg.GeohashPrecision), nil
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRedisClient,
		NewSessionRepository,
		NewQueryGuard,
	),
)
