package main

import (
	"context"
	"log/slog"
	"os"

	"editorradar/config"
	"editorradar/internal/delivery"
	"editorradar/internal/delivery/api"
	"editorradar/internal/delivery/api/middleware"
	"editorradar/internal/delivery/api/router/handler"
	"editorradar/internal/domain/entity"
	"editorradar/internal/domain/obfuscation"
	"editorradar/internal/domain/ranking"
	"editorradar/internal/domain/visibility"
	"editorradar/internal/infra/auth"
	"editorradar/internal/infra/cache"
	"editorradar/internal/infra/geocoder"
	logs "editorradar/internal/infra/log"
	"editorradar/internal/infra/persistence/postgres"
	"editorradar/internal/infra/pubsub"
	"editorradar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		cache.Module,
		pubsub.Module,
		geocoder.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewEditorLocationRepository,
			postgres.NewConsentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newRanker,
		),
	)
}

// newRanker builds the ranker from the discovery configuration
func newRanker(cfg *config.Config) *ranking.Ranker {
	discovery := cfg.Discovery.WithDefaults()

	policy := visibility.NewPolicy(visibility.Caps{
		entity.VisibilityCity:    discovery.Granularity.CityKm,
		entity.VisibilityRegion:  discovery.Granularity.RegionKm,
		entity.VisibilityCountry: discovery.Granularity.CountryKm,
	})

	return ranking.NewRanker(policy, obfuscation.NewEngine(), ranking.Options{
		MinRadiusKm:  discovery.Radius.MinKm,
		MaxRadiusKm:  discovery.Radius.MaxKm,
		DefaultLimit: discovery.Limit.Default,
		MaxLimit:     discovery.Limit.Max,
	})
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewLocationService,
			impl.NewDiscoveryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDiscoveryHandler,
			handler.NewSessionHandler,
			handler.NewLocationHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
