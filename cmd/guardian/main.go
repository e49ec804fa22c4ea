package main

import (
	"context"
	"log/slog"
	"os"

	"guardian/config"
	"guardian/internal/delivery"
	"guardian/internal/delivery/http"
	"guardian/internal/delivery/http/middleware"
	"guardian/internal/delivery/http/router/handler"
	"guardian/internal/delivery/sweeper"
	"guardian/internal/domain/service"
	logs "guardian/internal/infra/log"
	"guardian/internal/infra/notification"
	"guardian/internal/infra/persistence/postgres"
	"guardian/internal/infra/scorer"
	"guardian/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewGeofenceRepository,
			postgres.NewHistoryRepository,
			postgres.NewContactRepository,
			postgres.NewAlertRepository,
			postgres.NewSampleRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewEmailSender,
			notification.NewSMSSender,
			newAnomalyScorer,
		),
	)
}

// newAnomalyScorer creates the classifier client with dependency injection
func newAnomalyScorer(cfg *config.Config) service.AnomalyScorer {
	if cfg.Scorer == nil {
		// Without a configured classifier every sample falls back to the
		// default verdict inside the anomaly service.
		return scorer.NewUnavailableScorer()
	}

	return scorer.NewHTTPScorer(cfg.Scorer)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAlertDispatcher,
			impl.NewGeofenceService,
			impl.NewSafetyService,
			impl.NewAlertService,
			impl.NewContactService,
			impl.NewAnomalyService,
			impl.NewSweeperService,
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
			handler.NewGeofenceHandler,
			handler.NewSafetyHandler,
			handler.NewAlertHandler,
			handler.NewContactHandler,
			handler.NewMLHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				sweeper.New,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
