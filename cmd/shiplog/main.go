package main

import (
	"context"
	"log/slog"
	"os"

	"shiplog/config"
	"shiplog/internal/delivery"
	"shiplog/internal/delivery/api"
	apihandler "shiplog/internal/delivery/api/router/handler"
	"shiplog/internal/delivery/http"
	"shiplog/internal/delivery/http/router/handler"
	"shiplog/internal/delivery/scheduler"
	logs "shiplog/internal/infra/log"
	"shiplog/internal/infra/persistence/postgres"
	"shiplog/internal/infra/persistence/redisqueue"
	"shiplog/internal/infra/pubsub"
	"shiplog/internal/infra/recorder"
	"shiplog/internal/usecase/impl"

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
		injectDelivery(),
		injectHandler(),
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
		redisqueue.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewLogEntryRepository,
			redisqueue.NewOfflineQueueRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			recorder.NewRecorderClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLogbookService,
			impl.NewTrackingService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLogbookHandler,
			handler.NewTrackingHandler,
			apihandler.NewIngestHandler,
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
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
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
