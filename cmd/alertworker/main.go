package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dealdrop/config"
	"dealdrop/internal/delivery"
	"dealdrop/internal/delivery/worker"
	"dealdrop/internal/delivery/worker/handler"
	"dealdrop/internal/domain/repository"
	"dealdrop/internal/domain/service"
	logs "dealdrop/internal/infra/log"
	"dealdrop/internal/infra/notification"
	"dealdrop/internal/infra/persistence/postgres"
	"dealdrop/internal/usecase"
	"dealdrop/internal/usecase/impl"

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
			postgres.NewFavoriteRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFirebaseService,
		),
	)
}

// newFirebaseService creates the Firebase service the worker pushes through.
// Unlike the API server, the worker cannot run without it.
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required for the alert worker")
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newAlertUsecase,
		),
	)
}

func newAlertUsecase(
	cfg *config.Config,
	favoriteRepo repository.FavoriteRepository,
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.AlertUsecase {
	alertCfg := impl.AlertConfig{
		RadiusMiles:    cfg.Alerts.DefaultAlertRadiusMiles,
		NotifyCooldown: time.Duration(cfg.Alerts.NotifyCooldownMinutes) * time.Minute,
		ReminderLead:   time.Duration(cfg.Alerts.ReminderLeadMinutes) * time.Minute,
	}

	return impl.NewAlertService(favoriteRepo, deviceRepo, notificationSvc, alertCfg, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
