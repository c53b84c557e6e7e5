package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dealdrop/config"
	"dealdrop/internal/delivery"
	"dealdrop/internal/delivery/http"
	"dealdrop/internal/delivery/http/middleware"
	"dealdrop/internal/delivery/http/router/handler"
	"dealdrop/internal/domain/repository"
	"dealdrop/internal/domain/service"
	"dealdrop/internal/infra/auth"
	logs "dealdrop/internal/infra/log"
	"dealdrop/internal/infra/notification"
	"dealdrop/internal/infra/persistence/postgres"
	"dealdrop/internal/infra/pubsub"
	"dealdrop/internal/infra/qrcode"
	"dealdrop/internal/usecase"
	"dealdrop/internal/usecase/impl"

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
			startReminderLoop,
		),
	).Run()
}

// startReminderLoop drains due expiry reminders once a minute. Reminders are
// scheduled in-process when a flash deal is posted.
func startReminderLoop(lc fx.Lifecycle, alertUC usecase.AlertUsecase, logger *slog.Logger) {
	loopCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(time.Minute)
				defer ticker.Stop()

				for {
					select {
					case <-loopCtx.Done():
						return
					case now := <-ticker.C:
						if err := alertUC.DeliverDueReminders(loopCtx, now); err != nil {
							logger.Warn("Failed to deliver due reminders", slog.Any("error", err))
						}
					}
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()

			return nil
		},
	})
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
			postgres.NewListingRepository,
			postgres.NewFlashDealRepository,
			postgres.NewFavoriteRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newFirebaseService,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newListingUsecase,
			impl.NewFlashDealService,
			impl.NewFavoriteService,
			newAlertUsecase,
		),
	)
}

// newListingUsecase derives the location-update cooldown from config
func newListingUsecase(cfg *config.Config, listingRepo repository.ListingRepository) usecase.ListingUsecase {
	cooldown := time.Duration(cfg.RateLimit.LocationCooldownMinutes) * time.Minute

	return impl.NewListingService(listingRepo, cooldown)
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

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewListingHandler,
			handler.NewFlashDealHandler,
			handler.NewFavoriteHandler,
			handler.NewDeviceHandler,
			handler.NewTestHandler,
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
