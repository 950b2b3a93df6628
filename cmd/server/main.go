package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kidulajumba254/invoice-management-system/internal/api"
	v1 "github.com/kidulajumba254/invoice-management-system/internal/api/v1"
	"github.com/kidulajumba254/invoice-management-system/internal/cache"
	"github.com/kidulajumba254/invoice-management-system/internal/config"
	"github.com/kidulajumba254/invoice-management-system/internal/logger"
	"github.com/kidulajumba254/invoice-management-system/internal/repository/inmemory"
	"github.com/kidulajumba254/invoice-management-system/internal/service"
	"github.com/kidulajumba254/invoice-management-system/internal/types"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.NewInMemoryCache,

			// Repositories
			inmemory.NewClientRepository,
			inmemory.NewInvoiceRepository,

			// Services
			service.NewServiceParams,
			service.NewInvoiceService,
			service.NewClientService,
			service.NewDashboardService,

			// Handlers
			v1.NewInvoiceHandler,
			v1.NewClientHandler,
			v1.NewDashboardHandler,
			api.NewHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func startServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			return nil
		},
	})
}
