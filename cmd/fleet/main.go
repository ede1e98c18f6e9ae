package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pressly/goose/v3"

	"github.com/fleetops/fleetops/internal/pkg/config"
	"github.com/fleetops/fleetops/internal/pkg/database"
	"github.com/fleetops/fleetops/internal/pkg/health"
	"github.com/fleetops/fleetops/internal/pkg/logger"
	"github.com/fleetops/fleetops/internal/pkg/middleware"
	"github.com/fleetops/fleetops/internal/pkg/models"
	nsqpkg "github.com/fleetops/fleetops/internal/pkg/nsq"
	"github.com/fleetops/fleetops/migrations"
	fleethandler "github.com/fleetops/fleetops/services/fleet/handler"
	fleetrepo "github.com/fleetops/fleetops/services/fleet/repository"
	fleetuc "github.com/fleetops/fleetops/services/fleet/usecase"
	tripsgw "github.com/fleetops/fleetops/services/trips/gateway"
	tripshandler "github.com/fleetops/fleetops/services/trips/handler"
	tripsrepo "github.com/fleetops/fleetops/services/trips/repository"
	tripsuc "github.com/fleetops/fleetops/services/trips/usecase"
	usershandler "github.com/fleetops/fleetops/services/users/handler"
	usersrepo "github.com/fleetops/fleetops/services/users/repository"
	usersuc "github.com/fleetops/fleetops/services/users/usecase"
)

const serviceName = "fleet"

func main() {
	cfg := config.InitConfig(".env")

	appLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	if err := run(cfg, appLogger); err != nil {
		logger.Error("service stopped", logger.Err(err))
		os.Exit(1)
	}
}

func run(cfg *models.Config, appLogger *logger.ZapLogger) error {
	postgres, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer postgres.Close()
	db := postgres.GetDB()

	if cfg.Database.AutoMigrate {
		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		if err := goose.Up(db.DB, "."); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer redisClient.Close()

	var producer *nsqpkg.Producer
	if cfg.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(cfg.NSQ.Address)
		if err != nil {
			return fmt.Errorf("nsq: %w", err)
		}
		defer producer.Stop()
	}

	userRepo := usersrepo.NewUserRepository(cfg, db)
	fleetRepo := fleetrepo.NewFleetRepository(cfg, db)
	tripRepo := tripsrepo.NewTripRepository(cfg, db)

	userUC := usersuc.NewUserUC(cfg, userRepo)
	fleetUC := fleetuc.NewFleetUC(cfg, fleetRepo, tripRepo, redisClient)
	tripUC := tripsuc.NewTripUC(cfg, tripRepo, fleetRepo, userRepo, tripsgw.NewTripGW(producer))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(logger.ZapEchoMiddleware(appLogger))
	e.Use(echomw.CORS())

	health.RegisterHealthEndpoints(e, serviceName, cfg.App.Version,
		health.CheckerFunc{CheckerName: "postgres", Fn: func(ctx context.Context) error {
			return db.PingContext(ctx)
		}},
		health.CheckerFunc{CheckerName: "redis", Fn: redisClient.Ping},
	)

	usershandler.NewHandler(userUC, cfg).RegisterRoutes(e)
	fleethandler.NewHandler(fleetUC, cfg).RegisterRoutes(e)
	tripshandler.NewHandler(tripUC, cfg).RegisterRoutes(e)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting http server",
			logger.String("service", serviceName),
			logger.String("addr", server.Addr))
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
