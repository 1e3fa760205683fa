package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wayfarerhq/footprints/internal/config"
	"github.com/wayfarerhq/footprints/internal/database"
	"github.com/wayfarerhq/footprints/internal/handler"
	"github.com/wayfarerhq/footprints/internal/logger"
	"github.com/wayfarerhq/footprints/internal/repository"
	"github.com/wayfarerhq/footprints/internal/router"
	"github.com/wayfarerhq/footprints/internal/telemetry"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	appLogger, err := logger.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal("failed to initialize logger:", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	ctx := context.Background()

	// Demo/dev mode wipes the store file and starts from empty.
	if cfg.DBReset {
		if err := database.Reset(cfg.DBPath); err != nil {
			appLogger.Fatal("failed to reset store", zap.Error(err))
		}
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		appLogger.Fatal("failed to open store", zap.Error(err))
	}
	defer db.Close()

	if err := database.Init(ctx, db); err != nil {
		appLogger.Fatal("failed to initialize schema", zap.Error(err))
	}
	if cfg.DBReset {
		if err := database.Seed(ctx, db, appLogger); err != nil {
			appLogger.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	userRepo := repository.NewUserRepo(db)
	tripRepo := repository.NewTripRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	footprintRepo := repository.NewFootprintRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	collectionRepo := repository.NewCollectionRepo(db)

	tel := telemetry.New()

	e := echo.New()
	e.HideBanner = true
	e.Use(tel.Middleware())
	router.RegisterRoutes(e, tel,
		handler.NewUserHandler(userRepo, collectionRepo),
		handler.NewTripHandler(tripRepo),
		handler.NewLocationHandler(locationRepo),
		handler.NewFootprintHandler(footprintRepo, commentRepo, collectionRepo),
	)

	addr := ":" + cfg.Port
	appLogger.Info("starting server",
		zap.String("addr", addr),
		zap.String("env", cfg.Env),
		zap.String("store", cfg.DBPath))

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal, then drain in-flight requests.
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("server forced to shutdown", zap.Error(err))
		return
	}
	appLogger.Info("server exited gracefully")
}
