package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/akilima/akilima/internal/config"
	"github.com/akilima/akilima/internal/domain/models"
	"github.com/akilima/akilima/internal/repository/mongodb"
	"github.com/akilima/akilima/internal/scheduler"
	"github.com/akilima/akilima/internal/server/handlers"
	"github.com/akilima/akilima/internal/server/router"
	advisorysvc "github.com/akilima/akilima/internal/service/advisory"
	authsvc "github.com/akilima/akilima/internal/service/auth"
	marketsvc "github.com/akilima/akilima/internal/service/market"
	weathersvc "github.com/akilima/akilima/internal/service/weather"
	"github.com/akilima/akilima/pkg/clients/openweather"
	"github.com/akilima/akilima/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoClient, err := mongodb.Connect(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb connection", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	priceRepo := mongodb.NewPriceRepository(mongoClient)
	userRepo := mongodb.NewUserRepository(mongoClient)

	catalog := advisorysvc.DefaultCatalog()
	cropIDs := make([]string, 0, len(catalog))
	for _, entry := range catalog {
		cropIDs = append(cropIDs, entry.ID)
	}

	if cfg.Weather.APIKey == "" {
		baseLogger.Warn("openweather api key missing, weather endpoints will report upstream unavailable")
	}
	weatherClient := openweather.NewClient(cfg.Weather)

	advisoryService := advisorysvc.NewService(catalog, baseLogger.Named("svc.advisory"))
	marketService := marketsvc.NewService(priceRepo, cropIDs, baseLogger.Named("svc.market"))
	weatherService := weathersvc.NewService(weatherClient, baseLogger.Named("svc.weather"))
	authService := authsvc.NewService(userRepo, cfg.Auth.JWTSecret, baseLogger.Named("svc.auth"))

	engine := router.New(router.Handlers{
		Auth:     handlers.NewAuthHandler(authService, baseLogger.Named("handlers.auth")),
		Advisory: handlers.NewAdvisoryHandler(advisoryService, baseLogger.Named("handlers.advisory")),
		Market:   handlers.NewMarketHandler(marketService, baseLogger.Named("handlers.market")),
		Weather:  handlers.NewWeatherHandler(weatherService, baseLogger.Named("handlers.weather")),
	}, authService, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Weather.DigestCron, weatherService, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("region", models.DefaultMarket))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
