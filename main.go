package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"mortgage-planner/config"
	httpLayer "mortgage-planner/http"
	"mortgage-planner/metrics"
	"mortgage-planner/repository"
	"mortgage-planner/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	metrics.Init()

	var reportRepo repository.ReportRepository
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			logger.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatalf("Failed to ping database: %v", err)
		}
		reportRepo = repository.NewReportRepositoryPostgres(db)
		logger.Info("Report history stored in postgres")
	} else {
		reportRepo = repository.NewReportRepositoryMemory()
		logger.Info("Report history stored in memory")
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL())
		logger.Infof("Report cache on redis at %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	amortizationService := service.NewAmortizationService(logger, cfg.MaxSimulationMonths)
	velocityService := service.NewVelocityService(logger, amortizationService, cfg.MaxSimulationMonths)
	investmentService := service.NewInvestmentService(logger)
	comparisonService := service.NewComparisonService(
		amortizationService,
		velocityService,
		investmentService,
		reportRepo,
		cache,
		logger,
	)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window())
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Amortization: httpLayer.NewAmortizationHandler(amortizationService),
		Velocity:     httpLayer.NewVelocityHandler(velocityService),
		Investment:   httpLayer.NewInvestmentHandler(investmentService),
		Comparison:   httpLayer.NewComparisonHandler(comparisonService),
	}, rateLimiter)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Errorf("Error starting server: %v", err)
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server exited")
}
