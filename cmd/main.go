package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Rolo3650/sicove-api/internal/handler"
	"github.com/Rolo3650/sicove-api/internal/middleware"
	"github.com/Rolo3650/sicove-api/internal/store"
	"github.com/Rolo3650/sicove-api/pkg/config"
	"github.com/Rolo3650/sicove-api/pkg/jwtutil"
	"github.com/Rolo3650/sicove-api/pkg/logger"
	"github.com/Rolo3650/sicove-api/pkg/mongodb"
	"github.com/Rolo3650/sicove-api/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration: "+err.Error())
		os.Exit(1)
	}

	// Initialize logger with config
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize logger: "+err.Error())
		os.Exit(1)
	}
	log := logger.GetLogger()
	log.Info("Starting SICOVE API...", cfg.LogConfig()...)

	// Initialize database
	db, err := mongodb.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongodb.Disconnect(ctx); err != nil {
			log.Error("Failed to disconnect database", zap.Error(err))
		}
	}()
	log.Info("Database connection established")

	jwtUtil := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: cfg.JWTSecret})

	// Initialize Echo framework
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())
	// e.Use(middleware.StaticTokenGuard(cfg))

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	handler.Register(e, handler.Dependencies{
		Store:      store.NewMongo(db),
		JWT:        jwtUtil,
		BcryptCost: cfg.BcryptCost,
	})

	// Start server
	log.Info("Starting server", zap.String("port", cfg.Port))
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
