package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/city-dashboard/internal/app"
	"github.com/Nazarious-ucu/city-dashboard/internal/config"
	"github.com/Nazarious-ucu/city-dashboard/internal/metrics"
	"github.com/Nazarious-ucu/city-dashboard/pkg/logger"
)

const serviceName = "city_dashboard"

// @title City Dashboard API
// @version 1.0
// @description Proxy for weather, news and exchange-rate providers behind the city dashboard
// @host localhost:3000
// @BasePath /api/
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.LogsPath, serviceName)
	if err != nil {
		log.Panicf("failed to initialize logger: %v", err)
	}

	application := app.New(*cfg, l, metrics.NewMetrics(serviceName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		l.Fatal().Err(err).Msg("application failed")
	}
}
