package app

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Nazarious-ucu/city-dashboard/docs"
	"github.com/Nazarious-ucu/city-dashboard/internal/config"
	"github.com/Nazarious-ucu/city-dashboard/internal/handlers/currency"
	"github.com/Nazarious-ucu/city-dashboard/internal/handlers/middleware"
	"github.com/Nazarious-ucu/city-dashboard/internal/handlers/news"
	"github.com/Nazarious-ucu/city-dashboard/internal/handlers/weather"
	"github.com/Nazarious-ucu/city-dashboard/internal/metrics"
	"github.com/Nazarious-ucu/city-dashboard/internal/models"
	"github.com/Nazarious-ucu/city-dashboard/internal/services/country"
	"github.com/Nazarious-ucu/city-dashboard/internal/services/gateway"
	loggerT "github.com/Nazarious-ucu/city-dashboard/internal/services/logger"
	serviceNews "github.com/Nazarious-ucu/city-dashboard/internal/services/news"
	"github.com/Nazarious-ucu/city-dashboard/internal/services/provider"
	"github.com/Nazarious-ucu/city-dashboard/internal/services/rates"
	serviceWeather "github.com/Nazarious-ucu/city-dashboard/internal/services/weather"
	fLogger "github.com/Nazarious-ucu/city-dashboard/pkg/logger"
)

const timeoutDuration = 5 * time.Second

// ServiceContainer holds initialized dependencies for the HTTP server.
type ServiceContainer struct {
	Gateway *gateway.Gateway

	Router     *gin.Engine
	Srv        *http.Server
	fileLogger *zap.Logger
}

// App ties together config, logger, and metrics for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metrics.Metrics
}

func New(cfg config.Config, logger zerolog.Logger, met *metrics.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
	}
}

// Start serves until ctx is cancelled or the listener fails.
func (a *App) Start(ctx context.Context) error {
	srvContainer := a.Init()

	serveErr := make(chan error, 1)
	go func() {
		a.l.Info().Str("address", a.cfg.ServerAddress()).Msg("starting city dashboard")
		if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.l.Info().Msg("shutdown signal received")
	case runErr = <-serveErr:
		if runErr != nil {
			a.l.Error().Err(runErr).Msg("HTTP server failed")
		}
	}

	if err := a.Shutdown(srvContainer); err != nil {
		a.l.Error().Err(err).Msg("failed to shutdown application")
		return errors.Join(runErr, err)
	}
	a.l.Info().Msg("application shutdown successfully")
	return runErr
}

// Shutdown stops the HTTP server and syncs the provider traffic log.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	a.l.Info().Msg("stopping city dashboard…")

	defer func(logger *zap.Logger) {
		if err := logger.Sync(); err != nil {
			a.l.Error().Err(err).Msg("failed to sync file logger")
		} else {
			a.l.Info().Msg("file logger synced successfully")
		}
	}(srvContainer.fileLogger)

	ctx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
	defer cancel()

	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		return err
	}
	a.l.Info().Msg("HTTP server stopped")
	return nil
}

// Init builds provider clients, the gateway and the router without serving.
func (a *App) Init() ServiceContainer {
	a.l.Info().
		Str("address", a.cfg.ServerAddress()).
		Str("static_dir", a.cfg.StaticDir).
		Msg("initializing city dashboard")

	fileLogger, err := fLogger.NewFileLogger(a.cfg.HTTPLogsPath)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to create file logger, provider traffic will not be logged")
		fileLogger = zap.NewNop()
	}

	httpLogClient := &http.Client{Transport: loggerT.NewRoundTripper(fileLogger, a.cfg.Secrets()...)}

	breakerCfg := provider.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}
	p := a.cfg.Providers

	gw := gateway.New(gateway.Clients{
		Weather: provider.NewBreakerClient[models.WeatherReport]("OpenWeatherMap", breakerCfg,
			serviceWeather.NewClientOpenWeatherMap(p.WeatherAPIKey, p.WeatherAPIURL, httpLogClient, a.l),
			a.l,
		),
		News: provider.NewBreakerClient[[]models.NewsArticle]("NewsAPI", breakerCfg,
			serviceNews.NewClientNewsAPI(p.NewsAPIKey, p.NewsAPIURL, httpLogClient, a.l),
			a.l,
		),
		Rates: provider.NewBreakerClient[models.ExchangeRateTable]("ExchangeRate-API", breakerCfg,
			rates.NewClientExchangeRate(p.ExchangeAPIKey, p.ExchangeAPIURL, httpLogClient, a.l),
			a.l,
		),
		Country: provider.NewBreakerClient[string]("RestCountries", breakerCfg,
			country.NewClientRestCountries(p.CountryAPIURL, httpLogClient, a.l),
			a.l,
		),
	}, a.m, a.l)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(a.l),
		middleware.AccessLog(a.l),
		a.m.HTTPMiddleware(),
	)
	a.registerRoutes(router, gw)

	httpServer := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     router,
		ReadTimeout: a.cfg.ReadTimeout(),
	}

	return ServiceContainer{
		Gateway:    gw,
		Router:     router,
		Srv:        httpServer,
		fileLogger: fileLogger,
	}
}

func (a *App) registerRoutes(router *gin.Engine, gw *gateway.Gateway) {
	weatherHandler := weather.NewHandler(gw)
	newsHandler := news.NewHandler(gw)
	currencyHandler := currency.NewHandler(gw)

	api := router.Group("/api")
	{
		api.GET("/weather", weatherHandler.GetWeather)
		api.GET("/news", newsHandler.GetNews)
		api.GET("/currency", currencyHandler.GetRates)
		api.GET("/country-info", currencyHandler.GetCountryInfo)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(a.m.Handler()))
	router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))

	router.StaticFile("/", filepath.Join(a.cfg.StaticDir, "index.html"))
	router.Static("/assets", a.cfg.StaticDir)
}
