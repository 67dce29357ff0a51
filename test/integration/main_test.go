//go:build integration

package integration

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/city-dashboard/internal/app"
	"github.com/Nazarious-ucu/city-dashboard/internal/config"
	"github.com/Nazarious-ucu/city-dashboard/internal/metrics"
)

const (
	weatherKey  = "secret-key-openweather"
	newsKey     = "secret-key-newsapi"
	exchangeKey = "secret-key-exchange"
)

var (
	testServerURL string
	httpLogsPath  string
)

func TestMain(m *testing.M) {
	log.Println("Starting integration tests for city dashboard..")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	providers := newProviderServers()

	logsDir, err := os.MkdirTemp("", "city-dashboard-logs")
	if err != nil {
		log.Panicf("failed to create logs dir: %v", err)
	}
	httpLogsPath = filepath.Join(logsDir, "providers-http.log")

	cfg.Providers.WeatherAPIKey = weatherKey
	cfg.Providers.NewsAPIKey = newsKey
	cfg.Providers.ExchangeAPIKey = exchangeKey
	cfg.Providers.WeatherAPIURL = providers.weather.URL + "/data/2.5/weather"
	cfg.Providers.NewsAPIURL = providers.news.URL + "/v2/everything"
	cfg.Providers.ExchangeAPIURL = providers.exchange.URL + "/v6"
	cfg.Providers.CountryAPIURL = providers.country.URL + "/v3.1"
	cfg.StaticDir = filepath.Join("..", "..", "web", "static")
	cfg.HTTPLogsPath = httpLogsPath
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = strconv.Itoa(freePort())

	application := app.New(*cfg, zerolog.Nop(), metrics.NewMetrics("city_dashboard_it"))
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		if err := application.Start(ctx); err != nil {
			log.Printf("application stopped with error: %v", err)
		}
	}()

	testServerURL = "http://" + cfg.ServerAddress()
	waitHealthy(testServerURL + "/health")

	code := m.Run()

	cancel()
	<-stopped
	providers.Close()
	_ = os.RemoveAll(logsDir)
	os.Exit(code)
}

func freePort() int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		log.Panicf("failed to reserve port: %v", err)
	}
	defer func() { _ = l.Close() }()
	return l.Addr().(*net.TCPAddr).Port
}

func waitHealthy(url string) {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url) //nolint:gosec,noctx
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	log.Panicf("server at %s did not become healthy", url)
}
