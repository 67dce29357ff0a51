package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Server struct {
	Host        string `envconfig:"SERVER_HOST" default:""`
	Port        string `envconfig:"PORT" default:"3000"`
	ReadTimeout int    `envconfig:"SERVER_TIMEOUT" default:"10"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

// Providers holds upstream credentials and endpoints. Keys are optional at
// startup; a missing key surfaces as a provider error per request.
type Providers struct {
	WeatherAPIKey  string `envconfig:"WEATHER_API_KEY"`
	NewsAPIKey     string `envconfig:"NEWS_API_KEY"`
	ExchangeAPIKey string `envconfig:"EXCHANGE_API_KEY"`

	WeatherAPIURL  string `envconfig:"WEATHER_API_URL" default:"https://api.openweathermap.org/data/2.5/weather"`
	NewsAPIURL     string `envconfig:"NEWS_API_URL" default:"https://newsapi.org/v2/everything"`
	ExchangeAPIURL string `envconfig:"EXCHANGE_API_URL" default:"https://v6.exchangerate-api.com/v6"`
	CountryAPIURL  string `envconfig:"COUNTRY_API_URL" default:"https://restcountries.com/v3.1"`
}

type Config struct {
	Server    Server
	Breaker   Breaker
	Providers Providers

	StaticDir    string `envconfig:"STATIC_DIR" default:"./web/static"`
	LogsPath     string `envconfig:"LOGS_PATH" default:"./log/city-dashboard.log"`
	HTTPLogsPath string `envconfig:"HTTP_LOGS_PATH" default:"./log/providers-http.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeout) * time.Second
}

// Secrets lists values that must never reach a log.
func (c *Config) Secrets() []string {
	return []string{c.Providers.WeatherAPIKey, c.Providers.NewsAPIKey, c.Providers.ExchangeAPIKey}
}
