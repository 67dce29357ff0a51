package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/city-dashboard/internal/models"
	"github.com/Nazarious-ucu/city-dashboard/internal/services/news"
	"github.com/Nazarious-ucu/city-dashboard/internal/services/provider"
)

// DefaultCurrency is the base used when none is given and the country-info
// fallback answer.
const DefaultCurrency = "USD"

//nolint:stylecheck // messages are part of the public API contract
var (
	ErrCityRequired        = errors.New("City is required")
	ErrCountryCodeRequired = errors.New("Country code required")
	ErrWeatherUnavailable  = errors.New("Weather API Error")
	ErrCurrencyUnavailable = errors.New("Currency API Error")
)

type weatherClient interface {
	Fetch(ctx context.Context, city string) (models.WeatherReport, error)
}

type newsClient interface {
	Fetch(ctx context.Context, query string) ([]models.NewsArticle, error)
}

type ratesClient interface {
	Fetch(ctx context.Context, base string) (models.ExchangeRateTable, error)
}

type countryClient interface {
	Fetch(ctx context.Context, code string) (string, error)
}

type failureRecorder interface {
	ProviderFailure(provider string)
}

// Clients groups one client per provider.
type Clients struct {
	Weather weatherClient
	News    newsClient
	Rates   ratesClient
	Country countryClient
}

// Gateway reshapes provider answers and applies each operation's error policy:
// weather forwards provider detail, currency masks it, news and country-info
// degrade to a default.
type Gateway struct {
	clients  Clients
	failures failureRecorder
	logger   zerolog.Logger
}

func New(clients Clients, failures failureRecorder, logger zerolog.Logger) *Gateway {
	return &Gateway{clients: clients, failures: failures, logger: logger}
}

// GetWeather returns a *provider.Error when the provider answered with an
// error and ErrWeatherUnavailable for anything else.
func (g *Gateway) GetWeather(ctx context.Context, city string) (models.WeatherReport, error) {
	if city == "" {
		return models.WeatherReport{}, ErrCityRequired
	}

	report, err := g.clients.Weather.Fetch(ctx, city)
	if err != nil {
		g.failures.ProviderFailure("weather")
		g.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("city", city).
			Msg("weather lookup failed")

		var perr *provider.Error
		if errors.As(err, &perr) {
			return models.WeatherReport{}, perr
		}
		return models.WeatherReport{}, fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
	}

	return report, nil
}

// GetNews never fails; any problem yields an empty list.
func (g *Gateway) GetNews(ctx context.Context, query string) []models.NewsArticle {
	articles := []models.NewsArticle{}
	if query == "" {
		return articles
	}

	fetched, err := g.clients.News.Fetch(ctx, query)
	if err != nil {
		g.failures.ProviderFailure("news")
		g.logger.Warn().
			Ctx(ctx).
			Err(err).
			Str("query", query).
			Msg("news lookup failed, returning empty list")
		return articles
	}

	articles = append(articles, fetched...)
	if len(articles) > news.PageSize {
		articles = articles[:news.PageSize]
	}
	return articles
}

func (g *Gateway) GetExchangeRates(ctx context.Context, base string) (models.ExchangeRateTable, error) {
	if base == "" {
		base = DefaultCurrency
	}

	table, err := g.clients.Rates.Fetch(ctx, base)
	if err != nil {
		g.failures.ProviderFailure("currency")
		g.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("base", base).
			Msg("exchange rate lookup failed")
		return models.ExchangeRateTable{}, fmt.Errorf("%w: %w", ErrCurrencyUnavailable, err)
	}

	return table, nil
}

// GetCountryCurrency falls back to DefaultCurrency on any provider failure.
func (g *Gateway) GetCountryCurrency(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", ErrCountryCodeRequired
	}

	currency, err := g.clients.Country.Fetch(ctx, code)
	if err != nil {
		g.failures.ProviderFailure("country")
		g.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("code", code).
			Msg("Country API Error")
		return DefaultCurrency, nil
	}

	return currency, nil
}
