package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/city-dashboard/internal/models"
	"github.com/Nazarious-ucu/city-dashboard/internal/services/provider"
)

const providerName = "ExchangeRate-API"

// ClientExchangeRate reads latest rates from ExchangeRate-API v6.
// The key is part of the path, not the query.
type ClientExchangeRate struct {
	APIKey string
	apiURL string
	client provider.HTTPClient
	logger zerolog.Logger
}

func NewClientExchangeRate(
	apiKey, apiURL string,
	httpClient provider.HTTPClient,
	logger zerolog.Logger,
) *ClientExchangeRate {
	return &ClientExchangeRate{APIKey: apiKey, apiURL: strings.TrimRight(apiURL, "/"), client: httpClient, logger: logger}
}

func (s *ClientExchangeRate) Fetch(ctx context.Context, base string) (models.ExchangeRateTable, error) {
	reqURL := fmt.Sprintf("%s/%s/latest/%s", s.apiURL, url.PathEscape(s.APIKey), url.PathEscape(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.ExchangeRateTable{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("base", base).
			Msg("error sending HTTP request to ExchangeRate-API")
		return models.ExchangeRateTable{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().Ctx(ctx).Err(cerr).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		perr := provider.NewError(providerName, resp)
		s.logger.Error().
			Ctx(ctx).
			Str("base", base).
			Int("status_code", resp.StatusCode).
			Str("message", perr.Message).
			Msg("ExchangeRate-API returned non-200 status")
		return models.ExchangeRateTable{}, perr
	}

	var table models.ExchangeRateTable
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return models.ExchangeRateTable{}, fmt.Errorf("decode ExchangeRate-API response: %w", err)
	}
	if table.Result != "success" {
		return models.ExchangeRateTable{}, &provider.Error{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    "result " + table.Result,
		}
	}

	s.logger.Debug().
		Ctx(ctx).
		Str("base", table.BaseCode).
		Int("rates", len(table.ConversionRates)).
		Msg("fetched exchange rates")

	return table, nil
}
