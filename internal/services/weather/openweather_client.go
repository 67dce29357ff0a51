package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/city-dashboard/internal/models"
	"github.com/Nazarious-ucu/city-dashboard/internal/services/provider"
)

const providerName = "OpenWeatherMap"

var (
	errNoCoordinates = errors.New("OpenWeatherMap response has no coordinates")
	errNoConditions  = errors.New("OpenWeatherMap response has no weather conditions")
)

type apiResponse struct {
	Name  string              `json:"name"`
	Coord *models.Coordinates `json:"coord"`
	Sys   struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Rain *struct {
		ThreeHours float64 `json:"3h"`
	} `json:"rain"`
}

// ClientOpenWeatherMap fetches current weather from OpenWeatherMap.
type ClientOpenWeatherMap struct {
	APIKey string
	apiURL string
	client provider.HTTPClient
	logger zerolog.Logger
}

// NewClientOpenWeatherMap constructs a new OpenWeatherMap client.
func NewClientOpenWeatherMap(apiKey, apiURL string,
	httpClient provider.HTTPClient, logger zerolog.Logger,
) *ClientOpenWeatherMap {
	return &ClientOpenWeatherMap{APIKey: apiKey, apiURL: apiURL, client: httpClient, logger: logger}
}

// Fetch retrieves the current weather for a city in metric units.
func (s *ClientOpenWeatherMap) Fetch(ctx context.Context, city string) (models.WeatherReport, error) {
	start := time.Now()

	query := url.Values{
		"q":     {city},
		"units": {"metric"},
		"appid": {s.APIKey},
	}
	reqURL := s.apiURL + "?" + query.Encode()

	s.logger.Debug().
		Ctx(ctx).
		Str("city", city).
		Msg("starting OpenWeatherMap request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("city", city).
			Msg("failed to create HTTP request")
		return models.WeatherReport{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("city", city).
			Msg("error sending HTTP request to OpenWeatherMap")
		return models.WeatherReport{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().
				Ctx(ctx).
				Err(cerr).
				Str("city", city).
				Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		perr := provider.NewError(providerName, resp)
		s.logger.Error().
			Ctx(ctx).
			Str("city", city).
			Int("status_code", resp.StatusCode).
			Str("message", perr.Message).
			Msg("OpenWeatherMap API returned non-200 status")
		return models.WeatherReport{}, perr
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("city", city).
			Msg("failed to decode OpenWeatherMap response")
		return models.WeatherReport{}, fmt.Errorf("decode OpenWeatherMap response: %w", err)
	}

	data, err := raw.toReport()
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("city", city).
			Msg("incomplete OpenWeatherMap response")
		return models.WeatherReport{}, err
	}

	s.logger.Info().
		Ctx(ctx).
		Str("city", city).
		Dur("duration_ms", time.Since(start)).
		Msg("successfully fetched weather data")

	return data, nil
}

// toReport keeps only the first condition entry and the 3h rain bucket.
func (r apiResponse) toReport() (models.WeatherReport, error) {
	if r.Coord == nil {
		return models.WeatherReport{}, errNoCoordinates
	}
	if len(r.Weather) == 0 {
		return models.WeatherReport{}, errNoConditions
	}

	rain := 0.0
	if r.Rain != nil {
		rain = r.Rain.ThreeHours
	}

	return models.WeatherReport{
		City:        r.Name,
		Country:     r.Sys.Country,
		Coordinates: *r.Coord,
		Temp:        r.Main.Temp,
		FeelsLike:   r.Main.FeelsLike,
		Humidity:    r.Main.Humidity,
		Pressure:    r.Main.Pressure,
		WindSpeed:   r.Wind.Speed,
		Description: r.Weather[0].Description,
		Icon:        r.Weather[0].Icon,
		RainVolume:  rain,
	}, nil
}
