package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/city-dashboard/internal/models"
	"github.com/Nazarious-ucu/city-dashboard/internal/services/provider"
)

const (
	providerName = "NewsAPI"

	// PageSize is the most articles a query ever yields.
	PageSize = 4
)

type apiResponse struct {
	Status   string               `json:"status"`
	Code     string               `json:"code"`
	Message  string               `json:"message"`
	Articles []models.NewsArticle `json:"articles"`
}

// ClientNewsAPI searches NewsAPI's "everything" endpoint.
type ClientNewsAPI struct {
	APIKey string
	apiURL string
	client provider.HTTPClient
	logger zerolog.Logger
}

func NewClientNewsAPI(apiKey, apiURL string, httpClient provider.HTTPClient, logger zerolog.Logger) *ClientNewsAPI {
	return &ClientNewsAPI{APIKey: apiKey, apiURL: apiURL, client: httpClient, logger: logger}
}

// Fetch returns the newest English articles matching query, newest first.
func (s *ClientNewsAPI) Fetch(ctx context.Context, query string) ([]models.NewsArticle, error) {
	start := time.Now()

	params := url.Values{
		"q":        {query},
		"sortBy":   {"publishedAt"},
		"pageSize": {strconv.Itoa(PageSize)},
		"language": {"en"},
		"apiKey":   {s.APIKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("query", query).
			Msg("error sending HTTP request to NewsAPI")
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().Ctx(ctx).Err(cerr).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, provider.NewError(providerName, resp)
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode NewsAPI response: %w", err)
	}
	if raw.Status != "ok" {
		return nil, &provider.Error{Provider: providerName, StatusCode: resp.StatusCode, Message: raw.Message}
	}

	articles := raw.Articles
	if len(articles) > PageSize {
		articles = articles[:PageSize]
	}

	s.logger.Info().
		Ctx(ctx).
		Str("query", query).
		Int("articles", len(articles)).
		Dur("duration_ms", time.Since(start)).
		Msg("successfully fetched news")

	return articles, nil
}
