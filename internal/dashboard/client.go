package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Nazarious-ucu/city-dashboard/internal/models"
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is an error answer of the dashboard backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client calls the dashboard backend. An empty base URL means same origin.
type Client struct {
	baseURL string
	client  HTTPClient
}

func NewClient(baseURL string, httpClient HTTPClient) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: httpClient}
}

func (c *Client) Weather(ctx context.Context, city string) (models.WeatherReport, error) {
	var report models.WeatherReport
	err := c.get(ctx, "/api/weather", url.Values{"city": {city}}, &report)
	return report, err
}

func (c *Client) News(ctx context.Context, query string) ([]models.NewsArticle, error) {
	var articles []models.NewsArticle
	if err := c.get(ctx, "/api/news", url.Values{"q": {query}}, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (c *Client) Rates(ctx context.Context, base string) (models.ExchangeRateTable, error) {
	var table models.ExchangeRateTable
	err := c.get(ctx, "/api/currency", url.Values{"base": {base}}, &table)
	return table, err
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		var body models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
			body.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// IsAPIError reports whether err came from a backend error answer rather
// than the transport.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
