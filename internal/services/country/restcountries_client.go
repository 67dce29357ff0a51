package country

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/city-dashboard/internal/services/provider"
)

const providerName = "RESTCountries"

var errNoCurrency = errors.New("country has no currencies")

type countryResponse struct {
	Currencies json.RawMessage `json:"currencies"`
}

// ClientRestCountries resolves a country's currency by alpha code. It needs no key.
type ClientRestCountries struct {
	apiURL string
	client provider.HTTPClient
	logger zerolog.Logger
}

func NewClientRestCountries(apiURL string, httpClient provider.HTTPClient, logger zerolog.Logger) *ClientRestCountries {
	return &ClientRestCountries{apiURL: strings.TrimRight(apiURL, "/"), client: httpClient, logger: logger}
}

// Fetch returns the first currency code listed for the country.
func (s *ClientRestCountries) Fetch(ctx context.Context, code string) (string, error) {
	reqURL := fmt.Sprintf("%s/alpha/%s", s.apiURL, url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().Ctx(ctx).Err(cerr).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", provider.NewError(providerName, resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var countries []countryResponse
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '{' {
		var single countryResponse
		if err := json.Unmarshal(body, &single); err != nil {
			return "", fmt.Errorf("decode REST Countries response: %w", err)
		}
		countries = append(countries, single)
	} else if err := json.Unmarshal(body, &countries); err != nil {
		return "", fmt.Errorf("decode REST Countries response: %w", err)
	}
	if len(countries) == 0 {
		return "", fmt.Errorf("no country found for code %s", code)
	}

	return firstKey(countries[0].Currencies)
}

// firstKey walks the object tokens so that document order survives,
// which a Go map would lose.
func firstKey(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return "", errNoCurrency
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", errNoCurrency
	}
	if !dec.More() {
		return "", errNoCurrency
	}

	tok, err = dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok || key == "" {
		return "", errNoCurrency
	}
	return key, nil
}
