package dashboard_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/city-dashboard/internal/dashboard"
)

func newBackend(t *testing.T) *dashboard.Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/weather", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("city") {
		case "São Paulo":
			_, _ = w.Write([]byte(`{"city":"São Paulo","country":"BR","coordinates":{"lat":-23.55,"lon":-46.63},"temp":24}`))
		case "Atlantis":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"city not found"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	})
	mux.HandleFunc("/api/news", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"title":"a","url":"u","urlToImage":"","publishedAt":"2024-01-01T00:00:00Z"}]`))
	})
	mux.HandleFunc("/api/currency", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("base") != "USD" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Currency API Error"}`))
			return
		}
		_, _ = w.Write([]byte(`{"result":"success","base_code":"USD","conversion_rates":{"USD":1,"EUR":0.92}}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return dashboard.NewClient(srv.URL+"/", srv.Client())
}

func TestClient_Weather(t *testing.T) {
	c := newBackend(t)

	got, err := c.Weather(context.Background(), "São Paulo")
	require.NoError(t, err)
	assert.Equal(t, "BR", got.Country)
	assert.InDelta(t, -23.55, got.Coordinates.Lat, 0.0001)

	_, err = c.Weather(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.True(t, dashboard.IsAPIError(err))
	assert.Equal(t, "city not found", err.Error())

	_, err = c.Weather(context.Background(), "Nowhere")
	require.Error(t, err)
	assert.Equal(t, "Bad Gateway", err.Error())
}

func TestClient_NewsAndRates(t *testing.T) {
	c := newBackend(t)

	articles, err := c.News(context.Background(), "London")
	require.NoError(t, err)
	assert.Len(t, articles, 1)

	table, err := c.Rates(context.Background(), "USD")
	require.NoError(t, err)
	rate, ok := table.Rate("EUR")
	assert.True(t, ok)
	assert.InDelta(t, 0.92, rate, 0.0001)

	_, err = c.Rates(context.Background(), "EUR")
	assert.EqualError(t, err, "Currency API Error")
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := dashboard.NewClient(srv.URL, srv.Client())

	_, err := c.News(context.Background(), "London")
	require.Error(t, err)
	assert.False(t, dashboard.IsAPIError(err))
}
