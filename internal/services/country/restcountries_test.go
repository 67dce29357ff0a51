package country

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestCountries_Fetch(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{
			name:   "array payload",
			status: http.StatusOK,
			body:   `[{"cca2":"KZ","currencies":{"KZT":{"name":"Kazakhstani tenge","symbol":"₸"}}}]`,
			want:   "KZT",
		},
		{
			name:   "document order wins",
			status: http.StatusOK,
			body:   `[{"currencies":{"ZWL":{"name":"Zimbabwean dollar"},"BWP":{},"USD":{}}}]`,
			want:   "ZWL",
		},
		{
			name:   "single object payload",
			status: http.StatusOK,
			body:   `{"currencies":{"EUR":{"name":"Euro"}}}`,
			want:   "EUR",
		},
		{name: "no currencies", status: http.StatusOK, body: `[{"cca2":"AQ"}]`, wantErr: true},
		{name: "empty currencies", status: http.StatusOK, body: `[{"currencies":{}}]`, wantErr: true},
		{name: "empty array", status: http.StatusOK, body: `[]`, wantErr: true},
		{name: "not found", status: http.StatusNotFound, body: `{"status":404,"message":"Not Found"}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v3.1/alpha/KZ", r.URL.Path)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClientRestCountries(srv.URL+"/v3.1", srv.Client(), zerolog.Nop())

			got, err := client.Fetch(context.Background(), "KZ")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFirstKey_Null(t *testing.T) {
	_, err := firstKey(json.RawMessage(`null`))
	assert.ErrorIs(t, err, errNoCurrency)
}
