package provider

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func response(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func TestNewError(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"message field", http.StatusNotFound, `{"cod":"404","message":"city not found"}`, "city not found"},
		{"error field", http.StatusUnauthorized, `{"error":"Invalid API key"}`, "Invalid API key"},
		{"error-type field", http.StatusForbidden, `{"result":"error","error-type":"invalid-key"}`, "invalid-key"},
		{"plain text", http.StatusBadGateway, "upstream down\n", "upstream down"},
		{"empty body", http.StatusServiceUnavailable, "", "Service Unavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewError("Test", response(tc.status, tc.body))

			assert.Equal(t, tc.status, err.StatusCode)
			assert.Equal(t, tc.wantMsg, err.Message)
			assert.Equal(t, "Test", err.Provider)
		})
	}
}

func TestIsSuccessful(t *testing.T) {
	assert.True(t, isSuccessful(nil))
	assert.True(t, isSuccessful(&Error{StatusCode: http.StatusNotFound}))
	assert.False(t, isSuccessful(&Error{StatusCode: http.StatusInternalServerError}))
	assert.False(t, isSuccessful(io.ErrUnexpectedEOF))
}
