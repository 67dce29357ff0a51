package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Error is a non-2xx answer from a provider.
type Error struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: status %d: %s", e.Provider, e.StatusCode, e.Message)
}

// ClientError reports whether the provider rejected the request itself
// (unknown city, bad key) rather than failing.
func (e *Error) ClientError() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

// NewError reads the provider message out of an error body. Providers disagree
// on the field name, so "message" wins over "error" and the raw body is the
// last resort.
func NewError(name string, resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var payload struct {
		Message   string `json:"message"`
		Error     string `json:"error"`
		ErrorType string `json:"error-type"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			msg = payload.Message
		case payload.Error != "":
			msg = payload.Error
		case payload.ErrorType != "":
			msg = payload.ErrorType
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return &Error{Provider: name, StatusCode: resp.StatusCode, Message: msg}
}
