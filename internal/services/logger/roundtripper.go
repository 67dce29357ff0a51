package logger

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const redacted = "***"

// RoundTripper logs every outbound provider call. Configured secrets are
// replaced before anything reaches the log.
type RoundTripper struct {
	Logger  *zap.Logger
	Proxy   http.RoundTripper
	secrets []string
}

func NewRoundTripper(logger *zap.Logger, secrets ...string) *RoundTripper {
	keep := make([]string, 0, len(secrets))
	for _, s := range secrets {
		if s == "" {
			continue
		}
		keep = append(keep, s)
		if escaped := url.QueryEscape(s); escaped != s {
			keep = append(keep, escaped)
		}
	}
	return &RoundTripper{
		Logger:  logger,
		Proxy:   http.DefaultTransport,
		secrets: keep,
	}
}

func (l *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := l.Proxy.RoundTrip(req)
	duration := time.Since(start)

	target := l.redact(req.URL.String())

	if err != nil {
		l.Logger.Error("HTTP request failed",
			zap.String("method", req.Method),
			zap.String("url", target),
			zap.Duration("duration", duration),
			zap.String("error", l.redact(err.Error())),
		)
		return nil, err
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		l.Logger.Error("Failed to read response body",
			zap.String("method", req.Method),
			zap.String("url", target),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	l.Logger.Info("HTTP request completed",
		zap.String("method", req.Method),
		zap.String("url", target),
		zap.String("body_snipped", l.redact(string(bodyBytes))),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

func (l *RoundTripper) redact(s string) string {
	for _, secret := range l.secrets {
		s = strings.ReplaceAll(s, secret, redacted)
	}
	return s
}
