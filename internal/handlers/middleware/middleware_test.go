package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/city-dashboard/internal/handlers/middleware"
)

func newRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zerolog.New(buf)

	router := gin.New()
	router.Use(middleware.RequestID(logger), middleware.AccessLog(logger))
	router.GET("/ping", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside")
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	return router
}

func TestRequestID_Generated(t *testing.T) {
	var buf bytes.Buffer
	router := newRouter(&buf)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := rec.Header().Get(middleware.RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.Body.String())
}

func TestRequestID_Propagated(t *testing.T) {
	var buf bytes.Buffer
	router := newRouter(&buf)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))

	dec := json.NewDecoder(&buf)
	var lines []map[string]any
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}
	require.Len(t, lines, 2)
	assert.Equal(t, "inside", lines[0]["message"])
	assert.Equal(t, "abc-123", lines[0]["request_id"])
	assert.Equal(t, "request handled", lines[1]["message"])
	assert.Equal(t, "abc-123", lines[1]["request_id"])
	assert.EqualValues(t, http.StatusOK, lines[1]["status"])
}
