package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"authscreen/config"
	"authscreen/internal/delivery/api/response"
	"authscreen/internal/delivery/api/router/handler"
	deliverycontext "authscreen/internal/delivery/context"
	domainerrors "authscreen/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoutes struct{}

func (stubRoutes) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/app-error", func(echo.Context) error { return domainerrors.MissingBackendUser() })
	e.GET("/boom", func(echo.Context) error { return errors.New("database exploded") })
	e.POST("/echo", func(c echo.Context) error {
		body, _ := io.ReadAll(c.Request().Body)
		return response.Success(c, http.StatusOK, string(body))
	})
}

func createTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	return newEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), stubRoutes{})
}

func serve(t *testing.T, e *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestServer_Health(t *testing.T) {
	e := createTestEcho(t)

	rec, body := serve(t, e, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(body["data"]))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RequestIDPropagation(t *testing.T) {
	e := createTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-req-1")
	rec, body := serve(t, e, req)

	assert.Equal(t, "client-req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.JSONEq(t, `{"request_id":"client-req-1"}`, string(body["meta"]))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "has space")
	rec, _ = serve(t, e, req)

	assert.NotEqual(t, "has space", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_ErrorRendering(t *testing.T) {
	e := createTestEcho(t)

	rec, body := serve(t, e, httptest.NewRequest(http.MethodGet, "/app-error", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"code":"MISSING_BACKEND_USER","message":"No user returned from Supabase"}`, string(body["error"]))

	rec, body = serve(t, e, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, string(body["error"]), "database exploded")

	rec, body = serve(t, e, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, string(body["error"]), "HTTP_ERROR")
}

func TestServer_BodyLimit(t *testing.T) {
	e := createTestEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("a", 2048)))
	rec, _ := serve(t, e, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
