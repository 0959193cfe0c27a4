package server_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"version-counter/core/metrics"
	"version-counter/core/middleware/rayid"
	"version-counter/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfig_CORSMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  server.Config
		want server.CORSMode
	}{
		{"AllowList", server.Config{AllowedOrigins: []string{"https://a.example"}}, server.CORSAllowList},
		{"AllowListWinsOverUnrestricted", server.Config{AllowedOrigins: []string{"https://a.example"}, Unrestricted: true}, server.CORSAllowList},
		{"Permissive", server.Config{Unrestricted: true}, server.CORSPermissive},
		{"Disabled", server.Config{}, server.CORSDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.CORSMode())
		})
	}
}

func corsRequest(t *testing.T, app *fiber.App, origin string) string {
	t.Helper()
	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", origin)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	return resp.Header.Get("Access-Control-Allow-Origin")
}

func TestNew_CORS(t *testing.T) {
	logg := zap.NewNop()

	t.Run("Permissive", func(t *testing.T) {
		app := server.New(server.Config{Unrestricted: true}, logg, nil)
		assert.Equal(t, "*", corsRequest(t, app, "https://anywhere.example"))
	})

	t.Run("AllowList", func(t *testing.T) {
		app := server.New(server.Config{AllowedOrigins: []string{"https://app.example"}}, logg, nil)
		assert.Equal(t, "https://app.example", corsRequest(t, app, "https://app.example"))
		assert.Empty(t, corsRequest(t, app, "https://evil.example"))
	})

	t.Run("Disabled", func(t *testing.T) {
		app := server.New(server.Config{}, logg, nil)
		assert.Empty(t, corsRequest(t, app, "https://app.example"))
	})
}

func TestNew_Health(t *testing.T) {
	app := server.New(server.Config{}, zap.NewNop(), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(rayid.Header))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "OK", string(body))
}

func TestNew_ErrorHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := server.New(server.Config{}, zap.New(core), nil)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("database password is hunter2")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, server.InternalErrorMessage, string(body))
	assert.Equal(t, 1, logs.FilterMessage("Unhandled error").Len())

	resp, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestNew_Metrics(t *testing.T) {
	app := server.New(server.Config{}, zap.NewNop(), metrics.New())

	_, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `version_counter_http_requests_total{code="200",method="GET",route="/health"} 1`)
}
