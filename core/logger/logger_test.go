package logger_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"version-counter/core/logger"
	"version-counter/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("ConsoleOnly", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "info", Format: "console"})
		require.NoError(t, err)
		assert.NotNil(t, l)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		_, err := logger.New(&logger.Config{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("WritesDatedFile", func(t *testing.T) {
		dir := t.TempDir()
		l, err := logger.New(&logger.Config{Level: "debug", Format: "console", Dir: dir})
		require.NoError(t, err)

		l.Info("hello file")
		_ = l.Sync()

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		name := entries[0].Name()
		assert.True(t, strings.HasPrefix(name, "log-"))
		assert.True(t, strings.HasSuffix(name, ".txt"))

		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello file")
		assert.Contains(t, string(data), "INFO")
	})
}

func TestFileName(t *testing.T) {
	ts := time.Date(2024, 3, 9, 7, 5, 1, 0, time.UTC)
	assert.Equal(t, "log-2024_03_09_07-05-01.txt", logger.FileName(ts))
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(rayid.LocalKey, "abc-123")
		logger.WithRayID(base, c).Info("tagged")
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("untagged")
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/plain", nil))
	require.NoError(t, err)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "abc-123", logs.All()[0].ContextMap()[rayid.LocalKey])
	assert.NotContains(t, logs.All()[1].ContextMap(), rayid.LocalKey)
}
