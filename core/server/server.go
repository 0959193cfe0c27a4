package server

import (
	"errors"
	"strings"

	"version-counter/core/logger"
	"version-counter/core/metrics"
	"version-counter/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "version-counter/docs/swagger"
)

// InternalErrorMessage is the only body sent for unexpected failures.
const InternalErrorMessage = "Internal Error"

// New creates the Fiber application with the shared middleware stack:
// ray id, request logging, CORS, metrics, health and API docs.
// Features register their routes on the returned app.
func New(cfg Config, logg *zap.Logger, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
		UnescapePath:          true,
		ErrorHandler:          errorHandler(logg),
	})

	// RayID must be first to trace everything
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		l.Info("Request handled",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", status),
		)
		return err
	})

	switch cfg.CORSMode() {
	case CORSAllowList:
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
			AllowMethods: "GET,HEAD,OPTIONS",
		}))
	case CORSPermissive:
		app.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,HEAD,OPTIONS",
		}))
	}

	if m != nil {
		app.Use(m.Middleware())
		app.Get("/metrics", m.Handler())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return sendText(c, fiber.StatusOK, "OK")
	})
	app.Get("/swagger/*", swagger.HandlerDefault)

	return app
}

// errorHandler renders errors as plain text. Only fiber errors keep their
// message; everything else becomes an opaque 500.
func errorHandler(logg *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return sendText(c, fe.Code, fe.Message)
		}
		logger.WithRayID(logg, c).Error("Unhandled error", zap.Error(err))
		return sendText(c, fiber.StatusInternalServerError, InternalErrorMessage)
	}
}

func sendText(c *fiber.Ctx, status int, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(body)
}
