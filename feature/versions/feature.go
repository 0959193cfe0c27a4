package versions

import (
	"version-counter/core/metrics"
	"version-counter/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature exposes the version count endpoint.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the feature around the shared storage client.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, m *metrics.Metrics) *Feature {
	svc := NewService(client, bucket, logger, m)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "versions"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

