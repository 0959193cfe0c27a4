package versions

import (
	"strconv"

	"version-counter/core/logger"
	"version-counter/core/metrics"
	"version-counter/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for version counts.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the version count routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/resource_version_amount/:resource_name", h.HandleVersionAmount)
}

// HandleVersionAmount returns the number of stored versions of a resource.
// @Summary Count resource versions
// @Description Counts the stored version objects under the resource_name/ prefix of the bucket.
// @Tags versions
// @Produce plain
// @Param resource_name path string true "Resource name (2-32 alphanumeric characters)"
// @Success 200 {string} string "Decimal version count"
// @Failure 400 {string} string "Invalid resource name"
// @Failure 500 {string} string "Internal Error"
// @Router /resource_version_amount/{resource_name} [get]
func (h *Handler) HandleVersionAmount(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("resource_name")

	if err := ValidateName(name); err != nil {
		h.service.metrics.ObserveCount(metrics.OutcomeInvalid)
		l.Debug("Rejected resource name", zap.String("resource", name), zap.Error(err))
		return plain(c, fiber.StatusBadRequest, "Bad Request: "+err.Error())
	}

	count, err := h.service.CountVersions(c.Context(), name)
	if err != nil {
		h.service.metrics.ObserveCount(metrics.OutcomeError)
		l.Error("Error while listing resource versions",
			zap.String("resource", name),
			zap.Error(err))
		return plain(c, fiber.StatusInternalServerError, server.InternalErrorMessage)
	}

	h.service.metrics.ObserveCount(metrics.OutcomeOK)
	return plain(c, fiber.StatusOK, strconv.FormatUint(count, 10))
}

func plain(c *fiber.Ctx, status int, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(body)
}
