package payload

import (
	"itac-api/core/logger"
	"itac-api/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the dashboard payload.
type Handler struct {
	service *Service
	preview int
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, serverCfg server.Config) *Handler {
	return &Handler{service: service, preview: serverCfg.EffectivePreviewLimit()}
}

// RegisterRoutes registers the payload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/all", h.HandleAll)
	app.Get("/preview", h.HandlePreview)
}

// HandleAll serves the complete enriched payload.
// @Summary Full Dashboard Payload
// @Description Joins recommendations with assessments and enriches every row with NAICS and ARC descriptions.
// @Tags payload
// @Accept json
// @Produce json
// @Success 200 {array} models.Row "Enriched recommendations"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /all [get]
func (h *Handler) HandleAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rows, err := h.service.All(c.Context())
	if err != nil {
		l.Error("Payload generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Payload generated", zap.Int("rows", len(rows)))
	return c.JSON(rows)
}

// HandlePreview serves a truncated payload for quick inspection.
// @Summary Payload Preview
// @Description Returns the first rows of the /all payload so it can be opened in a browser without choking.
// @Tags payload
// @Accept json
// @Produce json
// @Success 200 {array} models.Row "Enriched recommendations (truncated)"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /preview [get]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rows, err := h.service.Preview(c.Context(), h.preview)
	if err != nil {
		l.Error("Payload preview failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rows)
}
