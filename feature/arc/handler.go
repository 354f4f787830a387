package arc

import (
	corearc "itac-api/core/arc"
	"itac-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for ARC hierarchy browsing.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the ARC routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/arc/:code", h.HandleSubtree)
}

// subtreeBody mirrors the historical response shape: the requested code keyed
// at the top level, wrapping the node.
type subtreeBody struct {
	Code        string                   `json:"code"`
	Description string                   `json:"description"`
	Children    map[string]*corearc.Node `json:"children"`
}

// HandleSubtree returns the hierarchy subtree for an ARC code.
// @Summary ARC Subtree
// @Description Returns the ARC hierarchy node for the given code with its children.
// @Tags arc
// @Accept json
// @Produce json
// @Param code path string true "ARC code (e.g. 2.11)"
// @Success 200 {object} map[string]interface{} "Subtree"
// @Failure 404 {object} map[string]string "Unknown ARC code"
// @Router /arc/{code} [get]
func (h *Handler) HandleSubtree(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	code := c.Params("code")

	node, ok := h.service.Subtree(code)
	if !ok {
		l.Warn("ARC code not found", zap.String("code", code))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No data found for the given ARC code",
		})
	}

	children := node.Children
	if children == nil {
		children = map[string]*corearc.Node{}
	}

	description := "No description available"
	if node.Description != nil {
		description = *node.Description
	}

	return c.JSON(fiber.Map{
		code: subtreeBody{
			Code:        code,
			Description: description,
			Children:    children,
		},
	})
}
