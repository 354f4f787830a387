package analytics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"itac-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// fiscalYearExpr matches an optional comparison operator followed by a four
// digit year, e.g. "=2023", ">=2020", "2018".
var fiscalYearExpr = regexp.MustCompile(`^\s*(<=|>=|=)?\s*(\d{4})\s*$`)

// Handler handles HTTP requests for aggregated statistics.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the analytics routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/recommendations", h.HandleRecommendations)
	app.Get("/aggregates", h.HandleAggregates)
	app.Get("/filter-options", h.HandleFilterOptions)
}

// HandleRecommendations serves per-code recommendation statistics.
// @Summary Recommendation Statistics
// @Description Groups recommendations by ARC code within an optional hierarchy subtree and fiscal year set.
// @Tags analytics
// @Accept json
// @Produce json
// @Param arc_precision query string false "ARC code selecting the hierarchy subtree to aggregate over"
// @Param fiscal_year query string false "Comma separated list of fiscal years, e.g. 2021,2022"
// @Success 200 {object} map[string]interface{} "Aggregates keyed by ARC code"
// @Failure 400 {object} map[string]interface{} "Invalid parameter"
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /recommendations [get]
func (h *Handler) HandleRecommendations(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	years, err := parseYearList(c.Query("fiscal_year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid parameter: " + err.Error(),
		})
	}

	data, err := h.service.TopRecommendations(c.Context(), c.Query("arc_precision"), years)
	if err != nil {
		l.Error("Recommendation statistics failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": data})
}

// HandleAggregates serves the grouped aggregate table.
// @Summary Aggregate Table
// @Description Returns per-code averages and implementation rates filtered by center, state, fiscal year and ARC prefix.
// @Tags analytics
// @Accept json
// @Produce json
// @Param center query string false "Assessment center"
// @Param state query string false "Two letter state"
// @Param fiscal_year query string false "Year with optional operator, e.g. =2023, >=2020, <=2018"
// @Param arc query string false "ARC code prefix"
// @Success 200 {object} map[string]interface{} "Aggregate rows"
// @Failure 400 {object} map[string]interface{} "Bad fiscal_year"
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /aggregates [get]
func (h *Handler) HandleAggregates(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	filter := AggregateFilter{
		Center:    c.Query("center"),
		State:     c.Query("state"),
		ArcPrefix: c.Query("arc"),
	}

	if raw := c.Query("fiscal_year"); raw != "" {
		m := fiscalYearExpr.FindStringSubmatch(raw)
		if m == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Bad fiscal_year (ex: =2023 | >=2020 | <=2018)",
			})
		}
		filter.FiscalYearOp = m[1]
		filter.FiscalYear, _ = strconv.Atoi(m[2])
	}

	rows, err := h.service.Aggregates(c.Context(), filter)
	if err != nil {
		l.Error("Aggregate query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": rows})
}

// HandleFilterOptions serves the distinct filter values.
// @Summary Filter Options
// @Description Lists the distinct centers, states and fiscal years available for filtering.
// @Tags analytics
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Available filter values"
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /filter-options [get]
func (h *Handler) HandleFilterOptions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts, err := h.service.FilterOptions(c.Context())
	if err != nil {
		l.Error("Filter options query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"centers": opts.Centers,
		"states":  opts.States,
		"years":   opts.Years,
	})
}

// parseYearList splits a comma separated fiscal year parameter into ints.
func parseYearList(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var years []int
	for _, part := range strings.Split(raw, ",") {
		y, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("fiscal_year must be a comma separated list of years, got %q", strings.TrimSpace(part))
		}
		years = append(years, y)
	}
	return years, nil
}
