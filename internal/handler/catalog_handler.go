package handler

import (
	"rangeiq/internal/domain"
	"rangeiq/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the read-only scenario, range and concept content.
type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListScenarios godoc
// @Summary List scenarios
// @Description Ascending id. Unknown filter values match nothing.
// @Tags scenarios
// @Produce json
// @Param difficulty query string false "Beginner, Intermediate or Advanced"
// @Param category query string false "Preflop, Flop, Turn, River, Bluff Catch or 3-Bet Pots"
// @Success 200 {array} domain.Scenario
// @Router /scenarios [get]
func (h *CatalogHandler) ListScenarios(c *fiber.Ctx) error {
	return c.JSON(h.service.ListScenarios(domain.ScenarioFilter{
		Difficulty: c.Query("difficulty"),
		Category:   c.Query("category"),
	}))
}

// GetScenario godoc
// @Summary Get a scenario
// @Tags scenarios
// @Produce json
// @Param id path int true "Scenario ID"
// @Success 200 {object} domain.Scenario
// @Failure 404 {object} middleware.ErrorResponse
// @Router /scenarios/{id} [get]
func (h *CatalogHandler) GetScenario(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return domain.NewNotFoundError("Scenario not found")
	}
	scenario, err := h.service.GetScenario(id)
	if err != nil {
		return err
	}
	return c.JSON(scenario)
}

// ListRanges godoc
// @Summary List reference ranges
// @Tags ranges
// @Produce json
// @Success 200 {array} domain.Range
// @Router /ranges [get]
func (h *CatalogHandler) ListRanges(c *fiber.Ctx) error {
	return c.JSON(h.service.ListRanges())
}

// GetRange godoc
// @Summary Get a reference range
// @Tags ranges
// @Produce json
// @Param id path int true "Range ID"
// @Success 200 {object} domain.Range
// @Failure 404 {object} middleware.ErrorResponse
// @Router /ranges/{id} [get]
func (h *CatalogHandler) GetRange(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return domain.NewNotFoundError("Range not found")
	}
	r, err := h.service.GetRange(id)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

// ListConcepts godoc
// @Summary List concepts
// @Description Summaries without the long-form content.
// @Tags concepts
// @Produce json
// @Success 200 {array} domain.ConceptSummary
// @Router /concepts [get]
func (h *CatalogHandler) ListConcepts(c *fiber.Ctx) error {
	return c.JSON(h.service.ListConcepts())
}

// GetConcept godoc
// @Summary Get a concept
// @Tags concepts
// @Produce json
// @Param id path string true "Concept slug"
// @Success 200 {object} domain.Concept
// @Failure 404 {object} middleware.ErrorResponse
// @Router /concepts/{id} [get]
func (h *CatalogHandler) GetConcept(c *fiber.Ctx) error {
	concept, err := h.service.GetConcept(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(concept)
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *fiber.Ctx, name string) (int, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
