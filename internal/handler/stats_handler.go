package handler

import (
	"rangeiq/internal/middleware"
	"rangeiq/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	statsService  service.StatsService
	healthService service.HealthService
}

func NewStatsHandler(statsService service.StatsService, healthService service.HealthService) *StatsHandler {
	return &StatsHandler{statsService: statsService, healthService: healthService}
}

// GetStats godoc
// @Summary Player profile
// @Description Tier, accuracy, per-category stats, recent activity and counters.
// @Tags stats
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.StatsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /stats/{userId} [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := middleware.EnsureOwner(c, userID); err != nil {
		return err
	}
	stats, err := h.statsService.GetStats(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *StatsHandler) Health(c *fiber.Ctx) error {
	resp := h.healthService.Check(c.Context())
	if resp.Database != "up" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
