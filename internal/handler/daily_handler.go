package handler

import (
	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/middleware"
	"rangeiq/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DailyHandler struct {
	service service.DailyService
}

func NewDailyHandler(service service.DailyService) *DailyHandler {
	return &DailyHandler{service: service}
}

// GetDaily godoc
// @Summary Today's daily challenge
// @Tags daily
// @Produce json
// @Success 200 {object} domain.DailySelection
// @Failure 404 {object} middleware.ErrorResponse
// @Router /daily [get]
func (h *DailyHandler) GetDaily(c *fiber.Ctx) error {
	sel, err := h.service.GetDaily(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(sel)
}

// CheckCompletion godoc
// @Summary Check whether a user played the daily challenge
// @Tags daily
// @Produce json
// @Param userId path string true "User ID"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} dto.DailyCheckResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /daily/check/{userId} [get]
func (h *DailyHandler) CheckCompletion(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := middleware.EnsureOwner(c, userID); err != nil {
		return err
	}
	resp, err := h.service.CheckCompletion(c.Context(), userID, c.Query("date"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitDaily godoc
// @Summary Answer the daily challenge
// @Description Once per user and date. A second submission is rejected with DAILY_ALREADY_COMPLETED.
// @Tags daily
// @Accept json
// @Produce json
// @Param request body dto.DailySubmitRequest true "Answer"
// @Success 200 {object} dto.DailySubmitResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /daily/submit [post]
func (h *DailyHandler) SubmitDaily(c *fiber.Ctx) error {
	var req dto.DailySubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if err := middleware.EnsureOwner(c, req.UserID); err != nil {
		return err
	}

	resp, err := h.service.SubmitDaily(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
