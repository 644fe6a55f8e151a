package handler

import (
	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/middleware"
	"rangeiq/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles scenario answers and range submissions.
type QuizHandler struct {
	quizService  service.QuizService
	rangeService service.RangeService
}

func NewQuizHandler(quizService service.QuizService, rangeService service.RangeService) *QuizHandler {
	return &QuizHandler{quizService: quizService, rangeService: rangeService}
}

// SubmitAnswer godoc
// @Summary Answer a scenario
// @Description Grades the answer, updates the user's ratings and streak and records the attempt.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizSubmitRequest true "Answer"
// @Success 200 {object} dto.QuizSubmitResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /quiz/submit [post]
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.QuizSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if err := middleware.EnsureOwner(c, req.UserID); err != nil {
		return err
	}

	resp, err := h.quizService.SubmitAnswer(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitRange godoc
// @Summary Submit a range
// @Description Scores the selected hands against the reference range. Ratings are not affected.
// @Tags ranges
// @Accept json
// @Produce json
// @Param request body dto.RangeSubmitRequest true "Selected hands"
// @Success 200 {object} dto.RangeSubmitResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /ranges/submit [post]
func (h *QuizHandler) SubmitRange(c *fiber.Ctx) error {
	var req dto.RangeSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if err := middleware.EnsureOwner(c, req.UserID); err != nil {
		return err
	}

	resp, err := h.rangeService.SubmitRange(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
