package handler

import (
	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/logger"
	"rangeiq/internal/middleware"
	"rangeiq/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserTokenHeader carries the ownership token issued on user creation.
const UserTokenHeader = "X-User-Token"

type UserHandler struct {
	userService service.UserService
	authService service.AuthService
}

func NewUserHandler(userService service.UserService, authService service.AuthService) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

// CreateUser godoc
// @Summary Create or fetch a user
// @Description Creates the user if the id is unknown and returns the stored user. A missing id gets a generated one.
// @Description When tokens are enabled, X-User-Token is only returned to the call that created the user.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest false "User id"
// @Success 200 {object} dto.UserResponse
// @Header 200 {string} X-User-Token "Ownership token, only on creation and when tokens are enabled"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}
	}

	user, created, err := h.userService.CreateUser(c.Context(), req)
	if err != nil {
		return err
	}

	// an existing id never gets a new token
	if created && h.authService.Enabled() {
		token, err := h.authService.IssueToken(c.Context(), user.ID)
		if err != nil {
			logger.Get().Error("Failed to issue user token", zap.String("userID", user.ID), zap.Error(err))
			return domain.NewInternalError("failed to issue user token", err)
		}
		c.Set(UserTokenHeader, token)
	}
	return c.JSON(user)
}

// GetUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	if err := middleware.EnsureOwner(c, userID); err != nil {
		return err
	}
	user, err := h.userService.GetUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// GetUserAttempts godoc
// @Summary List a user's quiz attempts
// @Description Newest first.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} dto.UserAttemptsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/{id}/attempts [get]
func (h *UserHandler) GetUserAttempts(c *fiber.Ctx) error {
	userID := c.Params("id")
	if err := middleware.EnsureOwner(c, userID); err != nil {
		return err
	}
	resp, err := h.userService.GetUserAttempts(c.Context(), userID, middleware.PaginationFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
