package middleware

import (
	"strconv"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	ValidatedPaginationKey = "validated_pagination"
	ValidatedUserIDKey     = "validated_user_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateUserIDParam checks the named path parameter as a user id.
func (vm *ValidationMiddleware) ValidateUserIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params(param)
		if errs := vm.validator.ValidateUserID(param, userID); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedUserIDKey, userID)
		return c.Next()
	}
}

// ValidatePagination parses limit and page query values. Missing values stay 0 and are defaulted by the service.
func (vm *ValidationMiddleware) ValidatePagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := parseQueryInt(c, "limit")
		if err != nil {
			return err
		}
		page, err := parseQueryInt(c, "page")
		if err != nil {
			return err
		}

		if errs := vm.validator.ValidatePagination(limit, page); len(errs) > 0 {
			return errs
		}

		c.Locals(ValidatedPaginationKey, dto.Pagination{Limit: limit, Page: page})
		return c.Next()
	}
}

// PaginationFrom returns the pagination stored by ValidatePagination.
func PaginationFrom(c *fiber.Ctx) dto.Pagination {
	p, _ := c.Locals(ValidatedPaginationKey).(dto.Pagination)
	return p
}

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError(key, raw)}
	}
	return n, nil
}
