package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"

	// Field validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Catalog and store lookups
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodeScenarioNotFound ErrorCode = "SCENARIO_NOT_FOUND"
	CodeRangeNotFound    ErrorCode = "RANGE_NOT_FOUND"
	CodeConceptNotFound  ErrorCode = "CONCEPT_NOT_FOUND"

	// Daily challenge
	CodeDailyAlreadyCompleted ErrorCode = "DAILY_ALREADY_COMPLETED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a key/value pair that is echoed in the error response details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewForbiddenError(message string) *DomainError {
	return NewError(CodeForbidden, message, nil)
}

func NewUserNotFoundError(userID string) *DomainError {
	return NewError(CodeUserNotFound, "User not found", nil).WithContext("userId", userID)
}

func NewScenarioNotFoundError(scenarioID int) *DomainError {
	return NewError(CodeScenarioNotFound, "Scenario not found", nil).WithContext("scenarioId", scenarioID)
}

func NewRangeNotFoundError(rangeID int) *DomainError {
	return NewError(CodeRangeNotFound, "Range not found", nil).WithContext("rangeId", rangeID)
}

func NewConceptNotFoundError(conceptID string) *DomainError {
	return NewError(CodeConceptNotFound, "Concept not found", nil).WithContext("conceptId", conceptID)
}

func NewDailyAlreadyCompletedError(date string) *DomainError {
	return NewError(CodeDailyAlreadyCompleted, "Already completed today's challenge", nil).WithContext("date", date)
}

// IsNotFound reports whether err carries one of the not-found codes.
func IsNotFound(err error) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}
	switch de.Code {
	case CodeNotFound, CodeUserNotFound, CodeScenarioNotFound, CodeRangeNotFound, CodeConceptNotFound:
		return true
	}
	return false
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field problem found in one request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has an invalid format", field),
		Value:   value,
	}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		Value:   value,
	}
}
