package validation

import (
	"math"
	"regexp"
	"strings"
	"time"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
)

const (
	MaxUserIDLength = 64
	MaxAnswerLength = 100
	MaxPageLimit    = 100
)

var validUserID = regexp.MustCompile(`^[A-Za-z0-9_.:@-]+$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUserID checks a client-supplied user id.
func (v *Validator) ValidateUserID(field, userID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(userID) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if len(userID) > MaxUserIDLength {
		errors = append(errors, domain.NewOutOfRangeError(field, len(userID), 1, MaxUserIDLength))
	} else if !validUserID.MatchString(userID) {
		errors = append(errors, domain.NewInvalidFormatError(field, userID))
	}

	return errors
}

// ValidateCreateUserRequest accepts an empty id, which means "generate one".
func (v *Validator) ValidateCreateUserRequest(req dto.CreateUserRequest) domain.ValidationErrors {
	if req.ID == "" {
		return nil
	}
	return v.ValidateUserID("id", req.ID)
}

// ValidateQuizSubmitRequest validates the quiz answer request
func (v *Validator) ValidateQuizSubmitRequest(req dto.QuizSubmitRequest) domain.ValidationErrors {
	errors := v.ValidateUserID("userId", req.UserID)
	errors = append(errors, validateID("scenarioId", req.ScenarioID)...)
	errors = append(errors, validateAnswer(req.Answer)...)
	return errors
}

// ValidateRangeSubmitRequest checks ids and that every selected hand is one of the 169 grid labels.
func (v *Validator) ValidateRangeSubmitRequest(req dto.RangeSubmitRequest) domain.ValidationErrors {
	errors := v.ValidateUserID("userId", req.UserID)
	errors = append(errors, validateID("rangeId", req.RangeID)...)

	if len(req.SelectedHands) > domain.GridSize*domain.GridSize*4 {
		errors = append(errors, domain.NewOutOfRangeError("selectedHands", len(req.SelectedHands), 0, domain.GridSize*domain.GridSize*4))
		return errors
	}
	if _, invalid := domain.NormalizeHands(req.SelectedHands); len(invalid) > 0 {
		errors = append(errors, domain.NewInvalidFormatError("selectedHands", invalid))
	}
	return errors
}

// ValidateDailySubmitRequest validates the daily challenge answer. An empty date is allowed.
func (v *Validator) ValidateDailySubmitRequest(req dto.DailySubmitRequest) domain.ValidationErrors {
	errors := v.ValidateUserID("userId", req.UserID)
	errors = append(errors, validateID("scenarioId", req.ScenarioID)...)
	errors = append(errors, validateAnswer(req.Answer)...)
	if req.Date != "" {
		errors = append(errors, v.ValidateDate("date", req.Date)...)
	}
	return errors
}

// ValidateDate checks a YYYY-MM-DD calendar date.
func (v *Validator) ValidateDate(field, date string) domain.ValidationErrors {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, date)}
	}
	return nil
}

// ValidatePagination checks the raw limit and page query values.
func (v *Validator) ValidatePagination(limit, page int) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if limit < 0 || limit > MaxPageLimit {
		errors = append(errors, domain.NewOutOfRangeError("limit", limit, 1, MaxPageLimit))
	}
	if page < 0 {
		errors = append(errors, domain.NewOutOfRangeError("page", page, 1, math.MaxInt32))
	}
	return errors
}

// Helper functions for validation

func validateID(field string, id int) domain.ValidationErrors {
	if id == 0 {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if id < 0 {
		return domain.ValidationErrors{domain.NewOutOfRangeError(field, id, 1, math.MaxInt32)}
	}
	return nil
}

func validateAnswer(answer string) domain.ValidationErrors {
	if strings.TrimSpace(answer) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("answer")}
	}
	if len(answer) > MaxAnswerLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError("answer", len(answer), 1, MaxAnswerLength)}
	}
	return nil
}
