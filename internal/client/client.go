// Package client talks to the RangeIQ API from Go programs.
package client

import (
	"context"
	"errors"
	"fmt"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
)

// ErrUnavailable is returned when the backend cannot be reached.
var ErrUnavailable = errors.New("rangeiq backend unavailable")

// ErrDemoMode is returned by the demo client for operations that need persisted state.
var ErrDemoMode = errors.New("not available in demo mode")

// API is the set of calls a front end makes against the backend.
type API interface {
	CreateUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	ListScenarios(ctx context.Context, filter domain.ScenarioFilter) ([]domain.Scenario, error)
	GetScenario(ctx context.Context, id int) (*domain.Scenario, error)
	ListRanges(ctx context.Context) ([]domain.Range, error)
	GetRange(ctx context.Context, id int) (*domain.Range, error)
	ListConcepts(ctx context.Context) ([]domain.ConceptSummary, error)
	GetConcept(ctx context.Context, id string) (*domain.Concept, error)
	SubmitAnswer(ctx context.Context, req dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error)
	SubmitRange(ctx context.Context, req dto.RangeSubmitRequest) (*dto.RangeSubmitResponse, error)
	GetDaily(ctx context.Context) (*domain.DailySelection, error)
	SubmitDaily(ctx context.Context, req dto.DailySubmitRequest) (*dto.DailySubmitResponse, error)
	GetStats(ctx context.Context, userID string) (*dto.StatsResponse, error)
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rangeiq api: %d %s: %s", e.Status, e.Code, e.Message)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}
