package client

import (
	"context"
	"errors"
	"sync/atomic"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/logger"

	"go.uber.org/zap"
)

// FallbackClient forwards to a primary API and answers from a demo API
// whenever the primary reports ErrUnavailable. Backend errors such as a 404
// are returned as they are.
type FallbackClient struct {
	primary API
	demo    API
	inDemo  atomic.Bool
}

func NewFallbackClient(primary, demo API) *FallbackClient {
	return &FallbackClient{primary: primary, demo: demo}
}

// InDemoMode reports whether the last call was answered by the demo API.
func (f *FallbackClient) InDemoMode() bool {
	return f.inDemo.Load()
}

func fallback[T any](f *FallbackClient, op string, primary, demo func() (T, error)) (T, error) {
	v, err := primary()
	if err == nil || !errors.Is(err, ErrUnavailable) {
		f.inDemo.Store(false)
		return v, err
	}
	if !f.inDemo.Swap(true) {
		logger.Get().Warn("Backend unreachable, switching to demo content", zap.String("op", op), zap.Error(err))
	}
	return demo()
}

func (f *FallbackClient) CreateUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	return fallback(f, "CreateUser",
		func() (*dto.UserResponse, error) { return f.primary.CreateUser(ctx, userID) },
		func() (*dto.UserResponse, error) { return f.demo.CreateUser(ctx, userID) })
}

func (f *FallbackClient) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	return fallback(f, "GetUser",
		func() (*dto.UserResponse, error) { return f.primary.GetUser(ctx, userID) },
		func() (*dto.UserResponse, error) { return f.demo.GetUser(ctx, userID) })
}

func (f *FallbackClient) ListScenarios(ctx context.Context, filter domain.ScenarioFilter) ([]domain.Scenario, error) {
	return fallback(f, "ListScenarios",
		func() ([]domain.Scenario, error) { return f.primary.ListScenarios(ctx, filter) },
		func() ([]domain.Scenario, error) { return f.demo.ListScenarios(ctx, filter) })
}

func (f *FallbackClient) GetScenario(ctx context.Context, id int) (*domain.Scenario, error) {
	return fallback(f, "GetScenario",
		func() (*domain.Scenario, error) { return f.primary.GetScenario(ctx, id) },
		func() (*domain.Scenario, error) { return f.demo.GetScenario(ctx, id) })
}

func (f *FallbackClient) ListRanges(ctx context.Context) ([]domain.Range, error) {
	return fallback(f, "ListRanges",
		func() ([]domain.Range, error) { return f.primary.ListRanges(ctx) },
		func() ([]domain.Range, error) { return f.demo.ListRanges(ctx) })
}

func (f *FallbackClient) GetRange(ctx context.Context, id int) (*domain.Range, error) {
	return fallback(f, "GetRange",
		func() (*domain.Range, error) { return f.primary.GetRange(ctx, id) },
		func() (*domain.Range, error) { return f.demo.GetRange(ctx, id) })
}

func (f *FallbackClient) ListConcepts(ctx context.Context) ([]domain.ConceptSummary, error) {
	return fallback(f, "ListConcepts",
		func() ([]domain.ConceptSummary, error) { return f.primary.ListConcepts(ctx) },
		func() ([]domain.ConceptSummary, error) { return f.demo.ListConcepts(ctx) })
}

func (f *FallbackClient) GetConcept(ctx context.Context, id string) (*domain.Concept, error) {
	return fallback(f, "GetConcept",
		func() (*domain.Concept, error) { return f.primary.GetConcept(ctx, id) },
		func() (*domain.Concept, error) { return f.demo.GetConcept(ctx, id) })
}

func (f *FallbackClient) SubmitAnswer(ctx context.Context, req dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error) {
	return fallback(f, "SubmitAnswer",
		func() (*dto.QuizSubmitResponse, error) { return f.primary.SubmitAnswer(ctx, req) },
		func() (*dto.QuizSubmitResponse, error) { return f.demo.SubmitAnswer(ctx, req) })
}

func (f *FallbackClient) SubmitRange(ctx context.Context, req dto.RangeSubmitRequest) (*dto.RangeSubmitResponse, error) {
	return fallback(f, "SubmitRange",
		func() (*dto.RangeSubmitResponse, error) { return f.primary.SubmitRange(ctx, req) },
		func() (*dto.RangeSubmitResponse, error) { return f.demo.SubmitRange(ctx, req) })
}

func (f *FallbackClient) GetDaily(ctx context.Context) (*domain.DailySelection, error) {
	return fallback(f, "GetDaily",
		func() (*domain.DailySelection, error) { return f.primary.GetDaily(ctx) },
		func() (*domain.DailySelection, error) { return f.demo.GetDaily(ctx) })
}

func (f *FallbackClient) SubmitDaily(ctx context.Context, req dto.DailySubmitRequest) (*dto.DailySubmitResponse, error) {
	return fallback(f, "SubmitDaily",
		func() (*dto.DailySubmitResponse, error) { return f.primary.SubmitDaily(ctx, req) },
		func() (*dto.DailySubmitResponse, error) { return f.demo.SubmitDaily(ctx, req) })
}

func (f *FallbackClient) GetStats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	return fallback(f, "GetStats",
		func() (*dto.StatsResponse, error) { return f.primary.GetStats(ctx, userID) },
		func() (*dto.StatsResponse, error) { return f.demo.GetStats(ctx, userID) })
}

var _ API = (*FallbackClient)(nil)
