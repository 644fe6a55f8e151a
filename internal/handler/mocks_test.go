package handler_test

import (
	"context"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
)

// --- Manual Mocks ---

type MockUserService struct {
	CreateUserFunc      func(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, bool, error)
	GetUserFunc         func(ctx context.Context, userID string) (*dto.UserResponse, error)
	GetUserAttemptsFunc func(ctx context.Context, userID string, pagination dto.Pagination) (*dto.UserAttemptsResponse, error)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, bool, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, req)
	}
	panic("MockUserService.CreateUserFunc not implemented")
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, userID)
	}
	panic("MockUserService.GetUserFunc not implemented")
}

func (m *MockUserService) GetUserAttempts(ctx context.Context, userID string, pagination dto.Pagination) (*dto.UserAttemptsResponse, error) {
	if m.GetUserAttemptsFunc != nil {
		return m.GetUserAttemptsFunc(ctx, userID, pagination)
	}
	panic("MockUserService.GetUserAttemptsFunc not implemented")
}

type MockCatalogService struct {
	ListScenariosFunc func(filter domain.ScenarioFilter) []domain.Scenario
	GetScenarioFunc   func(id int) (*domain.Scenario, error)
	ListRangesFunc    func() []domain.Range
	GetRangeFunc      func(id int) (*domain.Range, error)
	ListConceptsFunc  func() []domain.ConceptSummary
	GetConceptFunc    func(id string) (*domain.Concept, error)
}

func (m *MockCatalogService) ListScenarios(filter domain.ScenarioFilter) []domain.Scenario {
	if m.ListScenariosFunc != nil {
		return m.ListScenariosFunc(filter)
	}
	panic("MockCatalogService.ListScenariosFunc not implemented")
}

func (m *MockCatalogService) GetScenario(id int) (*domain.Scenario, error) {
	if m.GetScenarioFunc != nil {
		return m.GetScenarioFunc(id)
	}
	panic("MockCatalogService.GetScenarioFunc not implemented")
}

func (m *MockCatalogService) ListRanges() []domain.Range {
	if m.ListRangesFunc != nil {
		return m.ListRangesFunc()
	}
	panic("MockCatalogService.ListRangesFunc not implemented")
}

func (m *MockCatalogService) GetRange(id int) (*domain.Range, error) {
	if m.GetRangeFunc != nil {
		return m.GetRangeFunc(id)
	}
	panic("MockCatalogService.GetRangeFunc not implemented")
}

func (m *MockCatalogService) ListConcepts() []domain.ConceptSummary {
	if m.ListConceptsFunc != nil {
		return m.ListConceptsFunc()
	}
	panic("MockCatalogService.ListConceptsFunc not implemented")
}

func (m *MockCatalogService) GetConcept(id string) (*domain.Concept, error) {
	if m.GetConceptFunc != nil {
		return m.GetConceptFunc(id)
	}
	panic("MockCatalogService.GetConceptFunc not implemented")
}

type MockQuizService struct {
	SubmitAnswerFunc func(ctx context.Context, req dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error)
}

func (m *MockQuizService) SubmitAnswer(ctx context.Context, req dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error) {
	if m.SubmitAnswerFunc != nil {
		return m.SubmitAnswerFunc(ctx, req)
	}
	panic("MockQuizService.SubmitAnswerFunc not implemented")
}

type MockRangeService struct {
	SubmitRangeFunc func(ctx context.Context, req dto.RangeSubmitRequest) (*dto.RangeSubmitResponse, error)
}

func (m *MockRangeService) SubmitRange(ctx context.Context, req dto.RangeSubmitRequest) (*dto.RangeSubmitResponse, error) {
	if m.SubmitRangeFunc != nil {
		return m.SubmitRangeFunc(ctx, req)
	}
	panic("MockRangeService.SubmitRangeFunc not implemented")
}

type MockDailyService struct {
	GetDailyFunc        func(ctx context.Context) (*domain.DailySelection, error)
	CheckCompletionFunc func(ctx context.Context, userID, date string) (*dto.DailyCheckResponse, error)
	SubmitDailyFunc     func(ctx context.Context, req dto.DailySubmitRequest) (*dto.DailySubmitResponse, error)
}

func (m *MockDailyService) GetDaily(ctx context.Context) (*domain.DailySelection, error) {
	if m.GetDailyFunc != nil {
		return m.GetDailyFunc(ctx)
	}
	panic("MockDailyService.GetDailyFunc not implemented")
}

func (m *MockDailyService) CheckCompletion(ctx context.Context, userID, date string) (*dto.DailyCheckResponse, error) {
	if m.CheckCompletionFunc != nil {
		return m.CheckCompletionFunc(ctx, userID, date)
	}
	panic("MockDailyService.CheckCompletionFunc not implemented")
}

func (m *MockDailyService) SubmitDaily(ctx context.Context, req dto.DailySubmitRequest) (*dto.DailySubmitResponse, error) {
	if m.SubmitDailyFunc != nil {
		return m.SubmitDailyFunc(ctx, req)
	}
	panic("MockDailyService.SubmitDailyFunc not implemented")
}

type MockStatsService struct {
	GetStatsFunc func(ctx context.Context, userID string) (*dto.StatsResponse, error)
}

func (m *MockStatsService) GetStats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, userID)
	}
	panic("MockStatsService.GetStatsFunc not implemented")
}

type MockHealthService struct {
	Response dto.HealthResponse
}

func (m *MockHealthService) Check(ctx context.Context) dto.HealthResponse {
	return m.Response
}

type MockAuthService struct {
	EnabledValue    bool
	IssueTokenFunc  func(ctx context.Context, userID string) (string, error)
	ValidateJWTFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *MockAuthService) Enabled() bool { return m.EnabledValue }

func (m *MockAuthService) IssueToken(ctx context.Context, userID string) (string, error) {
	if m.IssueTokenFunc != nil {
		return m.IssueTokenFunc(ctx, userID)
	}
	panic("MockAuthService.IssueTokenFunc not implemented")
}

func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	panic("MockAuthService.ValidateJWTFunc not implemented")
}
