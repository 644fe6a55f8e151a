package service

import (
	"context"
	"time"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUserIfAbsent(ctx context.Context, user *domain.User) (*domain.User, bool, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByIDForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUserRating(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- MockAttemptRepository ---
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) CreateQuizAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) CreateRangeAttempt(ctx context.Context, attempt *domain.RangeAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetQuizAttemptsByUserID(ctx context.Context, userID string, pagination dto.Pagination) ([]domain.QuizAttempt, int, error) {
	args := m.Called(ctx, userID, pagination)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.QuizAttempt), args.Int(1), args.Error(2)
}

func (m *MockAttemptRepository) GetRecentQuizAttempts(ctx context.Context, userID string, limit int) ([]domain.QuizAttempt, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizAttempt), args.Error(1)
}

func (m *MockAttemptRepository) GetAttemptSummary(ctx context.Context, userID string) (*domain.AttemptSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttemptSummary), args.Error(1)
}

// --- MockDailyCompletionRepository ---
type MockDailyCompletionRepository struct {
	mock.Mock
}

func (m *MockDailyCompletionRepository) CreateDailyCompletion(ctx context.Context, c *domain.DailyCompletion) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockDailyCompletionRepository) GetDailyCompletion(ctx context.Context, userID, date string) (*domain.DailyCompletion, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyCompletion), args.Error(1)
}

// --- MockTransactionManager ---
// Runs fn directly and records whether it was committed.
type MockTransactionManager struct {
	Calls     int
	Committed int
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if err := fn(ctx); err != nil {
		return err
	}
	m.Committed++
	return nil
}

// --- MockStatsCache ---
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatsResponse), args.Error(1)
}

func (m *MockStatsCache) Generation(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockStatsCache) Put(ctx context.Context, userID, generation string, stats *dto.StatsResponse) error {
	args := m.Called(ctx, userID, generation, stats)
	return args.Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
