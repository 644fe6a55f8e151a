package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetStats_LoadsAndCaches(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	attemptRepo := new(MockAttemptRepository)
	statsCache := new(MockStatsCache)
	svc := NewStatsService(newTestCatalog(t), userRepo, attemptRepo, statsCache)

	user := newTestUser("alice")
	user.EloOverall = 1160
	userRepo.On("GetUserByID", ctx, "alice").Return(user, nil).Once()
	attemptRepo.On("GetAttemptSummary", ctx, "alice").Return(&domain.AttemptSummary{
		QuizAttempts:    3,
		CorrectAttempts: 2,
		RangeAttempts:   4,
		DailyChallenges: 1,
		Categories: []domain.CategoryCount{
			{Category: domain.CategoryFlop, Total: 2, Correct: 1},
			{Category: domain.CategoryPreflop, Total: 1, Correct: 1},
		},
	}, nil).Once()
	attemptRepo.On("GetRecentQuizAttempts", ctx, "alice", RecentActivityLimit).Return([]domain.QuizAttempt{
		{ID: "a3", ScenarioID: 2, Category: domain.CategoryFlop, IsCorrect: true, RatingChange: 12, CreatedAt: testNow},
		{ID: "a2", ScenarioID: 999, Category: domain.CategoryFlop, CreatedAt: testNow},
	}, nil).Once()
	statsCache.On("Get", ctx, "alice").Return(nil, ErrStatsNotCached).Once()
	statsCache.On("Generation", ctx, "alice").Return("g1", nil).Once()
	statsCache.On("Put", ctx, "alice", "g1", mock.AnythingOfType("*dto.StatsResponse")).Return(nil).Once()

	stats, err := svc.GetStats(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, domain.TierGrinder, stats.Tier)
	assert.Equal(t, 8, stats.TotalAttempts)
	assert.Equal(t, 3, stats.QuizAttempts)
	assert.Equal(t, 2, stats.CorrectAttempts)
	assert.Equal(t, 67, stats.Accuracy)
	assert.Equal(t, 4, stats.RangeAttempts)
	assert.Equal(t, 1, stats.DailyChallenges)
	assert.Equal(t, domain.CategoryFlop, stats.FavoriteCategory)
	assert.Equal(t, []dto.CategoryStat{
		{Category: domain.CategoryFlop, Total: 2, Correct: 1, Accuracy: 50},
		{Category: domain.CategoryPreflop, Total: 1, Correct: 1, Accuracy: 100},
	}, stats.CategoryStats)
	require.Len(t, stats.RecentActivity, 2)
	assert.Equal(t, "Dry flop c-bet", stats.RecentActivity[0].ScenarioTitle)
	assert.Equal(t, "Unknown", stats.RecentActivity[1].ScenarioTitle)
	assert.Equal(t, 1160, stats.User.EloOverall)

	userRepo.AssertExpectations(t)
	attemptRepo.AssertExpectations(t)
	statsCache.AssertExpectations(t)
}

func TestStatsService_GetStats_NewUser(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	attemptRepo := new(MockAttemptRepository)
	svc := NewStatsService(newTestCatalog(t), userRepo, attemptRepo, NewStatsCacheService(nil, 0))

	userRepo.On("GetUserByID", ctx, "fresh").Return(newTestUser("fresh"), nil)
	attemptRepo.On("GetAttemptSummary", ctx, "fresh").Return(&domain.AttemptSummary{}, nil)
	attemptRepo.On("GetRecentQuizAttempts", ctx, "fresh", RecentActivityLimit).Return([]domain.QuizAttempt{}, nil)

	stats, err := svc.GetStats(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, domain.TierFish, stats.Tier)
	assert.Equal(t, 0, stats.Accuracy)
	assert.Equal(t, 0, stats.TotalAttempts)
	assert.Equal(t, domain.NoFavoriteCategory, stats.FavoriteCategory)
	assert.NotNil(t, stats.CategoryStats)
	assert.NotNil(t, stats.RecentActivity)
}

func TestStatsService_GetStats_CacheHit(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	attemptRepo := new(MockAttemptRepository)
	statsCache := new(MockStatsCache)
	svc := NewStatsService(newTestCatalog(t), userRepo, attemptRepo, statsCache)

	cached := &dto.StatsResponse{Tier: domain.TierShark, TotalAttempts: 40}
	statsCache.On("Get", ctx, "alice").Return(cached, nil).Once()

	stats, err := svc.GetStats(ctx, "alice")
	require.NoError(t, err)
	assert.Same(t, cached, stats)
	userRepo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	attemptRepo.AssertNotCalled(t, "GetAttemptSummary", mock.Anything, mock.Anything)
}

func TestStatsService_GetStats_CacheErrorFallsThrough(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	attemptRepo := new(MockAttemptRepository)
	statsCache := new(MockStatsCache)
	svc := NewStatsService(newTestCatalog(t), userRepo, attemptRepo, statsCache)

	statsCache.On("Get", ctx, "alice").Return(nil, errors.New("redis timeout")).Once()
	statsCache.On("Generation", ctx, "alice").Return("", errors.New("redis timeout")).Once()
	userRepo.On("GetUserByID", ctx, "alice").Return(newTestUser("alice"), nil)
	attemptRepo.On("GetAttemptSummary", ctx, "alice").Return(&domain.AttemptSummary{}, nil)
	attemptRepo.On("GetRecentQuizAttempts", ctx, "alice", RecentActivityLimit).Return(nil, nil)

	stats, err := svc.GetStats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", stats.User.ID)
	statsCache.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStatsService_GetStats_SubmitDuringLoadIsNotCached(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	attemptRepo := new(MockAttemptRepository)
	statsCache := NewStatsCacheService(newMemCache(), 5*time.Minute)
	svc := NewStatsService(newTestCatalog(t), userRepo, attemptRepo, statsCache)

	userRepo.On("GetUserByID", ctx, "alice").Return(newTestUser("alice"), nil)
	attemptRepo.On("GetRecentQuizAttempts", ctx, "alice", RecentActivityLimit).Return([]domain.QuizAttempt{}, nil)
	// a submit commits and invalidates after the summary was read
	attemptRepo.On("GetAttemptSummary", ctx, "alice").
		Run(func(mock.Arguments) { invalidateStats(ctx, statsCache, "alice") }).
		Return(&domain.AttemptSummary{QuizAttempts: 1}, nil).Once()
	attemptRepo.On("GetAttemptSummary", ctx, "alice").
		Return(&domain.AttemptSummary{QuizAttempts: 2}, nil).Once()

	stale, err := svc.GetStats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, stale.QuizAttempts)

	fresh, err := svc.GetStats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.QuizAttempts)

	cached, err := svc.GetStats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, cached.QuizAttempts)
	attemptRepo.AssertExpectations(t)
}

func TestStatsService_GetStats_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		statsCache := new(MockStatsCache)
		svc := NewStatsService(newTestCatalog(t), userRepo, new(MockAttemptRepository), statsCache)

		statsCache.On("Get", ctx, "ghost").Return(nil, ErrStatsNotCached)
		statsCache.On("Generation", ctx, "ghost").Return(initialGeneration, nil)
		userRepo.On("GetUserByID", ctx, "ghost").Return(nil, nil)

		_, err := svc.GetStats(ctx, "ghost")
		var de *domain.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domain.CodeUserNotFound, de.Code)
		statsCache.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("aggregation failure", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		attemptRepo := new(MockAttemptRepository)
		svc := NewStatsService(newTestCatalog(t), userRepo, attemptRepo, NewStatsCacheService(nil, 0))

		userRepo.On("GetUserByID", ctx, "alice").Return(newTestUser("alice"), nil)
		attemptRepo.On("GetAttemptSummary", ctx, "alice").Return(nil, errors.New("ORA-12541"))

		_, err := svc.GetStats(ctx, "alice")
		var de *domain.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domain.CodeInternal, de.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := NewStatsService(newTestCatalog(t), new(MockUserRepository), new(MockAttemptRepository), NewStatsCacheService(nil, 0))
		_, err := svc.GetStats(ctx, "bad id!")
		var verrs domain.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})
}
