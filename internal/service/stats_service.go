package service

import (
	"context"
	"errors"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/logger"
	"rangeiq/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RecentActivityLimit is the number of quiz attempts listed in a profile.
const RecentActivityLimit = 5

const unknownScenarioTitle = "Unknown"

// StatsService builds the aggregated player profile.
type StatsService interface {
	GetStats(ctx context.Context, userID string) (*dto.StatsResponse, error)
}

type statsServiceImpl struct {
	catalog     domain.Catalog
	userRepo    domain.UserRepository
	attemptRepo domain.AttemptRepository
	statsCache  StatsCacheService
	validator   *validation.Validator
	group       singleflight.Group
}

func NewStatsService(
	catalog domain.Catalog,
	userRepo domain.UserRepository,
	attemptRepo domain.AttemptRepository,
	statsCache StatsCacheService,
) StatsService {
	return &statsServiceImpl{
		catalog:     catalog,
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
		statsCache:  statsCache,
		validator:   validation.NewValidator(),
	}
}

// GetStats serves from the cache when possible. Concurrent misses for one user share a single load.
func (s *statsServiceImpl) GetStats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	if errs := s.validator.ValidateUserID("userId", userID); len(errs) > 0 {
		return nil, errs
	}

	cached, err := s.statsCache.Get(ctx, userID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrStatsNotCached) {
		logger.Get().Warn("Stats cache read failed", zap.String("userID", userID), zap.Error(err))
	}

	v, err, _ := s.group.Do(userID, func() (interface{}, error) {
		// read before loading: a submit committed mid-load retires this generation
		gen, genErr := s.statsCache.Generation(ctx, userID)
		stats, err := s.loadStats(ctx, userID)
		if err != nil {
			return nil, err
		}
		if genErr != nil {
			logger.Get().Warn("Stats cache generation unavailable, skipping cache", zap.String("userID", userID), zap.Error(genErr))
			return stats, nil
		}
		if err := s.statsCache.Put(ctx, userID, gen, stats); err != nil {
			logger.Get().Warn("Failed to cache stats", zap.String("userID", userID), zap.Error(err))
		}
		return stats, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*dto.StatsResponse), nil
}

func (s *statsServiceImpl) loadStats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, asDomainError(err, "failed to get user")
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}

	summary, err := s.attemptRepo.GetAttemptSummary(ctx, userID)
	if err != nil {
		return nil, asDomainError(err, "failed to aggregate attempts")
	}
	recent, err := s.attemptRepo.GetRecentQuizAttempts(ctx, userID, RecentActivityLimit)
	if err != nil {
		return nil, asDomainError(err, "failed to get recent attempts")
	}

	categoryStats := make([]dto.CategoryStat, 0, len(summary.Categories))
	for _, c := range summary.Categories {
		categoryStats = append(categoryStats, dto.CategoryStat{
			Category: c.Category,
			Total:    c.Total,
			Correct:  c.Correct,
			Accuracy: domain.Accuracy(c.Correct, c.Total),
		})
	}

	activity := make([]dto.RecentActivityItem, 0, len(recent))
	for _, a := range recent {
		title := unknownScenarioTitle
		if scenario, ok := s.catalog.Scenario(a.ScenarioID); ok {
			title = scenario.Title
		}
		activity = append(activity, dto.RecentActivityItem{
			ID:            a.ID,
			ScenarioID:    a.ScenarioID,
			ScenarioTitle: title,
			UserAnswer:    a.UserAnswer,
			CorrectAnswer: a.CorrectAnswer,
			IsCorrect:     a.IsCorrect,
			RatingChange:  a.RatingChange,
			Category:      a.Category,
			CreatedAt:     a.CreatedAt,
		})
	}

	return &dto.StatsResponse{
		User:             ToUserResponse(user),
		Tier:             domain.Tier(user.EloOverall),
		TotalAttempts:    summary.QuizAttempts + summary.RangeAttempts + summary.DailyChallenges,
		QuizAttempts:     summary.QuizAttempts,
		CorrectAttempts:  summary.CorrectAttempts,
		Accuracy:         domain.Accuracy(summary.CorrectAttempts, summary.QuizAttempts),
		CategoryStats:    categoryStats,
		RecentActivity:   activity,
		RangeAttempts:    summary.RangeAttempts,
		DailyChallenges:  summary.DailyChallenges,
		FavoriteCategory: domain.FavoriteCategory(summary.Categories),
	}, nil
}
