package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rangeiq/internal/cache"
	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/logger"
	"rangeiq/internal/util"

	"go.uber.org/zap"
)

// ErrStatsNotCached is returned when no cached profile exists for a user.
var ErrStatsNotCached = errors.New("stats profile not found in cache")

// StatsCacheService caches aggregated stats profiles per user.
//
// Profiles are stored under the user's current generation. Invalidate starts a
// new generation, so a Put carrying a generation read before an invalidation
// writes a key that Get never reads again.
type StatsCacheService interface {
	Get(ctx context.Context, userID string) (*dto.StatsResponse, error)
	// Generation returns the user's current cache generation. Read it before
	// loading a profile and pass it to Put.
	Generation(ctx context.Context, userID string) (string, error)
	Put(ctx context.Context, userID, generation string, stats *dto.StatsResponse) error
	// Invalidate retires the cached profile after the user's data changed.
	Invalidate(ctx context.Context, userID string) error
}

// initialGeneration is used until a user's first invalidation.
const initialGeneration = "0"

type statsCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewStatsCacheService creates a cache over the given store; a nil store yields a no-op service.
func NewStatsCacheService(c domain.Cache, ttl time.Duration) StatsCacheService {
	if c == nil {
		logger.Get().Warn("StatsCacheService initialized with nil cache. Service will be no-op.")
		return &noopStatsCacheService{}
	}
	return &statsCacheServiceImpl{cache: c, ttl: ttl}
}

func statsCacheKey(userID, generation string) string {
	return cache.GenerateCacheKey("stats", "profile", userID, generation)
}

func statsGenerationKey(userID string) string {
	return cache.GenerateCacheKey("stats", "generation", userID)
}

// generationTTL keeps a generation alive longer than any profile written under
// the one before it; an expired generation falls back to initialGeneration.
func (s *statsCacheServiceImpl) generationTTL() time.Duration {
	if s.ttl <= 0 {
		return 0
	}
	return s.ttl + time.Hour
}

func (s *statsCacheServiceImpl) Generation(ctx context.Context, userID string) (string, error) {
	gen, err := s.cache.Get(ctx, statsGenerationKey(userID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return initialGeneration, nil
		}
		return "", fmt.Errorf("failed to get stats generation: %w", err)
	}
	return gen, nil
}

func (s *statsCacheServiceImpl) Get(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	gen, err := s.Generation(ctx, userID)
	if err != nil {
		return nil, err
	}
	key := statsCacheKey(userID, gen)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrStatsNotCached
		}
		return nil, fmt.Errorf("failed to get stats from cache: %w", err)
	}

	var stats dto.StatsResponse
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		logger.Get().Error("Failed to unmarshal cached stats", zap.Error(err), zap.String("userID", userID))
		// a corrupt entry is treated as a miss
		_ = s.cache.Delete(ctx, key)
		return nil, ErrStatsNotCached
	}
	return &stats, nil
}

func (s *statsCacheServiceImpl) Put(ctx context.Context, userID, generation string, stats *dto.StatsResponse) error {
	if stats == nil {
		return domain.NewInvalidInputError("cannot cache nil stats")
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := s.cache.Set(ctx, statsCacheKey(userID, generation), string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to store stats in cache: %w", err)
	}
	return nil
}

func (s *statsCacheServiceImpl) Invalidate(ctx context.Context, userID string) error {
	if err := s.cache.Set(ctx, statsGenerationKey(userID), util.NewULID(), s.generationTTL()); err != nil {
		return fmt.Errorf("failed to invalidate stats cache: %w", err)
	}
	return nil
}

type noopStatsCacheService struct{}

func (n *noopStatsCacheService) Get(context.Context, string) (*dto.StatsResponse, error) {
	return nil, ErrStatsNotCached
}

func (n *noopStatsCacheService) Generation(context.Context, string) (string, error) {
	return initialGeneration, nil
}

func (n *noopStatsCacheService) Put(context.Context, string, string, *dto.StatsResponse) error {
	return nil
}

func (n *noopStatsCacheService) Invalidate(context.Context, string) error { return nil }

// invalidateStats logs instead of failing: the submission is already committed.
func invalidateStats(ctx context.Context, c StatsCacheService, userID string) {
	if err := c.Invalidate(ctx, userID); err != nil {
		logger.Get().Warn("Failed to invalidate stats cache", zap.String("userID", userID), zap.Error(err))
	}
}
