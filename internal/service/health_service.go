package service

import (
	"context"
	"time"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/logger"

	"go.uber.org/zap"
)

const (
	healthStatusOK       = "ok"
	healthStatusDegraded = "degraded"
	componentUp          = "up"
	componentDown        = "down"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthService reports whether the store and the cache are reachable.
type HealthService interface {
	Check(ctx context.Context) dto.HealthResponse
}

type healthServiceImpl struct {
	db    Pinger
	cache domain.Cache
}

func NewHealthService(db Pinger, cache domain.Cache) HealthService {
	return &healthServiceImpl{db: db, cache: cache}
}

// Check degrades only on the database. The cache is optional.
func (s *healthServiceImpl) Check(ctx context.Context) dto.HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: healthStatusOK, Database: componentUp, Cache: componentUp}
	if err := s.db.PingContext(ctx); err != nil {
		logger.Get().Error("Database health check failed", zap.Error(err))
		resp.Status = healthStatusDegraded
		resp.Database = componentDown
	}
	if s.cache == nil || s.cache.Ping(ctx) != nil {
		resp.Cache = componentDown
	}
	return resp
}
