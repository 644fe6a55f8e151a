package service

import (
	"context"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/util"
	"rangeiq/internal/validation"
)

// RangeService scores range-builder submissions.
type RangeService interface {
	SubmitRange(ctx context.Context, req dto.RangeSubmitRequest) (*dto.RangeSubmitResponse, error)
}

type rangeServiceImpl struct {
	catalog     domain.Catalog
	userRepo    domain.UserRepository
	attemptRepo domain.AttemptRepository
	statsCache  StatsCacheService
	clock       domain.Clock
	validator   *validation.Validator
}

func NewRangeService(
	catalog domain.Catalog,
	userRepo domain.UserRepository,
	attemptRepo domain.AttemptRepository,
	statsCache StatsCacheService,
	clock domain.Clock,
) RangeService {
	return &rangeServiceImpl{
		catalog:     catalog,
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
		statsCache:  statsCache,
		clock:       clock,
		validator:   validation.NewValidator(),
	}
}

// SubmitRange compares the selection with the reference range and stores the attempt.
// Ratings are not affected.
func (s *rangeServiceImpl) SubmitRange(ctx context.Context, req dto.RangeSubmitRequest) (*dto.RangeSubmitResponse, error) {
	if errs := s.validator.ValidateRangeSubmitRequest(req); len(errs) > 0 {
		return nil, errs
	}

	reference, ok := s.catalog.Range(req.RangeID)
	if !ok {
		return nil, domain.NewRangeNotFoundError(req.RangeID)
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, asDomainError(err, "failed to get user")
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(req.UserID)
	}

	selected, _ := domain.NormalizeHands(req.SelectedHands)
	score := domain.ScoreRange(reference.Hands, selected)

	err = s.attemptRepo.CreateRangeAttempt(ctx, &domain.RangeAttempt{
		ID:            util.NewULID(),
		UserID:        req.UserID,
		RangeID:       reference.ID,
		SelectedHands: selected,
		OverlapScore:  score.OverlapScore,
		CreatedAt:     s.clock.Now(),
	})
	if err != nil {
		return nil, asDomainError(err, "failed to record range attempt")
	}
	invalidateStats(ctx, s.statsCache, req.UserID)

	return &dto.RangeSubmitResponse{
		OverlapScore:        score.OverlapScore,
		CorrectHands:        score.CorrectHands,
		MissedHands:         score.MissedHands,
		ExtraHands:          score.ExtraHands,
		TotalCorrectInRange: len(reference.Hands),
		Explanation:         reference.Explanation,
	}, nil
}
