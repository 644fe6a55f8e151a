package service

import (
	"context"
	"errors"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/logger"
	"rangeiq/internal/util"
	"rangeiq/internal/validation"

	"go.uber.org/zap"
)

// DailyService serves the shared daily challenge.
type DailyService interface {
	GetDaily(ctx context.Context) (*domain.DailySelection, error)
	CheckCompletion(ctx context.Context, userID, date string) (*dto.DailyCheckResponse, error)
	SubmitDaily(ctx context.Context, req dto.DailySubmitRequest) (*dto.DailySubmitResponse, error)
}

type dailyServiceImpl struct {
	catalog    domain.Catalog
	userRepo   domain.UserRepository
	dailyRepo  domain.DailyCompletionRepository
	txManager  domain.TransactionManager
	statsCache StatsCacheService
	clock      domain.Clock
	validator  *validation.Validator
}

func NewDailyService(
	catalog domain.Catalog,
	userRepo domain.UserRepository,
	dailyRepo domain.DailyCompletionRepository,
	txManager domain.TransactionManager,
	statsCache StatsCacheService,
	clock domain.Clock,
) DailyService {
	return &dailyServiceImpl{
		catalog:    catalog,
		userRepo:   userRepo,
		dailyRepo:  dailyRepo,
		txManager:  txManager,
		statsCache: statsCache,
		clock:      clock,
		validator:  validation.NewValidator(),
	}
}

func (s *dailyServiceImpl) GetDaily(ctx context.Context) (*domain.DailySelection, error) {
	selection, err := domain.SelectDaily(s.catalog.Scenarios(domain.ScenarioFilter{}), s.clock.Now())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCatalog) {
			return nil, domain.NewNotFoundError("No daily challenge available")
		}
		return nil, domain.NewInternalError("failed to select daily challenge", err)
	}
	return selection, nil
}

// CheckCompletion reports whether userID already played date (today when empty).
func (s *dailyServiceImpl) CheckCompletion(ctx context.Context, userID, date string) (*dto.DailyCheckResponse, error) {
	if errs := s.validator.ValidateUserID("userId", userID); len(errs) > 0 {
		return nil, errs
	}
	date, errs := s.resolveDate(date)
	if len(errs) > 0 {
		return nil, errs
	}

	completion, err := s.dailyRepo.GetDailyCompletion(ctx, userID, date)
	if err != nil {
		return nil, asDomainError(err, "failed to check daily completion")
	}
	return &dto.DailyCheckResponse{
		Completed:  completion != nil,
		Completion: toDailyCompletionItem(completion),
	}, nil
}

// SubmitDaily grades the answer once per (user, date). The lock on the user row
// serializes submissions of one user; the unique constraint backs up the check.
func (s *dailyServiceImpl) SubmitDaily(ctx context.Context, req dto.DailySubmitRequest) (*dto.DailySubmitResponse, error) {
	if errs := s.validator.ValidateDailySubmitRequest(req); len(errs) > 0 {
		return nil, errs
	}
	date, errs := s.resolveDate(req.Date)
	if len(errs) > 0 {
		return nil, errs
	}

	scenario, ok := s.catalog.Scenario(req.ScenarioID)
	if !ok {
		return nil, domain.NewScenarioNotFoundError(req.ScenarioID)
	}

	now := s.clock.Now()
	isCorrect := scenario.IsCorrect(req.Answer)

	var (
		updated      domain.User
		ratingChange int
	)
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.GetUserByIDForUpdate(txCtx, req.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.NewUserNotFoundError(req.UserID)
		}

		existing, err := s.dailyRepo.GetDailyCompletion(txCtx, req.UserID, date)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewDailyAlreadyCompletedError(date)
		}

		updated, ratingChange = domain.ApplyOutcome(*user, scenario, isCorrect, now)
		if err := s.userRepo.UpdateUserRating(txCtx, &updated); err != nil {
			return err
		}

		return s.dailyRepo.CreateDailyCompletion(txCtx, &domain.DailyCompletion{
			ID:            util.NewULID(),
			UserID:        req.UserID,
			ChallengeDate: date,
			ScenarioID:    scenario.ID,
			UserAnswer:    req.Answer,
			CorrectAnswer: scenario.CorrectAnswer,
			IsCorrect:     isCorrect,
			RatingChange:  ratingChange,
			CreatedAt:     now,
		})
	})
	if err != nil {
		return nil, asDomainError(err, "failed to record daily challenge")
	}
	invalidateStats(ctx, s.statsCache, req.UserID)

	logger.Get().Info("Daily challenge recorded",
		zap.String("userID", req.UserID),
		zap.String("date", date),
		zap.Bool("isCorrect", isCorrect),
	)

	return &dto.DailySubmitResponse{
		IsCorrect:     isCorrect,
		CorrectAnswer: scenario.CorrectAnswer,
		Explanation:   scenario.Explanation,
		ConceptRef:    scenario.ConceptRef,
		RatingChange:  ratingChange,
		User:          ToUserResponse(&updated),
	}, nil
}

func (s *dailyServiceImpl) resolveDate(date string) (string, domain.ValidationErrors) {
	if date == "" {
		return s.clock.Now().Format(domain.DateLayout), nil
	}
	if errs := s.validator.ValidateDate("date", date); len(errs) > 0 {
		return "", errs
	}
	return date, nil
}
