package service

import (
	"context"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/logger"
	"rangeiq/internal/util"
	"rangeiq/internal/validation"

	"go.uber.org/zap"
)

// QuizService grades scenario answers and updates ratings.
type QuizService interface {
	SubmitAnswer(ctx context.Context, req dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error)
}

type quizServiceImpl struct {
	catalog     domain.Catalog
	userRepo    domain.UserRepository
	attemptRepo domain.AttemptRepository
	txManager   domain.TransactionManager
	statsCache  StatsCacheService
	clock       domain.Clock
	validator   *validation.Validator
}

func NewQuizService(
	catalog domain.Catalog,
	userRepo domain.UserRepository,
	attemptRepo domain.AttemptRepository,
	txManager domain.TransactionManager,
	statsCache StatsCacheService,
	clock domain.Clock,
) QuizService {
	return &quizServiceImpl{
		catalog:     catalog,
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
		txManager:   txManager,
		statsCache:  statsCache,
		clock:       clock,
		validator:   validation.NewValidator(),
	}
}

// SubmitAnswer applies the outcome to the user's ratings and records the attempt in one transaction.
func (s *quizServiceImpl) SubmitAnswer(ctx context.Context, req dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error) {
	if errs := s.validator.ValidateQuizSubmitRequest(req); len(errs) > 0 {
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

		updated, ratingChange = domain.ApplyOutcome(*user, scenario, isCorrect, now)
		if err := s.userRepo.UpdateUserRating(txCtx, &updated); err != nil {
			return err
		}

		return s.attemptRepo.CreateQuizAttempt(txCtx, &domain.QuizAttempt{
			ID:            util.NewULID(),
			UserID:        req.UserID,
			ScenarioID:    scenario.ID,
			UserAnswer:    req.Answer,
			CorrectAnswer: scenario.CorrectAnswer,
			IsCorrect:     isCorrect,
			RatingChange:  ratingChange,
			Category:      scenario.Category,
			CreatedAt:     now,
		})
	})
	if err != nil {
		return nil, asDomainError(err, "failed to record quiz answer")
	}
	invalidateStats(ctx, s.statsCache, req.UserID)

	logger.Get().Info("Quiz answer recorded",
		zap.String("userID", req.UserID),
		zap.Int("scenarioID", scenario.ID),
		zap.Bool("isCorrect", isCorrect),
		zap.Int("ratingChange", ratingChange),
	)

	return &dto.QuizSubmitResponse{
		IsCorrect:     isCorrect,
		CorrectAnswer: scenario.CorrectAnswer,
		Explanation:   scenario.Explanation,
		ConceptRef:    scenario.ConceptRef,
		RatingChange:  ratingChange,
		RaiseSize:     scenario.RaiseSize,
		User:          ToUserResponse(&updated),
	}, nil
}
