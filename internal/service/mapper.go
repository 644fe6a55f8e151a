package service

import (
	"errors"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
)

// ToUserResponse converts a domain user to its API representation.
func ToUserResponse(u *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:               u.ID,
		EloOverall:       u.EloOverall,
		EloPreflop:       u.EloPreflop,
		EloFlop:          u.EloFlop,
		EloTurn:          u.EloTurn,
		EloRiver:         u.EloRiver,
		Streak:           u.Streak,
		LastActivityDate: u.LastActivityDate,
		CreatedAt:        u.CreatedAt,
	}
}

func toQuizAttemptItem(a domain.QuizAttempt) dto.QuizAttemptItem {
	return dto.QuizAttemptItem{
		ID:            a.ID,
		ScenarioID:    a.ScenarioID,
		UserAnswer:    a.UserAnswer,
		CorrectAnswer: a.CorrectAnswer,
		IsCorrect:     a.IsCorrect,
		RatingChange:  a.RatingChange,
		Category:      a.Category,
		CreatedAt:     a.CreatedAt,
	}
}

func toDailyCompletionItem(c *domain.DailyCompletion) *dto.DailyCompletionItem {
	if c == nil {
		return nil
	}
	return &dto.DailyCompletionItem{
		ID:            c.ID,
		UserID:        c.UserID,
		ChallengeDate: c.ChallengeDate,
		ScenarioID:    c.ScenarioID,
		UserAnswer:    c.UserAnswer,
		CorrectAnswer: c.CorrectAnswer,
		IsCorrect:     c.IsCorrect,
		RatingChange:  c.RatingChange,
		CreatedAt:     c.CreatedAt,
	}
}

// asDomainError passes domain and validation errors through and wraps anything else as internal.
func asDomainError(err error, message string) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de
	}
	var ve domain.ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return domain.NewInternalError(message, err)
}
