package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rangeiq/internal/domain"
	"rangeiq/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const dailyCompletionColumns = `ID, USER_ID, CHALLENGE_DATE, SCENARIO_ID, USER_ANSWER, CORRECT_ANSWER, IS_CORRECT, RATING_CHANGE, CREATED_AT`

type sqlxDailyCompletionRepository struct {
	db *sqlx.DB
}

func NewSQLXDailyCompletionRepository(db *sqlx.DB) domain.DailyCompletionRepository {
	return &sqlxDailyCompletionRepository{db: db}
}

func toDomainDailyCompletion(m *models.DailyCompletion) *domain.DailyCompletion {
	return &domain.DailyCompletion{
		ID:            m.ID,
		UserID:        m.UserID,
		ChallengeDate: m.ChallengeDate,
		ScenarioID:    m.ScenarioID,
		UserAnswer:    m.UserAnswer,
		CorrectAnswer: m.CorrectAnswer,
		IsCorrect:     m.IsCorrect == 1,
		RatingChange:  int(m.RatingChange.Int64),
		CreatedAt:     m.CreatedAt,
	}
}

// CreateDailyCompletion relies on uq_daily_user_date to reject a second completion for the same date.
func (r *sqlxDailyCompletionRepository) CreateDailyCompletion(ctx context.Context, c *domain.DailyCompletion) error {
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `INSERT INTO daily_challenge_completions (` + dailyCompletionColumns + `)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9)`

	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.ChallengeDate,
		c.ScenarioID,
		c.UserAnswer,
		c.CorrectAnswer,
		models.BoolToInt(c.IsCorrect),
		sql.NullInt64{Int64: int64(c.RatingChange), Valid: true},
		createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDailyAlreadyCompletedError(c.ChallengeDate)
		}
		return fmt.Errorf("failed to create daily completion: %w", err)
	}
	return nil
}

// GetDailyCompletion returns nil, nil when the user has not completed the given date.
func (r *sqlxDailyCompletionRepository) GetDailyCompletion(ctx context.Context, userID, challengeDate string) (*domain.DailyCompletion, error) {
	var m models.DailyCompletion
	query := `SELECT ` + dailyCompletionColumns + ` FROM daily_challenge_completions WHERE USER_ID = :1 AND CHALLENGE_DATE = :2`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, userID, challengeDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily completion for user %s on %s: %w", userID, challengeDate, err)
	}
	return toDomainDailyCompletion(&m), nil
}
