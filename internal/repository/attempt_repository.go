package repository

import (
	"context"
	"fmt"
	"time"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const (
	quizAttemptColumns = `ID, USER_ID, SCENARIO_ID, USER_ANSWER, CORRECT_ANSWER, IS_CORRECT, RATING_CHANGE, CATEGORY, CREATED_AT`

	defaultAttemptsLimit = 10
)

// sqlxAttemptRepository implements domain.AttemptRepository using sqlx.
type sqlxAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXAttemptRepository creates a new instance of sqlxAttemptRepository.
func NewSQLXAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

func toDomainQuizAttempt(m *models.QuizAttempt) domain.QuizAttempt {
	return domain.QuizAttempt{
		ID:            m.ID,
		UserID:        m.UserID,
		ScenarioID:    m.ScenarioID,
		UserAnswer:    m.UserAnswer,
		CorrectAnswer: m.CorrectAnswer,
		IsCorrect:     m.IsCorrect == 1,
		RatingChange:  m.RatingChange,
		Category:      m.Category,
		CreatedAt:     m.CreatedAt,
	}
}

func fromDomainQuizAttempt(a *domain.QuizAttempt) *models.QuizAttempt {
	return &models.QuizAttempt{
		ID:            a.ID,
		UserID:        a.UserID,
		ScenarioID:    a.ScenarioID,
		UserAnswer:    a.UserAnswer,
		CorrectAnswer: a.CorrectAnswer,
		IsCorrect:     models.BoolToInt(a.IsCorrect),
		RatingChange:  a.RatingChange,
		Category:      a.Category,
		CreatedAt:     a.CreatedAt,
	}
}

// CreateQuizAttempt inserts a new quiz attempt.
func (r *sqlxAttemptRepository) CreateQuizAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	m := fromDomainQuizAttempt(attempt)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := `INSERT INTO quiz_attempts (` + quizAttemptColumns + `)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9)`

	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.ID,
		m.UserID,
		m.ScenarioID,
		m.UserAnswer,
		m.CorrectAnswer,
		m.IsCorrect,
		m.RatingChange,
		m.Category,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz attempt: %w", err)
	}
	return nil
}

// CreateRangeAttempt inserts a scored range submission. The hands are stored as a JSON array.
func (r *sqlxAttemptRepository) CreateRangeAttempt(ctx context.Context, attempt *domain.RangeAttempt) error {
	m := models.RangeAttempt{
		ID:            attempt.ID,
		UserID:        attempt.UserID,
		RangeID:       attempt.RangeID,
		SelectedHands: models.StringSlice(attempt.SelectedHands),
		OverlapScore:  attempt.OverlapScore,
		CreatedAt:     attempt.CreatedAt,
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	// Convert StringSlice to string manually for Oracle CLOB binding
	handsVal, err := m.SelectedHands.Value()
	if err != nil {
		return fmt.Errorf("failed to encode selected hands: %w", err)
	}

	query := `INSERT INTO range_attempts (ID, USER_ID, RANGE_ID, SELECTED_HANDS, OVERLAP_SCORE, CREATED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6)`

	_, err = GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.ID,
		m.UserID,
		m.RangeID,
		handsVal,
		m.OverlapScore,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create range attempt: %w", err)
	}
	return nil
}

// buildAttemptsQuery returns the page query, the count query and the shared positional args.
// Pages are cut with ROW_NUMBER() so the statement runs on Oracle releases without OFFSET/FETCH.
func buildAttemptsQuery(userID string, pagination dto.Pagination) (string, string, []interface{}) {
	args := []interface{}{userID}
	where := "WHERE qa.USER_ID = :1"

	limit := pagination.Limit
	if limit <= 0 {
		limit = defaultAttemptsLimit
	}
	offset := pagination.Offset
	if offset < 0 {
		offset = 0
	}

	innerQuery := fmt.Sprintf("SELECT qa.*, ROW_NUMBER() OVER (ORDER BY qa.CREATED_AT DESC, qa.ID DESC) AS RN FROM quiz_attempts qa %s", where)
	resultsQuery := fmt.Sprintf("SELECT * FROM (%s) WHERE RN > %d AND RN <= %d ORDER BY RN", innerQuery, offset, offset+limit)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM quiz_attempts qa %s", where)

	return resultsQuery, countQuery, args
}

// numberedQuizAttempt carries the ROW_NUMBER column of a paged query.
type numberedQuizAttempt struct {
	models.QuizAttempt
	RN int `db:"RN"`
}

// GetQuizAttemptsByUserID returns one page of the user's quiz attempts, newest first, plus the total count.
func (r *sqlxAttemptRepository) GetQuizAttemptsByUserID(ctx context.Context, userID string, pagination dto.Pagination) ([]domain.QuizAttempt, int, error) {
	resultsQuery, countQuery, args := buildAttemptsQuery(userID, pagination)
	exec := GetExecutor(ctx, r.db)

	var rows []numberedQuizAttempt
	if err := exec.SelectContext(ctx, &rows, resultsQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to execute query for GetQuizAttemptsByUserID results: %w. Query: %s", err, resultsQuery)
	}

	var total int
	if err := exec.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to execute count query for GetQuizAttemptsByUserID: %w", err)
	}

	attempts := make([]domain.QuizAttempt, len(rows))
	for i := range rows {
		attempts[i] = toDomainQuizAttempt(&rows[i].QuizAttempt)
	}
	return attempts, total, nil
}

// GetRecentQuizAttempts returns at most limit attempts, newest first.
func (r *sqlxAttemptRepository) GetRecentQuizAttempts(ctx context.Context, userID string, limit int) ([]domain.QuizAttempt, error) {
	attempts, _, err := r.GetQuizAttemptsByUserID(ctx, userID, dto.Pagination{Limit: limit})
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

// GetAttemptSummary aggregates the counters used by the stats profile.
func (r *sqlxAttemptRepository) GetAttemptSummary(ctx context.Context, userID string) (*domain.AttemptSummary, error) {
	exec := GetExecutor(ctx, r.db)

	var categories []models.CategoryCount
	categoryQuery := `SELECT CATEGORY, COUNT(*) AS TOTAL, SUM(IS_CORRECT) AS CORRECT
	FROM quiz_attempts WHERE USER_ID = :1 GROUP BY CATEGORY ORDER BY CATEGORY`
	if err := exec.SelectContext(ctx, &categories, categoryQuery, userID); err != nil {
		return nil, fmt.Errorf("failed to aggregate quiz attempts for user %s: %w", userID, err)
	}

	summary := &domain.AttemptSummary{Categories: make([]domain.CategoryCount, 0, len(categories))}
	for _, c := range categories {
		summary.QuizAttempts += c.Total
		summary.CorrectAttempts += c.Correct
		summary.Categories = append(summary.Categories, domain.CategoryCount{
			Category: c.Category,
			Total:    c.Total,
			Correct:  c.Correct,
		})
	}

	if err := exec.GetContext(ctx, &summary.RangeAttempts,
		`SELECT COUNT(*) FROM range_attempts WHERE USER_ID = :1`, userID); err != nil {
		return nil, fmt.Errorf("failed to count range attempts for user %s: %w", userID, err)
	}
	if err := exec.GetContext(ctx, &summary.DailyChallenges,
		`SELECT COUNT(*) FROM daily_challenge_completions WHERE USER_ID = :1`, userID); err != nil {
		return nil, fmt.Errorf("failed to count daily challenges for user %s: %w", userID, err)
	}
	return summary, nil
}
