package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rangeiq/internal/domain"
	"rangeiq/internal/repository/models"
	"rangeiq/internal/util"

	"github.com/jmoiron/sqlx"
)

const userColumns = `ID, ELO_OVERALL, ELO_PREFLOP, ELO_FLOP, ELO_TURN, ELO_RIVER, STREAK, LAST_ACTIVITY_DATE, CREATED_AT`

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:               m.ID,
		EloOverall:       m.EloOverall,
		EloPreflop:       m.EloPreflop,
		EloFlop:          m.EloFlop,
		EloTurn:          m.EloTurn,
		EloRiver:         m.EloRiver,
		Streak:           m.Streak,
		LastActivityDate: util.NullStringToPtr(m.LastActivityDate),
		CreatedAt:        m.CreatedAt,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:               u.ID,
		EloOverall:       u.EloOverall,
		EloPreflop:       u.EloPreflop,
		EloFlop:          u.EloFlop,
		EloTurn:          u.EloTurn,
		EloRiver:         u.EloRiver,
		Streak:           u.Streak,
		LastActivityDate: util.StringPtrToNullString(u.LastActivityDate),
		CreatedAt:        u.CreatedAt,
	}
}

// CreateUserIfAbsent inserts the user when the id is new and returns the stored row either way.
// created is true only when this call inserted the row.
func (r *sqlxUserRepository) CreateUserIfAbsent(ctx context.Context, user *domain.User) (stored *domain.User, created bool, err error) {
	m := fromDomainUser(user)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := `MERGE INTO users u
USING (SELECT :1 AS id FROM dual) src
ON (u.ID = src.id)
WHEN NOT MATCHED THEN
  INSERT (` + userColumns + `)
  VALUES (src.id, :2, :3, :4, :5, :6, :7, :8, :9)`

	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.ID,
		m.EloOverall,
		m.EloPreflop,
		m.EloFlop,
		m.EloTurn,
		m.EloRiver,
		m.Streak,
		m.LastActivityDate,
		m.CreatedAt,
	)
	switch {
	case err == nil:
		n, raErr := result.RowsAffected()
		if raErr != nil {
			return nil, false, fmt.Errorf("failed to read rows affected for user %s: %w", user.ID, raErr)
		}
		created = n == 1
	case isUniqueViolation(err):
		// a concurrent MERGE for the same id won the race on the primary key
	default:
		return nil, false, fmt.Errorf("failed to create user %s: %w", user.ID, err)
	}

	stored, err = r.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, false, err
	}
	if stored == nil {
		return nil, false, fmt.Errorf("user %s missing after insert", user.ID)
	}
	return stored, created, nil
}

// GetUserByID returns nil, nil when the user does not exist.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE ID = :1`, userID)
}

func (r *sqlxUserRepository) GetUserByIDForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE ID = :1 FOR UPDATE`, userID)
}

func (r *sqlxUserRepository) getUser(ctx context.Context, query, userID string) (*domain.User, error) {
	var m models.User
	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return toDomainUser(&m), nil
}

// UpdateUserRating persists the rating fields, streak and last activity date.
func (r *sqlxUserRepository) UpdateUserRating(ctx context.Context, user *domain.User) error {
	m := fromDomainUser(user)
	query := `UPDATE users SET ELO_OVERALL = :1, ELO_PREFLOP = :2, ELO_FLOP = :3, ELO_TURN = :4, ELO_RIVER = :5,
	STREAK = :6, LAST_ACTIVITY_DATE = :7 WHERE ID = :8`

	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.EloOverall,
		m.EloPreflop,
		m.EloFlop,
		m.EloTurn,
		m.EloRiver,
		m.Streak,
		m.LastActivityDate,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user rating %s: %w", user.ID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for user %s: %w", user.ID, err)
	}
	if rows == 0 {
		return domain.NewUserNotFoundError(user.ID)
	}
	return nil
}
