package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"rangeiq/internal/domain"
	"rangeiq/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var userRowColumns = []string{"ID", "ELO_OVERALL", "ELO_PREFLOP", "ELO_FLOP", "ELO_TURN", "ELO_RIVER", "STREAK", "LAST_ACTIVITY_DATE", "CREATED_AT"}

func TestToDomainUser(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	m := &models.User{
		ID:               "alice",
		EloOverall:       1015,
		EloPreflop:       1000,
		EloFlop:          1015,
		EloTurn:          1000,
		EloRiver:         990,
		Streak:           3,
		LastActivityDate: sql.NullString{String: "2024-03-01", Valid: true},
		CreatedAt:        now,
	}

	u := toDomainUser(m)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.ID)
	assert.Equal(t, 1015, u.EloFlop)
	assert.Equal(t, 990, u.EloRiver)
	assert.Equal(t, 3, u.Streak)
	require.NotNil(t, u.LastActivityDate)
	assert.Equal(t, "2024-03-01", *u.LastActivityDate)

	m.LastActivityDate = sql.NullString{}
	assert.Nil(t, toDomainUser(m).LastActivityDate)
	assert.Nil(t, toDomainUser(nil))
}

func TestFromDomainUser(t *testing.T) {
	date := "2024-03-02"
	u := domain.NewUser("bob", time.Now())
	u.LastActivityDate = &date

	m := fromDomainUser(u)
	require.NotNil(t, m)
	assert.Equal(t, "bob", m.ID)
	assert.Equal(t, domain.InitialElo, m.EloOverall)
	assert.Equal(t, sql.NullString{String: date, Valid: true}, m.LastActivityDate)
	assert.Nil(t, fromDomainUser(nil))
}

func TestSQLXUserRepository_CreateUserIfAbsent(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("inserts and reads back", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("MERGE INTO users u")).
			WithArgs("alice", 1000, 1000, 1000, 1000, 1000, 0, sqlmock.AnyArg(), now).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE ID = :1")).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow("alice", 1000, 1000, 1000, 1000, 1000, 0, nil, now))

		user, created, err := repo.CreateUserIfAbsent(ctx, domain.NewUser("alice", now))
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.True(t, created)
		assert.Equal(t, "alice", user.ID)
		assert.Equal(t, 1000, user.EloOverall)
		assert.Nil(t, user.LastActivityDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing user is returned unchanged", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("MERGE INTO users u")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE ID = :1")).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow("alice", 1120, 1000, 1120, 1000, 1000, 4, "2024-02-29", now))

		user, created, err := repo.CreateUserIfAbsent(ctx, domain.NewUser("alice", now))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 1120, user.EloOverall)
		assert.Equal(t, 4, user.Streak)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lost insert race is tolerated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("MERGE INTO users u")).
			WillReturnError(errors.New("ORA-00001: unique constraint (PK_USERS) violated"))
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE ID = :1")).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow("alice", 1000, 1000, 1000, 1000, 1000, 0, nil, now))

		user, created, err := repo.CreateUserIfAbsent(ctx, domain.NewUser("alice", now))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "alice", user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("MERGE INTO users u")).
			WillReturnError(errors.New("connection reset"))

		user, created, err := repo.CreateUserIfAbsent(ctx, domain.NewUser("alice", now))
		assert.Error(t, err)
		assert.Nil(t, user)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLXUserRepository_GetUserByID(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		now := time.Now().Truncate(time.Second)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT ID, ELO_OVERALL")).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow("alice", 1030, 1015, 1015, 1000, 1000, 2, "2024-03-01", now))

		user, err := repo.GetUserByID(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, 1030, user.EloOverall)
		assert.Equal(t, "2024-03-01", *user.LastActivityDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE ID = :1")).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByID(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE ID = :1")).
			WithArgs("alice").
			WillReturnError(errors.New("db error"))

		user, err := repo.GetUserByID(ctx, "alice")
		assert.Error(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLXUserRepository_GetUserByIDForUpdate(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE ID = :1 FOR UPDATE")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("alice", 1000, 1000, 1000, 1000, 1000, 0, nil, time.Now()))

	user, err := repo.GetUserByIDForUpdate(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_UpdateUserRating(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)
	ctx := context.Background()

	date := "2024-03-01"
	user := &domain.User{ID: "alice", EloOverall: 1015, EloPreflop: 1015, EloFlop: 1000, EloTurn: 1000, EloRiver: 1000, Streak: 1, LastActivityDate: &date}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET ELO_OVERALL = :1")).
			WithArgs(1015, 1015, 1000, 1000, 1000, 1, sql.NullString{String: date, Valid: true}, "alice").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateUserRating(ctx, user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET ELO_OVERALL = :1")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateUserRating(ctx, user)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionManagerAdapter(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	tm := NewTransactionManagerAdapter(db)
	repo := NewSQLXUserRepository(db)
	ctx := context.Background()

	t.Run("commit routes queries through the transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow("alice", 1000, 1000, 1000, 1000, 1000, 0, nil, time.Now()))
		mock.ExpectCommit()

		err := tm.WithTransaction(ctx, func(txCtx context.Context) error {
			_, ok := GetExecutor(txCtx, db).(*sqlx.Tx)
			assert.True(t, ok)
			_, err := repo.GetUserByIDForUpdate(txCtx, "alice")
			return err
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := tm.WithTransaction(ctx, func(context.Context) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("executor without transaction", func(t *testing.T) {
		assert.Equal(t, DBTX(db), GetExecutor(ctx, db))
	})
}

func TestDBTX_ImplementedBySQLX(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	executors := []interface{}{db, &sqlx.Tx{}}
	for _, e := range executors {
		_, ok := e.(DBTX)
		assert.True(t, ok, "%T should implement DBTX", e)
	}
}
