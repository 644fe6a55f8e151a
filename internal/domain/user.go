package domain

import (
	"context"
	"time"

	"rangeiq/internal/dto"
)

// DateLayout is the calendar-date format used for activity and challenge dates.
const DateLayout = "2006-01-02"

// InitialElo is the starting value of every rating field of a new user.
const InitialElo = 1000

// User holds a player's rating and streak state.
type User struct {
	ID               string
	EloOverall       int
	EloPreflop       int
	EloFlop          int
	EloTurn          int
	EloRiver         int
	Streak           int
	LastActivityDate *string
	CreatedAt        time.Time
}

// NewUser creates a user with the starting ratings and no activity.
func NewUser(id string, now time.Time) *User {
	return &User{
		ID:         id,
		EloOverall: InitialElo,
		EloPreflop: InitialElo,
		EloFlop:    InitialElo,
		EloTurn:    InitialElo,
		EloRiver:   InitialElo,
		CreatedAt:  now,
	}
}

// QuizAttempt is one answered scenario.
type QuizAttempt struct {
	ID            string
	UserID        string
	ScenarioID    int
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	RatingChange  int
	Category      string
	CreatedAt     time.Time
}

// RangeAttempt is one scored range submission.
type RangeAttempt struct {
	ID            string
	UserID        string
	RangeID       int
	SelectedHands []string
	OverlapScore  float64
	CreatedAt     time.Time
}

// DailyCompletion records the single daily-challenge answer of a user for a date.
type DailyCompletion struct {
	ID            string
	UserID        string
	ChallengeDate string
	ScenarioID    int
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	RatingChange  int
	CreatedAt     time.Time
}

// CategoryCount aggregates quiz attempts of one category.
type CategoryCount struct {
	Category string
	Total    int
	Correct  int
}

// AttemptSummary holds the counters behind the stats profile.
type AttemptSummary struct {
	QuizAttempts    int
	CorrectAttempts int
	RangeAttempts   int
	DailyChallenges int
	Categories      []CategoryCount
}

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	// CreateUserIfAbsent inserts the user unless the id exists and returns the stored row.
	// created reports whether this call inserted it.
	CreateUserIfAbsent(ctx context.Context, user *User) (stored *User, created bool, err error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
	// GetUserByIDForUpdate locks the row for the surrounding transaction.
	GetUserByIDForUpdate(ctx context.Context, userID string) (*User, error)
	UpdateUserRating(ctx context.Context, user *User) error
}

// AttemptRepository defines persistence for the append-only attempt records.
type AttemptRepository interface {
	CreateQuizAttempt(ctx context.Context, attempt *QuizAttempt) error
	CreateRangeAttempt(ctx context.Context, attempt *RangeAttempt) error
	GetQuizAttemptsByUserID(ctx context.Context, userID string, pagination dto.Pagination) ([]QuizAttempt, int, error)
	GetRecentQuizAttempts(ctx context.Context, userID string, limit int) ([]QuizAttempt, error)
	GetAttemptSummary(ctx context.Context, userID string) (*AttemptSummary, error)
}

// DailyCompletionRepository stores daily-challenge completions.
type DailyCompletionRepository interface {
	// CreateDailyCompletion fails with CodeDailyAlreadyCompleted when (user, date) exists.
	CreateDailyCompletion(ctx context.Context, completion *DailyCompletion) error
	GetDailyCompletion(ctx context.Context, userID, challengeDate string) (*DailyCompletion, error)
}

// TransactionManager runs fn inside a single store transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
