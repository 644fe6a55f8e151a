package models

import (
	"database/sql"
	"time"
)

// QuizAttempt is a row of quiz_attempts.
type QuizAttempt struct {
	ID            string    `db:"ID"` // ULID
	UserID        string    `db:"USER_ID"`
	ScenarioID    int       `db:"SCENARIO_ID"`
	UserAnswer    string    `db:"USER_ANSWER"`
	CorrectAnswer string    `db:"CORRECT_ANSWER"`
	IsCorrect     int       `db:"IS_CORRECT"` // 0 or 1
	RatingChange  int       `db:"RATING_CHANGE"`
	Category      string    `db:"CATEGORY"`
	CreatedAt     time.Time `db:"CREATED_AT"`
}

// RangeAttempt is a row of range_attempts.
type RangeAttempt struct {
	ID            string      `db:"ID"`
	UserID        string      `db:"USER_ID"`
	RangeID       int         `db:"RANGE_ID"`
	SelectedHands StringSlice `db:"SELECTED_HANDS"`
	OverlapScore  float64     `db:"OVERLAP_SCORE"`
	CreatedAt     time.Time   `db:"CREATED_AT"`
}

// DailyCompletion is a row of daily_challenge_completions.
type DailyCompletion struct {
	ID            string        `db:"ID"`
	UserID        string        `db:"USER_ID"`
	ChallengeDate string        `db:"CHALLENGE_DATE"`
	ScenarioID    int           `db:"SCENARIO_ID"`
	UserAnswer    string        `db:"USER_ANSWER"`
	CorrectAnswer string        `db:"CORRECT_ANSWER"`
	IsCorrect     int           `db:"IS_CORRECT"`
	RatingChange  sql.NullInt64 `db:"RATING_CHANGE"`
	CreatedAt     time.Time     `db:"CREATED_AT"`
}

// CategoryCount is one row of the per-category aggregate over quiz_attempts.
type CategoryCount struct {
	Category string `db:"CATEGORY"`
	Total    int    `db:"TOTAL"`
	Correct  int    `db:"CORRECT"`
}

// BoolToInt maps a boolean onto a NUMBER(1) column.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
