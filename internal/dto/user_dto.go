package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims of a user ownership token.
type AuthClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// CreateUserRequest is the body of POST /users. A missing id gets a generated one.
type CreateUserRequest struct {
	ID string `json:"id,omitempty" example:"player-42"`
}

// UserResponse is the public view of a user.
// @Description User rating and streak state
type UserResponse struct {
	ID               string    `json:"id"`
	EloOverall       int       `json:"elo_overall"`
	EloPreflop       int       `json:"elo_preflop"`
	EloFlop          int       `json:"elo_flop"`
	EloTurn          int       `json:"elo_turn"`
	EloRiver         int       `json:"elo_river"`
	Streak           int       `json:"streak"`
	LastActivityDate *string   `json:"last_activity_date"`
	CreatedAt        time.Time `json:"created_at"`
}

// --- Pagination DTOs ---

// Pagination defines parameters for paginated requests.
type Pagination struct {
	Limit  int `query:"limit"`  // Number of items per page
	Offset int `query:"offset"` // Number of items to skip
	Page   int `query:"page"`   // Page number (alternative to offset)
}

// PaginationInfo defines pagination details for responses.
type PaginationInfo struct {
	TotalItems  int64 `json:"total_items"`
	Limit       int   `json:"limit"`
	Offset      int   `json:"offset"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
}

// NewPaginationInfo derives page numbers from a normalized Pagination.
func NewPaginationInfo(p Pagination, total int) PaginationInfo {
	info := PaginationInfo{
		TotalItems:  int64(total),
		Limit:       p.Limit,
		Offset:      p.Offset,
		CurrentPage: 1,
	}
	if p.Limit > 0 {
		info.CurrentPage = p.Offset/p.Limit + 1
		info.TotalPages = (total + p.Limit - 1) / p.Limit
	}
	return info
}

// --- Attempt history DTOs ---

// QuizAttemptItem is one row of a user's quiz history.
type QuizAttemptItem struct {
	ID            string    `json:"id"`
	ScenarioID    int       `json:"scenario_id"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	IsCorrect     bool      `json:"is_correct"`
	RatingChange  int       `json:"rating_change"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserAttemptsResponse is a page of quiz attempts.
type UserAttemptsResponse struct {
	Attempts       []QuizAttemptItem `json:"attempts"`
	PaginationInfo PaginationInfo    `json:"pagination_info"`
}
