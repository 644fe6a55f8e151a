package dto

import "time"

// DailySubmitRequest is the body of POST /daily/submit. Date defaults to today.
type DailySubmitRequest struct {
	UserID     string `json:"userId" example:"player-42"`
	ScenarioID int    `json:"scenarioId" example:"2"`
	Answer     string `json:"answer" example:"Raise"`
	Date       string `json:"date,omitempty" example:"2024-01-01"`
}

// DailySubmitResponse reports the outcome of the daily challenge.
type DailySubmitResponse struct {
	IsCorrect     bool         `json:"isCorrect"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	ConceptRef    *string      `json:"conceptRef"`
	RatingChange  int          `json:"ratingChange"`
	User          UserResponse `json:"user"`
}

// DailyCompletionItem is a stored daily-challenge completion.
type DailyCompletionItem struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ChallengeDate string    `json:"challenge_date"`
	ScenarioID    int       `json:"scenario_id"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	IsCorrect     bool      `json:"is_correct"`
	RatingChange  int       `json:"rating_change"`
	CreatedAt     time.Time `json:"created_at"`
}

// DailyCheckResponse tells whether a user already played a date.
type DailyCheckResponse struct {
	Completed  bool                 `json:"completed"`
	Completion *DailyCompletionItem `json:"completion"`
}
