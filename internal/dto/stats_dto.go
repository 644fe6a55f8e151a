package dto

import "time"

// CategoryStat is the accuracy of one scenario category.
type CategoryStat struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
	Correct  int    `json:"correct"`
	Accuracy int    `json:"accuracy"`
}

// RecentActivityItem is a recent quiz attempt annotated with its scenario title.
type RecentActivityItem struct {
	ID            string    `json:"id"`
	ScenarioID    int       `json:"scenario_id"`
	ScenarioTitle string    `json:"scenarioTitle"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	IsCorrect     bool      `json:"is_correct"`
	RatingChange  int       `json:"rating_change"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
}

// StatsResponse is the aggregated profile of GET /stats/:userId.
// @Description Aggregated player profile
type StatsResponse struct {
	User             UserResponse         `json:"user"`
	Tier             string               `json:"tier"`
	TotalAttempts    int                  `json:"totalAttempts"`
	QuizAttempts     int                  `json:"quizAttempts"`
	CorrectAttempts  int                  `json:"correctAttempts"`
	Accuracy         int                  `json:"accuracy"`
	CategoryStats    []CategoryStat       `json:"categoryStats"`
	RecentActivity   []RecentActivityItem `json:"recentActivity"`
	RangeAttempts    int                  `json:"rangeAttempts"`
	DailyChallenges  int                  `json:"dailyChallenges"`
	FavoriteCategory string               `json:"favoriteCategory"`
}

// HealthResponse reports dependency reachability.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
