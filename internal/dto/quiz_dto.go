package dto

// QuizSubmitRequest is the body of POST /quiz/submit.
// @Description Answer to a scenario
type QuizSubmitRequest struct {
	UserID     string `json:"userId" example:"player-42"`
	ScenarioID int    `json:"scenarioId" example:"1"`
	Answer     string `json:"answer" example:"Raise"`
}

// QuizSubmitResponse reports the outcome of an answered scenario.
// @Description Outcome of a quiz submission
type QuizSubmitResponse struct {
	IsCorrect     bool         `json:"isCorrect"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	ConceptRef    *string      `json:"conceptRef"`
	RatingChange  int          `json:"ratingChange"`
	RaiseSize     *float64     `json:"raiseSize"`
	User          UserResponse `json:"user"`
}

// RangeSubmitRequest is the body of POST /ranges/submit.
type RangeSubmitRequest struct {
	UserID        string   `json:"userId" example:"player-42"`
	RangeID       int      `json:"rangeId" example:"1"`
	SelectedHands []string `json:"selectedHands" example:"AA,KK,AKs"`
}

// RangeSubmitResponse is the scored comparison against a reference range.
// @Description Range overlap result
type RangeSubmitResponse struct {
	OverlapScore        float64  `json:"overlapScore"`
	CorrectHands        []string `json:"correctHands"`
	MissedHands         []string `json:"missedHands"`
	ExtraHands          []string `json:"extraHands"`
	TotalCorrectInRange int      `json:"totalCorrectInRange"`
	Explanation         string   `json:"explanation"`
}
