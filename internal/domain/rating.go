package domain

import "time"

// EloField identifies the per-street rating a scenario category feeds.
type EloField string

const (
	EloFieldPreflop EloField = "elo_preflop"
	EloFieldFlop    EloField = "elo_flop"
	EloFieldTurn    EloField = "elo_turn"
	EloFieldRiver   EloField = "elo_river"
)

var categoryEloFields = map[string]EloField{
	CategoryPreflop:    EloFieldPreflop,
	CategoryFlop:       EloFieldFlop,
	CategoryTurn:       EloFieldTurn,
	CategoryRiver:      EloFieldRiver,
	Category3BetPots:   EloFieldPreflop,
	CategoryBluffCatch: EloFieldRiver,
}

// EloFieldForCategory maps a scenario category to its rating field.
// Unknown categories count towards preflop.
func EloFieldForCategory(category string) EloField {
	if f, ok := categoryEloFields[category]; ok {
		return f
	}
	return EloFieldPreflop
}

// ApplyOutcome returns a copy of user with the rating change of the answered
// scenario and the streak rule applied, plus the rating change itself.
// today must already be expressed in the application's time zone.
func ApplyOutcome(user User, scenario Scenario, isCorrect bool, today time.Time) (User, int) {
	change := scenario.RatingDelta.Incorrect
	if isCorrect {
		change = scenario.RatingDelta.Correct
	}

	updated := user
	updated.EloOverall = clampElo(user.EloOverall + change)
	switch EloFieldForCategory(scenario.Category) {
	case EloFieldFlop:
		updated.EloFlop = clampElo(user.EloFlop + change)
	case EloFieldTurn:
		updated.EloTurn = clampElo(user.EloTurn + change)
	case EloFieldRiver:
		updated.EloRiver = clampElo(user.EloRiver + change)
	default:
		updated.EloPreflop = clampElo(user.EloPreflop + change)
	}

	todayStr := today.Format(DateLayout)
	yesterday := today.AddDate(0, 0, -1).Format(DateLayout)

	var last string
	if user.LastActivityDate != nil {
		last = *user.LastActivityDate
	}
	switch last {
	case yesterday:
		updated.Streak = user.Streak + 1
	case todayStr:
		// already active today
	default:
		updated.Streak = 1
	}
	updated.LastActivityDate = &todayStr

	return updated, change
}

func clampElo(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
