package service

import (
	"os"
	"testing"
	"time"

	"rangeiq/internal/catalog"
	"rangeiq/internal/config"
	"rangeiq/internal/domain"
	"rangeiq/internal/logger"
)

// TestMain initializes the logger for all tests in this package.
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	os.Exit(m.Run())
}

// testNow is 2024-03-15 10:00 UTC.
var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// newTestCatalog builds a small synthetic catalog.
func newTestCatalog(t testing.TB) *catalog.Catalog {
	scenarios := []domain.Scenario{
		{
			ID: 1, Title: "Open the button", Category: domain.CategoryPreflop, Difficulty: domain.DifficultyBeginner,
			HeroPosition: "BTN", HeroCards: []string{"Ah", "Kd"}, BoardCards: []string{},
			PotSize: 1.5, StackSize: 100, ActionHistory: "Folds to hero",
			Options: []string{"Fold", "Call", "Raise"}, CorrectAnswer: "Raise", RaiseSize: floatPtr(2.5),
			Explanation: "AKo is a clear open.", ConceptRef: strPtr("position"),
			RatingDelta: domain.RatingDelta{Correct: 15, Incorrect: -10},
		},
		{
			ID: 2, Title: "Dry flop c-bet", Category: domain.CategoryFlop, Difficulty: domain.DifficultyIntermediate,
			HeroPosition: "CO", VillainPosition: strPtr("BB"), HeroCards: []string{"Qs", "Qc"}, BoardCards: []string{"2d", "7h", "Kc"},
			PotSize: 6, StackSize: 97, ActionHistory: "Villain checks",
			Options: []string{"Check", "Bet 33%", "Bet 75%"}, CorrectAnswer: "Bet 33%",
			Explanation: "Small bet on a dry board.",
			RatingDelta: domain.RatingDelta{Correct: 12, Incorrect: -8},
		},
		{
			ID: 3, Title: "River bluff catch", Category: domain.CategoryBluffCatch, Difficulty: domain.DifficultyAdvanced,
			HeroPosition: "BB", HeroCards: []string{"9s", "9d"}, BoardCards: []string{"2c", "5h", "Jd", "Kc", "3s"},
			PotSize: 20, StackSize: 70, ActionHistory: "Villain shoves",
			Options: []string{"Fold", "Call"}, CorrectAnswer: "Call",
			Explanation: "Villain has too many missed draws.",
			RatingDelta: domain.RatingDelta{Correct: 20, Incorrect: -2000},
		},
	}
	ranges := []domain.Range{
		{ID: 1, Title: "UTG open", Position: "UTG", Action: "Open", StackDepth: 100, Hands: []string{"AA", "KK", "QQ", "AKs"}, Explanation: "Tight."},
	}
	concepts := []domain.Concept{
		{ID: "position", Title: "Position", ShortDescription: "Act last", Difficulty: domain.DifficultyBeginner, Category: "Fundamentals", Content: "Long text", KeyTakeaways: []string{"IP is good"}},
	}
	c, err := catalog.New(scenarios, ranges, concepts)
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	t.Helper()
	return c
}

func newTestUser(id string) *domain.User {
	return domain.NewUser(id, testNow.Add(-48*time.Hour))
}
