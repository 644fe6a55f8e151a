package domain

// Scenario categories.
const (
	CategoryPreflop    = "Preflop"
	CategoryFlop       = "Flop"
	CategoryTurn       = "Turn"
	CategoryRiver      = "River"
	CategoryBluffCatch = "Bluff Catch"
	Category3BetPots   = "3-Bet Pots"
)

// Difficulty levels shared by scenarios and concepts.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

var validCategories = map[string]bool{
	CategoryPreflop:    true,
	CategoryFlop:       true,
	CategoryTurn:       true,
	CategoryRiver:      true,
	CategoryBluffCatch: true,
	Category3BetPots:   true,
}

var validDifficulties = map[string]bool{
	DifficultyBeginner:     true,
	DifficultyIntermediate: true,
	DifficultyAdvanced:     true,
}

// IsValidCategory reports whether c is a known scenario category.
func IsValidCategory(c string) bool {
	return validCategories[c]
}

// IsValidDifficulty reports whether d is a known difficulty level.
func IsValidDifficulty(d string) bool {
	return validDifficulties[d]
}

// RatingDelta is the fixed rating change for each outcome of a scenario.
type RatingDelta struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// Scenario is a single pre-authored decision point.
type Scenario struct {
	ID               int         `json:"id"`
	Title            string      `json:"title"`
	Category         string      `json:"category"`
	Difficulty       string      `json:"difficulty"`
	HeroPosition     string      `json:"heroPosition"`
	VillainPosition  *string     `json:"villainPosition"`
	VillainStackSize *float64    `json:"villainStackSize"`
	HeroCards        []string    `json:"heroCards"`
	BoardCards       []string    `json:"boardCards"`
	PotSize          float64     `json:"potSize"`
	StackSize        float64     `json:"stackSize"`
	ActionHistory    string      `json:"actionHistory"`
	Options          []string    `json:"options"`
	CorrectAnswer    string      `json:"correctAnswer"`
	RaiseSize        *float64    `json:"raiseSize"`
	Explanation      string      `json:"explanation"`
	ConceptRef       *string     `json:"conceptRef"`
	EvDiff           *float64    `json:"evDiff"`
	RatingDelta      RatingDelta `json:"ratingDelta"`
	// MadeHand describes hero's best five-card hand once all board cards are out.
	MadeHand string `json:"madeHand,omitempty"`
}

// IsCorrect reports whether answer matches the pre-authored correct action.
func (s *Scenario) IsCorrect(answer string) bool {
	return answer == s.CorrectAnswer
}

// HasOption reports whether answer is one of the scenario's options.
func (s *Scenario) HasOption(answer string) bool {
	for _, o := range s.Options {
		if o == answer {
			return true
		}
	}
	return false
}

// ScenarioFilter narrows scenario listings; empty fields match everything.
type ScenarioFilter struct {
	Difficulty string
	Category   string
}

// Matches reports whether s satisfies every non-empty field of f.
func (f ScenarioFilter) Matches(s *Scenario) bool {
	if f.Difficulty != "" && s.Difficulty != f.Difficulty {
		return false
	}
	if f.Category != "" && s.Category != f.Category {
		return false
	}
	return true
}

// Range is a recommended set of starting hands for one spot.
type Range struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Position    string   `json:"position"`
	Action      string   `json:"action"`
	StackDepth  int      `json:"stackDepth"`
	Scenario    string   `json:"scenario"`
	Hands       []string `json:"range"`
	Explanation string   `json:"explanation"`
}

// Concept is a lesson referenced by scenarios.
type Concept struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Content          string   `json:"content"`
	ExampleHand      string   `json:"exampleHand"`
	KeyTakeaways     []string `json:"keyTakeaways"`
}

// ConceptSummary is the list view of a concept without its body.
type ConceptSummary struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Difficulty       string `json:"difficulty"`
	Category         string `json:"category"`
}

// Summary drops the long-form fields of c.
func (c *Concept) Summary() ConceptSummary {
	return ConceptSummary{
		ID:               c.ID,
		Title:            c.Title,
		ShortDescription: c.ShortDescription,
		Difficulty:       c.Difficulty,
		Category:         c.Category,
	}
}
