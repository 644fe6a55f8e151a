package domain

import "time"

// Catalog is the read-only seed content consumed by the services.
type Catalog interface {
	Scenario(id int) (Scenario, bool)
	// Scenarios returns matching scenarios in ascending id order.
	Scenarios(filter ScenarioFilter) []Scenario
	Range(id int) (Range, bool)
	Ranges() []Range
	Concept(id string) (Concept, bool)
	Concepts() []Concept
	ConceptSummaries() []ConceptSummary
}

// Clock supplies the current instant. Calendar days are derived from it in the configured location.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
