// Package catalog holds the read-only scenario, range and concept content.
package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"

	"rangeiq/internal/domain"
)

// Seed file names inside the catalog filesystem.
const (
	ScenariosFile = "scenarios.json"
	RangesFile    = "ranges.json"
	ConceptsFile  = "concepts.json"
)

// Catalog is the immutable content set loaded at startup.
// It is safe for concurrent use.
type Catalog struct {
	scenarios  []domain.Scenario
	ranges     []domain.Range
	concepts   []domain.Concept
	scenarioIx map[int]int
	rangeIx    map[int]int
	conceptIx  map[string]int
}

var _ domain.Catalog = (*Catalog)(nil)

// Load reads and validates the three seed files from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	var scenarios []domain.Scenario
	if err := readJSON(fsys, ScenariosFile, &scenarios); err != nil {
		return nil, err
	}
	var ranges []domain.Range
	if err := readJSON(fsys, RangesFile, &ranges); err != nil {
		return nil, err
	}
	var concepts []domain.Concept
	if err := readJSON(fsys, ConceptsFile, &concepts); err != nil {
		return nil, err
	}
	return New(scenarios, ranges, concepts)
}

func readJSON(fsys fs.FS, name string, dest interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// New validates the given records and builds a catalog ordered by ascending id.
func New(scenarios []domain.Scenario, ranges []domain.Range, concepts []domain.Concept) (*Catalog, error) {
	c := &Catalog{
		scenarios:  append([]domain.Scenario(nil), scenarios...),
		ranges:     append([]domain.Range(nil), ranges...),
		concepts:   append([]domain.Concept(nil), concepts...),
		scenarioIx: make(map[int]int, len(scenarios)),
		rangeIx:    make(map[int]int, len(ranges)),
		conceptIx:  make(map[string]int, len(concepts)),
	}

	sort.SliceStable(c.scenarios, func(i, j int) bool { return c.scenarios[i].ID < c.scenarios[j].ID })
	sort.SliceStable(c.ranges, func(i, j int) bool { return c.ranges[i].ID < c.ranges[j].ID })

	for i := range c.concepts {
		concept := &c.concepts[i]
		if concept.ID == "" {
			return nil, fmt.Errorf("concept #%d: missing id", i)
		}
		if _, dup := c.conceptIx[concept.ID]; dup {
			return nil, fmt.Errorf("duplicate concept id %q", concept.ID)
		}
		c.conceptIx[concept.ID] = i
	}

	for i := range c.scenarios {
		s := &c.scenarios[i]
		if _, dup := c.scenarioIx[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scenario id %d", s.ID)
		}
		if err := c.prepareScenario(s); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", s.ID, err)
		}
		c.scenarioIx[s.ID] = i
	}

	for i := range c.ranges {
		r := &c.ranges[i]
		if _, dup := c.rangeIx[r.ID]; dup {
			return nil, fmt.Errorf("duplicate range id %d", r.ID)
		}
		if err := validateRange(r); err != nil {
			return nil, fmt.Errorf("range %d: %w", r.ID, err)
		}
		c.rangeIx[r.ID] = i
	}

	return c, nil
}

func (c *Catalog) prepareScenario(s *domain.Scenario) error {
	if s.ID <= 0 {
		return fmt.Errorf("id must be positive")
	}
	if s.Title == "" {
		return fmt.Errorf("missing title")
	}
	if !domain.IsValidCategory(s.Category) {
		return fmt.Errorf("unknown category %q", s.Category)
	}
	if !domain.IsValidDifficulty(s.Difficulty) {
		return fmt.Errorf("unknown difficulty %q", s.Difficulty)
	}
	if len(s.Options) < 2 {
		return fmt.Errorf("needs at least 2 options, got %d", len(s.Options))
	}
	seen := make(map[string]bool, len(s.Options))
	for _, o := range s.Options {
		if seen[o] {
			return fmt.Errorf("duplicate option %q", o)
		}
		seen[o] = true
	}
	if !s.HasOption(s.CorrectAnswer) {
		return fmt.Errorf("correct answer %q is not an option", s.CorrectAnswer)
	}
	if s.ConceptRef != nil {
		if _, ok := c.conceptIx[*s.ConceptRef]; !ok {
			return fmt.Errorf("unknown concept %q", *s.ConceptRef)
		}
	}
	if s.BoardCards == nil {
		s.BoardCards = []string{}
	}

	cards, err := validateCards(s.HeroCards, s.BoardCards)
	if err != nil {
		return err
	}
	made, err := madeHand(cards)
	if err != nil {
		return fmt.Errorf("failed to describe hand: %w", err)
	}
	s.MadeHand = made
	return nil
}

func validateRange(r *domain.Range) error {
	if r.ID <= 0 {
		return fmt.Errorf("id must be positive")
	}
	unique, invalid := domain.NormalizeHands(r.Hands)
	if len(invalid) > 0 {
		return fmt.Errorf("invalid hand labels %v", invalid)
	}
	if len(unique) != len(r.Hands) {
		return fmt.Errorf("duplicate hand labels")
	}
	return nil
}

// Scenario looks up a scenario by id.
func (c *Catalog) Scenario(id int) (domain.Scenario, bool) {
	i, ok := c.scenarioIx[id]
	if !ok {
		return domain.Scenario{}, false
	}
	return c.scenarios[i], true
}

// Scenarios lists the scenarios matching filter in ascending id order.
func (c *Catalog) Scenarios(filter domain.ScenarioFilter) []domain.Scenario {
	out := make([]domain.Scenario, 0, len(c.scenarios))
	for i := range c.scenarios {
		if filter.Matches(&c.scenarios[i]) {
			out = append(out, c.scenarios[i])
		}
	}
	return out
}

// Range looks up a range by id.
func (c *Catalog) Range(id int) (domain.Range, bool) {
	i, ok := c.rangeIx[id]
	if !ok {
		return domain.Range{}, false
	}
	return c.ranges[i], true
}

// Ranges lists every range in ascending id order.
func (c *Catalog) Ranges() []domain.Range {
	return append(make([]domain.Range, 0, len(c.ranges)), c.ranges...)
}

// Concept looks up a concept by slug.
func (c *Catalog) Concept(id string) (domain.Concept, bool) {
	i, ok := c.conceptIx[id]
	if !ok {
		return domain.Concept{}, false
	}
	return c.concepts[i], true
}

// Concepts lists every concept in file order.
func (c *Catalog) Concepts() []domain.Concept {
	return append(make([]domain.Concept, 0, len(c.concepts)), c.concepts...)
}

// ConceptSummaries lists every concept without its long-form content.
func (c *Catalog) ConceptSummaries() []domain.ConceptSummary {
	out := make([]domain.ConceptSummary, 0, len(c.concepts))
	for i := range c.concepts {
		out = append(out, c.concepts[i].Summary())
	}
	return out
}
