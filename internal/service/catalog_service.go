package service

import (
	"rangeiq/internal/domain"
)

// CatalogService exposes the read-only seed content.
type CatalogService interface {
	ListScenarios(filter domain.ScenarioFilter) []domain.Scenario
	GetScenario(id int) (*domain.Scenario, error)
	ListRanges() []domain.Range
	GetRange(id int) (*domain.Range, error)
	ListConcepts() []domain.ConceptSummary
	GetConcept(id string) (*domain.Concept, error)
}

type catalogServiceImpl struct {
	catalog domain.Catalog
}

func NewCatalogService(catalog domain.Catalog) CatalogService {
	return &catalogServiceImpl{catalog: catalog}
}

// ListScenarios never returns nil so the API renders an empty list as [].
func (s *catalogServiceImpl) ListScenarios(filter domain.ScenarioFilter) []domain.Scenario {
	scenarios := s.catalog.Scenarios(filter)
	if scenarios == nil {
		return []domain.Scenario{}
	}
	return scenarios
}

func (s *catalogServiceImpl) GetScenario(id int) (*domain.Scenario, error) {
	scenario, ok := s.catalog.Scenario(id)
	if !ok {
		return nil, domain.NewScenarioNotFoundError(id)
	}
	return &scenario, nil
}

func (s *catalogServiceImpl) ListRanges() []domain.Range {
	return s.catalog.Ranges()
}

func (s *catalogServiceImpl) GetRange(id int) (*domain.Range, error) {
	r, ok := s.catalog.Range(id)
	if !ok {
		return nil, domain.NewRangeNotFoundError(id)
	}
	return &r, nil
}

func (s *catalogServiceImpl) ListConcepts() []domain.ConceptSummary {
	return s.catalog.ConceptSummaries()
}

func (s *catalogServiceImpl) GetConcept(id string) (*domain.Concept, error) {
	c, ok := s.catalog.Concept(id)
	if !ok {
		return nil, domain.NewConceptNotFoundError(id)
	}
	return &c, nil
}
