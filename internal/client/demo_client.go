package client

import (
	"context"
	"fmt"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
)

// DemoClient serves read-only content from a local catalog when no backend is around.
// Reads come from the catalog; range scoring and the daily pick run locally.
// Anything that would touch a user's persisted state fails with ErrDemoMode.
type DemoClient struct {
	catalog domain.Catalog
	clock   domain.Clock
}

func NewDemoClient(catalog domain.Catalog, clock domain.Clock) *DemoClient {
	return &DemoClient{catalog: catalog, clock: clock}
}

func notFound(code domain.ErrorCode, what string, id interface{}) error {
	return &APIError{Status: 404, Code: string(code), Message: fmt.Sprintf("%s not found: %v", what, id)}
}

func (d *DemoClient) CreateUser(context.Context, string) (*dto.UserResponse, error) {
	return nil, ErrDemoMode
}

func (d *DemoClient) GetUser(context.Context, string) (*dto.UserResponse, error) {
	return nil, ErrDemoMode
}

func (d *DemoClient) ListScenarios(_ context.Context, filter domain.ScenarioFilter) ([]domain.Scenario, error) {
	return d.catalog.Scenarios(filter), nil
}

func (d *DemoClient) GetScenario(_ context.Context, id int) (*domain.Scenario, error) {
	s, ok := d.catalog.Scenario(id)
	if !ok {
		return nil, notFound(domain.CodeScenarioNotFound, "scenario", id)
	}
	return &s, nil
}

func (d *DemoClient) ListRanges(context.Context) ([]domain.Range, error) {
	return d.catalog.Ranges(), nil
}

func (d *DemoClient) GetRange(_ context.Context, id int) (*domain.Range, error) {
	r, ok := d.catalog.Range(id)
	if !ok {
		return nil, notFound(domain.CodeRangeNotFound, "range", id)
	}
	return &r, nil
}

func (d *DemoClient) ListConcepts(context.Context) ([]domain.ConceptSummary, error) {
	return d.catalog.ConceptSummaries(), nil
}

func (d *DemoClient) GetConcept(_ context.Context, id string) (*domain.Concept, error) {
	c, ok := d.catalog.Concept(id)
	if !ok {
		return nil, notFound(domain.CodeConceptNotFound, "concept", id)
	}
	return &c, nil
}

func (d *DemoClient) SubmitAnswer(context.Context, dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error) {
	return nil, ErrDemoMode
}

// SubmitRange scores the selection locally. Nothing is recorded.
func (d *DemoClient) SubmitRange(_ context.Context, req dto.RangeSubmitRequest) (*dto.RangeSubmitResponse, error) {
	reference, ok := d.catalog.Range(req.RangeID)
	if !ok {
		return nil, notFound(domain.CodeRangeNotFound, "range", req.RangeID)
	}
	selected, invalid := domain.NormalizeHands(req.SelectedHands)
	if len(invalid) > 0 {
		return nil, &APIError{Status: 400, Code: string(domain.CodeInvalidFormat), Message: fmt.Sprintf("invalid hands: %v", invalid)}
	}
	score := domain.ScoreRange(reference.Hands, selected)
	return &dto.RangeSubmitResponse{
		OverlapScore:        score.OverlapScore,
		CorrectHands:        score.CorrectHands,
		MissedHands:         score.MissedHands,
		ExtraHands:          score.ExtraHands,
		TotalCorrectInRange: len(reference.Hands),
		Explanation:         reference.Explanation,
	}, nil
}

func (d *DemoClient) GetDaily(context.Context) (*domain.DailySelection, error) {
	now := d.clock.Now()
	sel, err := domain.SelectDaily(d.catalog.Scenarios(domain.ScenarioFilter{}), now)
	if err != nil {
		return nil, notFound(domain.CodeNotFound, "daily challenge", now.Format(domain.DateLayout))
	}
	return sel, nil
}

func (d *DemoClient) SubmitDaily(context.Context, dto.DailySubmitRequest) (*dto.DailySubmitResponse, error) {
	return nil, ErrDemoMode
}

func (d *DemoClient) GetStats(context.Context, string) (*dto.StatsResponse, error) {
	return nil, ErrDemoMode
}

var _ API = (*DemoClient)(nil)
