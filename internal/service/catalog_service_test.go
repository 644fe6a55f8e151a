package service

import (
	"testing"

	"rangeiq/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Scenarios(t *testing.T) {
	svc := NewCatalogService(newTestCatalog(t))

	all := svc.ListScenarios(domain.ScenarioFilter{})
	require.Len(t, all, 3)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 3, all[2].ID)

	flop := svc.ListScenarios(domain.ScenarioFilter{Category: domain.CategoryFlop})
	require.Len(t, flop, 1)
	assert.Equal(t, 2, flop[0].ID)

	none := svc.ListScenarios(domain.ScenarioFilter{Difficulty: "legendary"})
	assert.NotNil(t, none)
	assert.Empty(t, none)

	s, err := svc.GetScenario(3)
	require.NoError(t, err)
	assert.Equal(t, "River bluff catch", s.Title)

	_, err = svc.GetScenario(404)
	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeScenarioNotFound, de.Code)
}

func TestCatalogService_RangesAndConcepts(t *testing.T) {
	svc := NewCatalogService(newTestCatalog(t))

	ranges := svc.ListRanges()
	require.Len(t, ranges, 1)
	r, err := svc.GetRange(1)
	require.NoError(t, err)
	assert.Equal(t, "UTG", r.Position)
	_, err = svc.GetRange(2)
	assert.True(t, domain.IsNotFound(err))

	summaries := svc.ListConcepts()
	require.Len(t, summaries, 1)
	assert.Equal(t, "position", summaries[0].ID)

	c, err := svc.GetConcept("position")
	require.NoError(t, err)
	assert.Equal(t, "Long text", c.Content)
	_, err = svc.GetConcept("icm")
	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeConceptNotFound, de.Code)
}
