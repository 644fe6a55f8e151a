package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRange(t *testing.T) {
	tests := []struct {
		name        string
		reference   []string
		submitted   []string
		wantScore   float64
		wantCorrect []string
		wantMissed  []string
		wantExtra   []string
	}{
		{
			name:        "exact match",
			reference:   []string{"AA", "KK", "AKs"},
			submitted:   []string{"AKs", "AA", "KK"},
			wantScore:   100,
			wantCorrect: []string{"AKs", "AA", "KK"},
			wantMissed:  []string{},
			wantExtra:   []string{},
		},
		{
			name:        "empty submission",
			reference:   []string{"AA", "KK"},
			submitted:   []string{},
			wantScore:   0,
			wantCorrect: []string{},
			wantMissed:  []string{"AA", "KK"},
			wantExtra:   []string{},
		},
		{
			name:        "disjoint",
			reference:   []string{"AA", "KK"},
			submitted:   []string{"72o", "32o"},
			wantScore:   0,
			wantCorrect: []string{},
			wantMissed:  []string{"AA", "KK"},
			wantExtra:   []string{"72o", "32o"},
		},
		{
			name:        "subset",
			reference:   []string{"AA", "KK"},
			submitted:   []string{"AA"},
			wantScore:   50,
			wantCorrect: []string{"AA"},
			wantMissed:  []string{"KK"},
			wantExtra:   []string{},
		},
		{
			name:        "one of three rounds to a tenth",
			reference:   []string{"AA", "KK", "QQ"},
			submitted:   []string{"AA"},
			wantScore:   33.3,
			wantCorrect: []string{"AA"},
			wantMissed:  []string{"KK", "QQ"},
			wantExtra:   []string{},
		},
		{
			name:        "two of three rounds up",
			reference:   []string{"AA", "KK", "QQ"},
			submitted:   []string{"QQ", "KK"},
			wantScore:   66.7,
			wantCorrect: []string{"QQ", "KK"},
			wantMissed:  []string{"AA"},
			wantExtra:   []string{},
		},
		{
			name:        "superset",
			reference:   []string{"AA"},
			submitted:   []string{"AA", "KK", "QQ"},
			wantScore:   33.3,
			wantCorrect: []string{"AA"},
			wantMissed:  []string{},
			wantExtra:   []string{"KK", "QQ"},
		},
		{
			name:        "both empty",
			reference:   []string{},
			submitted:   []string{},
			wantScore:   0,
			wantCorrect: []string{},
			wantMissed:  []string{},
			wantExtra:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreRange(tt.reference, tt.submitted)
			assert.Equal(t, tt.wantScore, got.OverlapScore)
			assert.Equal(t, tt.wantCorrect, got.CorrectHands)
			assert.Equal(t, tt.wantMissed, got.MissedHands)
			assert.Equal(t, tt.wantExtra, got.ExtraHands)
		})
	}
}

func TestScoreRange_FormulaAgainstUnion(t *testing.T) {
	reference := []string{"AA", "KK", "QQ"}
	submitted := []string{"AA", "JJ"}

	forward := ScoreRange(reference, submitted)
	backward := ScoreRange(submitted, reference)

	// 1 shared hand over a union of 4
	assert.Equal(t, 25.0, forward.OverlapScore)
	assert.Equal(t, 25.0, backward.OverlapScore)

	// the hand classification is not symmetric
	assert.Equal(t, []string{"KK", "QQ"}, forward.MissedHands)
	assert.Equal(t, []string{"JJ"}, forward.ExtraHands)
	assert.Equal(t, []string{"JJ"}, backward.MissedHands)
	assert.Equal(t, []string{"KK", "QQ"}, backward.ExtraHands)
}

func TestNormalizeHands(t *testing.T) {
	unique, invalid := NormalizeHands([]string{"AKs", "AA", "AKs", "XYz", "KAs", "72o"})

	assert.Equal(t, []string{"AKs", "AA", "72o"}, unique)
	assert.Equal(t, []string{"XYz", "KAs"}, invalid)
}

func TestAllHands(t *testing.T) {
	hands := AllHands()

	assert.Len(t, hands, 169)
	assert.Equal(t, "AA", hands[0])
	assert.Equal(t, "AKs", hands[1])
	assert.Equal(t, "AKo", hands[GridSize])
	assert.Equal(t, "22", hands[len(hands)-1])
	assert.Equal(t, TotalCombos, RangeCombos(hands))

	pairs, suited, offsuit := 0, 0, 0
	for _, h := range hands {
		switch HandCombos(h) {
		case 6:
			pairs++
		case 4:
			suited++
		case 12:
			offsuit++
		}
	}
	assert.Equal(t, 13, pairs)
	assert.Equal(t, 78, suited)
	assert.Equal(t, 78, offsuit)
}
