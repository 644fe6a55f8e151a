package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTier(t *testing.T) {
	tests := []struct {
		elo  int
		want string
	}{
		{0, TierFish},
		{1049, TierFish},
		{1050, TierRegular},
		{1149, TierRegular},
		{1150, TierGrinder},
		{1299, TierGrinder},
		{1300, TierShark},
		{1499, TierShark},
		{1500, TierGTOWizard},
		{2400, TierGTOWizard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tier(tt.elo), "elo %d", tt.elo)
	}
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0, Accuracy(0, 0))
	assert.Equal(t, 67, Accuracy(2, 3))
	assert.Equal(t, 33, Accuracy(1, 3))
	assert.Equal(t, 100, Accuracy(4, 4))
}

func TestFavoriteCategory(t *testing.T) {
	assert.Equal(t, NoFavoriteCategory, FavoriteCategory(nil))
	assert.Equal(t, "Flop", FavoriteCategory([]CategoryCount{
		{Category: "Preflop", Total: 2},
		{Category: "Flop", Total: 5},
	}))
	assert.Equal(t, "Bluff Catch", FavoriteCategory([]CategoryCount{
		{Category: "River", Total: 3},
		{Category: "Bluff Catch", Total: 3},
	}))
}
