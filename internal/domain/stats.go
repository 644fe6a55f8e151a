package domain

import (
	"math"
	"sort"
)

// Tier names by overall rating.
const (
	TierFish      = "Fish"
	TierRegular   = "Regular"
	TierGrinder   = "Grinder"
	TierShark     = "Shark"
	TierGTOWizard = "GTO Wizard"
)

// NoFavoriteCategory is reported before the first quiz attempt.
const NoFavoriteCategory = "None yet"

// Tier returns the tier name for an overall rating.
func Tier(eloOverall int) string {
	switch {
	case eloOverall >= 1500:
		return TierGTOWizard
	case eloOverall >= 1300:
		return TierShark
	case eloOverall >= 1150:
		return TierGrinder
	case eloOverall >= 1050:
		return TierRegular
	default:
		return TierFish
	}
}

// Accuracy is the rounded percentage of correct quiz attempts, 0 without attempts.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// FavoriteCategory returns the category with the most quiz attempts.
// Ties go to the alphabetically first category.
func FavoriteCategory(counts []CategoryCount) string {
	if len(counts) == 0 {
		return NoFavoriteCategory
	}
	sorted := make([]CategoryCount, len(counts))
	copy(sorted, counts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Total != sorted[j].Total {
			return sorted[i].Total > sorted[j].Total
		}
		return sorted[i].Category < sorted[j].Category
	})
	if sorted[0].Total == 0 {
		return NoFavoriteCategory
	}
	return sorted[0].Category
}
