package domain

// HandRanks lists card ranks from highest to lowest, the order of the hand grid.
const HandRanks = "AKQJT98765432"

// GridSize is the number of rows and columns of the hand grid.
const GridSize = len(HandRanks)

// TotalCombos is the number of distinct two-card starting hands.
const TotalCombos = 1326

var (
	handLabels []string
	handIndex  map[string]int
)

func init() {
	handLabels = make([]string, 0, GridSize*GridSize)
	handIndex = make(map[string]int, GridSize*GridSize)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			label := GridLabel(row, col)
			handIndex[label] = len(handLabels)
			handLabels = append(handLabels, label)
		}
	}
}

// GridLabel returns the hand label at a grid cell: pairs on the diagonal,
// suited hands above it and offsuit hands below it.
func GridLabel(row, col int) string {
	switch {
	case row == col:
		return string([]byte{HandRanks[row], HandRanks[col]})
	case row < col:
		return string([]byte{HandRanks[row], HandRanks[col], 's'})
	default:
		return string([]byte{HandRanks[col], HandRanks[row], 'o'})
	}
}

// AllHands returns the 169 canonical hand labels in grid order.
func AllHands() []string {
	out := make([]string, len(handLabels))
	copy(out, handLabels)
	return out
}

// IsValidHand reports whether label is a canonical hand label such as "AKs", "76o" or "TT".
func IsValidHand(label string) bool {
	_, ok := handIndex[label]
	return ok
}

// HandCombos is the number of card combinations a label stands for.
func HandCombos(label string) int {
	switch len(label) {
	case 2:
		return 6
	case 3:
		if label[2] == 's' {
			return 4
		}
		return 12
	}
	return 0
}

// RangeCombos sums the combinations of every label in hands.
func RangeCombos(hands []string) int {
	total := 0
	for _, h := range hands {
		total += HandCombos(h)
	}
	return total
}

// NormalizeHands drops repeated labels keeping the first occurrence and
// returns the labels that are not canonical hands.
func NormalizeHands(hands []string) (unique []string, invalid []string) {
	seen := make(map[string]struct{}, len(hands))
	unique = make([]string, 0, len(hands))
	for _, h := range hands {
		if !IsValidHand(h) {
			invalid = append(invalid, h)
			continue
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		unique = append(unique, h)
	}
	return unique, invalid
}
