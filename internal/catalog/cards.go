package catalog

import (
	"fmt"

	"github.com/paulhankin/poker"
)

var cardRanks = map[byte]poker.Rank{
	'A': 1, 'K': 13, 'Q': 12, 'J': 11, 'T': 10,
	'9': 9, '8': 8, '7': 7, '6': 6, '5': 5, '4': 4, '3': 3, '2': 2,
}

var cardSuits = map[byte]poker.Suit{
	'c': poker.Club,
	'd': poker.Diamond,
	'h': poker.Heart,
	's': poker.Spade,
}

// parseCard converts a two-character card such as "As" or "Td".
func parseCard(s string) (card poker.Card, err error) {
	if len(s) != 2 {
		return card, fmt.Errorf("invalid card %q", s)
	}
	rank, ok := cardRanks[s[0]]
	if !ok {
		return card, fmt.Errorf("invalid card rank in %q", s)
	}
	suit, ok := cardSuits[s[1]]
	if !ok {
		return card, fmt.Errorf("invalid card suit in %q", s)
	}
	return poker.MakeCard(suit, rank)
}

// validateCards checks hero and board cards and returns them parsed, hero first.
func validateCards(hero, board []string) ([]poker.Card, error) {
	if len(hero) != 2 {
		return nil, fmt.Errorf("expected 2 hero cards, got %d", len(hero))
	}
	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return nil, fmt.Errorf("board must have 0, 3, 4 or 5 cards, got %d", len(board))
	}

	all := append(append([]string{}, hero...), board...)
	seen := make(map[string]bool, len(all))
	cards := make([]poker.Card, 0, len(all))
	for _, s := range all {
		if seen[s] {
			return nil, fmt.Errorf("card %s dealt twice", s)
		}
		seen[s] = true
		c, err := parseCard(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// madeHand names hero's best hand on a complete board.
func madeHand(cards []poker.Card) (string, error) {
	if len(cards) != 7 {
		return "", nil
	}
	return poker.Describe(cards)
}
