package bot

import "github.com/lox/holdem/internal/deck"

// Strength scores a holding in [0, 1] using a coarse rule of thumb rather
// than a full evaluation.
//
// Preflop it looks at the two hole cards: pairs score highest, connected
// cards (gap of three or less) next. After the flop it counts ranks and suits
// across hole and board cards. Straights are not recognised.
func Strength(hole, community []deck.Card) float64 {
	if len(hole) != 2 {
		return 0
	}
	if len(community) == 0 {
		return preflopStrength(hole[0].Rank.Strength(), hole[1].Rank.Strength())
	}

	rankCounts := make(map[deck.Rank]int)
	suitCounts := make(map[deck.Suit]int)
	for _, cards := range [][]deck.Card{hole, community} {
		for _, c := range cards {
			rankCounts[c.Rank]++
			suitCounts[c.Suit]++
		}
	}

	maxRank, pairs := 0, 0
	for _, n := range rankCounts {
		maxRank = max(maxRank, n)
		if n >= 2 {
			pairs++
		}
	}
	maxSuit := 0
	for _, n := range suitCounts {
		maxSuit = max(maxSuit, n)
	}

	switch {
	case maxRank >= 4:
		return 0.95
	case maxRank == 3:
		return 0.8
	case pairs >= 2:
		return 0.7
	case maxRank == 2:
		return 0.5
	case maxSuit >= 5:
		return 0.85
	default:
		return 0.3
	}
}

func preflopStrength(a, b int) float64 {
	high := float64(max(a, b))
	switch {
	case a == b:
		return 0.6 + float64(a)/14*0.3
	case abs(a-b) <= 3:
		return 0.4 + high/14*0.2
	default:
		return 0.2 + high/14*0.2
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
