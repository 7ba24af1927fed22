package evaluator

import (
	"fmt"

	"github.com/lox/holdem/internal/deck"
)

// MaxCards is the largest input Best accepts (two hole cards plus the board)
const MaxCards = 7

// Best returns the strongest five-card hand that can be made from 5 to 7
// cards. Every five-card subset is evaluated; among equal-valued subsets the
// first one found is kept.
func Best(cards []deck.Card) (Hand, error) {
	if len(cards) < 5 {
		return Hand{}, fmt.Errorf("%w: best hand needs at least 5 cards, got %d", ErrInsufficientCards, len(cards))
	}
	if len(cards) > MaxCards {
		return Hand{}, fmt.Errorf("%w: best hand takes at most %d cards, got %d", ErrWrongCardCount, MaxCards, len(cards))
	}
	if err := checkDuplicates(cards); err != nil {
		return Hand{}, err
	}

	var best Hand
	first := true
	for _, idx := range Combinations(len(cards), 5) {
		five := [5]deck.Card{cards[idx[0]], cards[idx[1]], cards[idx[2]], cards[idx[3]], cards[idx[4]]}
		h := evaluate5(five)
		if first || h.Beats(best) {
			best = h
			first = false
		}
	}
	return best, nil
}

// BestOf combines hole and community cards and returns the best hand
func BestOf(hole, community []deck.Card) (Hand, error) {
	all := make([]deck.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)
	return Best(all)
}

// Combinations returns every k-element subset of {0..n-1} as index slices in
// lexicographic order. C(7,5) = 21.
func Combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]int, k)
		copy(combo, idx)
		out = append(out, combo)

		// Advance the rightmost index that still has room
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
