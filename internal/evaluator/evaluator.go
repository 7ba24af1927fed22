// Package evaluator ranks five-card poker hands and picks the best five-card
// hand out of five to seven cards.
package evaluator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lox/holdem/internal/deck"
)

var (
	// ErrWrongCardCount is returned when Evaluate is not given exactly five
	// cards, or Best is given more than seven.
	ErrWrongCardCount = errors.New("wrong number of cards")
	// ErrInsufficientCards is returned when Best is given fewer than five cards
	ErrInsufficientCards = errors.New("insufficient cards")
	// ErrDuplicateCard is returned when the same card appears twice
	ErrDuplicateCard = errors.New("duplicate card")
)

// wheel is the ace-low straight A-2-3-4-5
var wheel = []int{2, 3, 4, 5, 14}

// Evaluate classifies exactly five cards. The result does not depend on the
// order of the input.
func Evaluate(cards []deck.Card) (Hand, error) {
	if len(cards) != 5 {
		return Hand{}, fmt.Errorf("%w: evaluate needs 5, got %d", ErrWrongCardCount, len(cards))
	}
	if err := checkDuplicates(cards); err != nil {
		return Hand{}, err
	}
	return evaluate5([5]deck.Card(cards)), nil
}

// MustEvaluate is like Evaluate but panics on error
func MustEvaluate(cards []deck.Card) Hand {
	h, err := Evaluate(cards)
	if err != nil {
		panic(err)
	}
	return h
}

func checkDuplicates(cards []deck.Card) error {
	seen := make(map[deck.Card]struct{}, len(cards))
	for _, c := range cards {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// rankGroup is a rank together with how many times it occurs
type rankGroup struct {
	strength int
	count    int
}

func evaluate5(cards [5]deck.Card) Hand {
	var counts [15]int
	flush := true
	for i, c := range cards {
		counts[c.Rank.Strength()]++
		if i > 0 && c.Suit != cards[0].Suit {
			flush = false
		}
	}

	// Groups ordered by count, then strength, both descending
	groups := make([]rankGroup, 0, 5)
	for s := 14; s >= 2; s-- {
		if counts[s] > 0 {
			groups = append(groups, rankGroup{strength: s, count: counts[s]})
		}
	}
	slices.SortStableFunc(groups, func(a, b rankGroup) int {
		return b.count - a.count
	})

	straightHigh := straightHighCard(groups)
	straight := straightHigh > 0

	h := Hand{Cards: orderCards(cards, groups, straightHigh == 5)}

	switch {
	case flush && straight && straightHigh == 14:
		h.Category = RoyalFlush
		h.Tiebreak = []int{14}
	case flush && straight:
		h.Category = StraightFlush
		h.Tiebreak = []int{straightHigh}
	case groups[0].count == 4:
		h.Category = FourOfAKind
		h.Tiebreak = []int{groups[0].strength, groups[1].strength}
	case groups[0].count == 3 && groups[1].count == 2:
		h.Category = FullHouse
		h.Tiebreak = []int{groups[0].strength, groups[1].strength}
	case flush:
		h.Category = Flush
		h.Tiebreak = strengths(groups)
	case straight:
		h.Category = Straight
		h.Tiebreak = []int{straightHigh}
	case groups[0].count == 3:
		h.Category = ThreeOfAKind
		h.Tiebreak = strengths(groups)
	case groups[0].count == 2 && groups[1].count == 2:
		h.Category = TwoPair
		h.Tiebreak = strengths(groups)
	case groups[0].count == 2:
		h.Category = Pair
		h.Tiebreak = strengths(groups)
	default:
		h.Category = HighCard
		h.Tiebreak = strengths(groups)
	}
	return h
}

// straightHighCard returns the high card of a straight made by five distinct
// ranks, 5 for the wheel, or 0 when the ranks do not form a straight.
func straightHighCard(groups []rankGroup) int {
	if len(groups) != 5 {
		return 0
	}
	distinct := strengths(groups) // already descending, all counts are 1
	if distinct[0]-distinct[4] == 4 {
		return distinct[0]
	}
	asc := slices.Clone(distinct)
	slices.Reverse(asc)
	if slices.Equal(asc, wheel) {
		return 5
	}
	return 0
}

func strengths(groups []rankGroup) []int {
	out := make([]int, len(groups))
	for i, g := range groups {
		out[i] = g.strength
	}
	return out
}

// orderCards arranges the hand for display: grouped ranks first, strongest
// first, with the ace moved to the end of a wheel.
func orderCards(cards [5]deck.Card, groups []rankGroup, isWheel bool) [5]deck.Card {
	position := make(map[int]int, len(groups))
	for i, g := range groups {
		position[g.strength] = i
	}
	out := cards
	slices.SortStableFunc(out[:], func(a, b deck.Card) int {
		pa, pb := position[a.Rank.Strength()], position[b.Rank.Strength()]
		if pa != pb {
			return pa - pb
		}
		return int(a.Suit) - int(b.Suit)
	})
	if isWheel {
		out = [5]deck.Card{out[1], out[2], out[3], out[4], out[0]}
	}
	return out
}
