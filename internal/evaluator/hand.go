package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/holdem/internal/deck"
)

// Category is the class of a five-card poker hand. The numeric value is the
// primary comparison key.
type Category int

const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Strength returns the numeric value used to order categories
func (c Category) Strength() int {
	return int(c)
}

// String returns the string representation of a hand category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Hand is an evaluated five-card poker hand
type Hand struct {
	Category Category
	// Tiebreak holds rank strengths compared element by element when two
	// hands share a category. Its shape is fixed per category.
	Tiebreak []int
	// Cards are the five cards that make the hand, strongest first
	Cards [5]deck.Card
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 if they are equal.
// Categories are compared first, then tiebreaks element by element. When one
// tiebreak is a strict prefix of the other the hands compare equal.
func Compare(a, b Hand) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	n := min(len(a.Tiebreak), len(b.Tiebreak))
	for i := range n {
		switch {
		case a.Tiebreak[i] > b.Tiebreak[i]:
			return 1
		case a.Tiebreak[i] < b.Tiebreak[i]:
			return -1
		}
	}
	return 0
}

// Compare returns 1 if h is stronger than other, -1 if weaker, 0 if equal
func (h Hand) Compare(other Hand) int {
	return Compare(h, other)
}

// Beats reports whether h is strictly stronger than other
func (h Hand) Beats(other Hand) bool {
	return Compare(h, other) > 0
}

// Equal reports whether h and other have the same value. The cards that make
// each hand may differ.
func (h Hand) Equal(other Hand) bool {
	return Compare(h, other) == 0
}

// String returns a description such as "Full House [7 2] (7♠ 7♦ 7♣ 2♥ 2♦)"
func (h Hand) String() string {
	ranks := make([]string, len(h.Tiebreak))
	for i, r := range h.Tiebreak {
		ranks[i] = deck.Rank(r).String()
	}
	return fmt.Sprintf("%s [%s] (%s)", h.Category, strings.Join(ranks, " "), deck.FormatCards(h.Cards[:]))
}

// Description returns a short human readable summary, e.g. "Pair of Kings"
func (h Hand) Description() string {
	if len(h.Tiebreak) == 0 {
		return h.Category.String()
	}
	top := deck.Rank(h.Tiebreak[0]).Name()
	switch h.Category {
	case Pair:
		return "Pair of " + plural(top)
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", plural(top), plural(deck.Rank(h.Tiebreak[1]).Name()))
	case ThreeOfAKind:
		return "Three " + plural(top)
	case FourOfAKind:
		return "Four " + plural(top)
	case FullHouse:
		return fmt.Sprintf("Full House, %s full of %s", plural(top), plural(deck.Rank(h.Tiebreak[1]).Name()))
	case HighCard, Straight, Flush, StraightFlush:
		return fmt.Sprintf("%s, %s high", h.Category, top)
	default:
		return h.Category.String()
	}
}

func plural(name string) string {
	if name == "Six" {
		return "Sixes"
	}
	return name + "s"
}
