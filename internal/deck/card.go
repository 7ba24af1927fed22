package deck

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidCard is returned when card notation cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit. Suits carry no ordering; only equality matters.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in deck construction order
var Suits = [...]Suit{Hearts, Diamonds, Clubs, Spades}

// String returns the glyph for a suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Letter returns the single-letter notation (h, d, c, s)
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. The underlying value is the rank's strength,
// 2 through 14 with the ace high.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from Two to Ace
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankSymbols = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

var rankNames = map[Rank]string{
	Two: "Two", Three: "Three", Four: "Four", Five: "Five", Six: "Six", Seven: "Seven",
	Eight: "Eight", Nine: "Nine", Ten: "Ten", Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
}

// Strength returns the numeric strength used for every rank comparison
func (r Rank) Strength() int {
	return int(r)
}

// Valid reports whether r is one of the 13 standard ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the short symbol for a rank (e.g. "T", "A")
func (r Rank) String() string {
	if s, ok := rankSymbols[r]; ok {
		return s
	}
	return "?"
}

// Name returns the long English name of a rank
func (r Rank) Name() string {
	if s, ok := rankNames[r]; ok {
		return s
	}
	return "Unknown"
}

// Card represents a playing card. Cards are comparable values.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Notation returns the ASCII form accepted by ParseCard (e.g., "As")
func (c Card) Notation() string {
	return c.Rank.String() + c.Suit.Letter()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses a single card such as "As", "td", "10h" or "K♠"
func ParseCard(s string) (Card, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Card{}, err
	}
	if len(cards) != 1 {
		return Card{}, fmt.Errorf("%w: %q is not a single card", ErrInvalidCard, s)
	}
	return cards[0], nil
}

// ParseCards parses a run of cards. Cards may be concatenated ("AsKd") or
// separated by spaces or commas ("As, Kd").
func ParseCards(s string) ([]Card, error) {
	runes := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}
		runes = append(runes, r)
	}

	cards := []Card{}
	for i := 0; i < len(runes); {
		var rank Rank
		if runes[i] == '1' && i+1 < len(runes) && runes[i+1] == '0' {
			rank = Ten
			i += 2
		} else {
			r, ok := parseRank(runes[i])
			if !ok {
				return nil, fmt.Errorf("%w: bad rank %q in %q", ErrInvalidCard, runes[i], s)
			}
			rank = r
			i++
		}
		if i >= len(runes) {
			return nil, fmt.Errorf("%w: missing suit in %q", ErrInvalidCard, s)
		}
		suit, ok := parseSuit(runes[i])
		if !ok {
			return nil, fmt.Errorf("%w: bad suit %q in %q", ErrInvalidCard, runes[i], s)
		}
		i++
		cards = append(cards, NewCard(suit, rank))
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests
// and fixed tables.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(r rune) (Rank, bool) {
	switch unicode.ToUpper(r) {
	case 'T':
		return Ten, true
	case 'J':
		return Jack, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	case 'A':
		return Ace, true
	}
	if r >= '2' && r <= '9' {
		return Rank(r - '0'), true
	}
	return 0, false
}

func parseSuit(r rune) (Suit, bool) {
	switch strings.ToLower(string(r)) {
	case "h", "♥":
		return Hearts, true
	case "d", "♦":
		return Diamonds, true
	case "c", "♣":
		return Clubs, true
	case "s", "♠":
		return Spades, true
	}
	return 0, false
}

// FormatCards renders cards separated by spaces
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
