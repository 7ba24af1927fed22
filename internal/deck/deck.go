package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// Size is the number of cards in a standard deck
const Size = 52

// ErrEmptyDeck is returned when drawing from a deck with no cards left
var ErrEmptyDeck = errors.New("deck is empty")

// Deck represents a deck of playing cards.
//
// A deck draws without replacement: for every shuffle epoch
// Remaining()+Dealt() == 52 and no card is drawn twice before Reset.
type Deck struct {
	cards   []Card
	dealt   int
	rng     *rand.Rand
	stacked []Card
}

// New creates a standard 52-card deck shuffled with the given random source
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("deck: rng is required")
	}
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	d.Reset()
	return d
}

// NewStacked creates a deck whose draw order is fixed: the given cards come
// off the top in order, followed by the rest of the deck in suit/rank order.
// Reset restores the same order. Used for deterministic tests and replays.
func NewStacked(top ...Card) (*Deck, error) {
	seen := make(map[Card]bool, len(top))
	for _, c := range top {
		if !c.Rank.Valid() || c.Suit < Hearts || c.Suit > Spades {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCard, c)
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate card %s in stacked deck", c)
		}
		seen[c] = true
	}

	order := make([]Card, 0, Size)
	order = append(order, top...)
	for _, c := range fullDeck() {
		if !seen[c] {
			order = append(order, c)
		}
	}

	d := &Deck{
		cards:   make([]Card, 0, Size),
		stacked: order,
	}
	d.Reset()
	return d, nil
}

func fullDeck() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Reset restores the deck to all 52 cards and starts a new shuffle epoch
func (d *Deck) Reset() {
	d.dealt = 0
	if d.stacked != nil {
		d.cards = append(d.cards[:0], d.stacked...)
		return
	}
	d.cards = append(d.cards[:0], fullDeck()...)
	d.Shuffle()
}

// Shuffle randomizes the order of the remaining cards (Fisher-Yates)
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	d.dealt++
	return card, nil
}

// DrawN draws n cards. If the deck runs out part way the cards drawn so far
// stay dealt and ErrEmptyDeck is returned.
func (d *Deck) DrawN(n int) ([]Card, error) {
	cards := make([]Card, 0, n)
	for range n {
		c, err := d.Draw()
		if err != nil {
			return cards, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Burn discards the top card
func (d *Deck) Burn() error {
	_, err := d.Draw()
	return err
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Dealt returns the number of cards drawn since the last Reset
func (d *Deck) Dealt() int {
	return d.dealt
}

// Cards returns a copy of the undealt cards in draw order
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
