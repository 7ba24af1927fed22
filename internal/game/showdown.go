package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/evaluator"
)

// ShowdownEntry is one player's revealed hand
type ShowdownEntry struct {
	Seat      int
	Name      string
	HoleCards []deck.Card
	Hand      evaluator.Hand
}

// Result is the outcome of a played hand
type Result struct {
	HandID        string
	Winner        int // Seat of the player awarded the pot
	WinnerName    string
	Pot           int
	ByDefault     bool  // Everyone else folded, no hands were shown
	Tied          []int // Seats holding a hand equal to the winner's, winner included
	Showdown      []ShowdownEntry
	WinningHand   *evaluator.Hand
	Community     []deck.Card
	StreetReached Street
	Duration      time.Duration
}

// IsTie returns true if more than one player held the winning hand
func (r *Result) IsTie() bool {
	return len(r.Tied) > 1
}

// showdown picks the winner and pays the whole pot to them. Among equal best
// hands the earliest seat wins; the other tied seats are reported, not paid.
func (h *Hand) showdown() (*Result, error) {
	result := &Result{
		HandID:    h.ID,
		Pot:       h.Pot.Total,
		Community: slices.Clone(h.CommunityCards),
	}

	var remaining []*Player
	for _, p := range h.Players {
		if p.InHand() {
			remaining = append(remaining, p)
		}
	}

	var winner *Player
	switch len(remaining) {
	case 0:
		return nil, fmt.Errorf("%w: every player folded", ErrChipAccounting)
	case 1:
		winner = remaining[0]
		result.ByDefault = true
		result.Tied = []int{winner.Seat}
	default:
		var best evaluator.Hand
		for _, p := range remaining {
			hand, err := evaluator.BestOf(p.HoleCards, h.CommunityCards)
			if err != nil {
				return nil, fmt.Errorf("evaluating %s: %w", p.Name, err)
			}
			result.Showdown = append(result.Showdown, ShowdownEntry{
				Seat:      p.Seat,
				Name:      p.Name,
				HoleCards: slices.Clone(p.HoleCards),
				Hand:      hand,
			})
			h.logger.Debug("Showdown", "player", p.Name, "cards", deck.FormatCards(p.HoleCards), "hand", hand.Description())
			h.publish(ShowdownEvent{Seat: p.Seat, Name: p.Name, HoleCards: slices.Clone(p.HoleCards), Hand: hand, timestamp: h.clock.Now()})

			switch {
			case winner == nil || hand.Beats(best):
				winner, best = p, hand
				result.Tied = []int{p.Seat}
			case hand.Equal(best):
				result.Tied = append(result.Tied, p.Seat)
			}
		}
		result.WinningHand = &best
	}

	winner.Chips += h.Pot.Total
	result.Winner = winner.Seat
	result.WinnerName = winner.Name
	return result, nil
}
