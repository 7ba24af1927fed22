package game

import "github.com/lox/holdem/internal/deck"

// Player represents a seat in a hand. Players are owned by the hand while it
// is being played; only the hand mutates them.
type Player struct {
	Seat          int
	Name          string
	Chips         int
	StartingChips int         // Chips at the start of the current hand
	StreetBet     int         // Committed on the current street
	TotalBet      int         // Committed over the whole hand
	Folded        bool
	HoleCards     []deck.Card // Zero or two cards
	Agent         Agent
}

// NewPlayer creates a player with a stack and an agent that decides for it
func NewPlayer(seat int, name string, chips int, agent Agent) *Player {
	return &Player{
		Seat:  seat,
		Name:  name,
		Chips: chips,
		Agent: agent,
	}
}

// Bet moves up to amount chips from the stack into the pot and returns the
// amount actually committed. Requests above the stack are clamped so the
// stack never goes negative.
func (p *Player) Bet(amount int) int {
	committed := max(0, min(amount, p.Chips))
	p.Chips -= committed
	p.StreetBet += committed
	p.TotalBet += committed
	return committed
}

// CanAct returns true if the player is still in the hand with chips behind
func (p *Player) CanAct() bool {
	return !p.Folded && p.Chips > 0
}

// InHand returns true if the player has not folded
func (p *Player) InHand() bool {
	return !p.Folded
}

// IsAllIn returns true if the player is in the hand with no chips left
func (p *Player) IsAllIn() bool {
	return !p.Folded && p.Chips == 0 && p.TotalBet > 0
}

func (p *Player) resetForHand() {
	p.StartingChips = p.Chips
	p.StreetBet = 0
	p.TotalBet = 0
	p.Folded = false
	p.HoleCards = nil
}
