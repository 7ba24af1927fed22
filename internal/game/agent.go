package game

import (
	"context"

	"github.com/lox/holdem/internal/deck"
)

// PlayerState represents the read-only state of the acting player
type PlayerState struct {
	Seat      int
	Name      string
	Chips     int
	StreetBet int
	TotalBet  int
	HoleCards []deck.Card
}

// TableState represents the read-only state of the table for decision making
type TableState struct {
	HandID         string
	Street         Street
	CallAmount     int
	Pot            int
	CurrentBet     int
	CommunityCards []deck.Card
	Player         PlayerState
	ActivePlayers  int // Players who have not folded, including the actor
}

// Agent represents any entity (human or bot) that decides for a player.
// Agents receive copies of the game state and must not mutate the hand.
//
// The hand calls MakeDecision synchronously, one player at a time. An agent
// that cannot produce a decision (closed input, cancelled context) returns an
// error and the hand stops; it must never substitute a fold or call.
type Agent interface {
	MakeDecision(ctx context.Context, state TableState, valid []ValidAction) (Decision, error)
}

// AgentFunc adapts a function to the Agent interface
type AgentFunc func(ctx context.Context, state TableState, valid []ValidAction) (Decision, error)

// MakeDecision calls f
func (f AgentFunc) MakeDecision(ctx context.Context, state TableState, valid []ValidAction) (Decision, error) {
	return f(ctx, state, valid)
}
