package game

import "fmt"

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

// BettingStreets lists the streets on which a betting round is run
var BettingStreets = [...]Street{Preflop, Flop, Turn, River}

func (s Street) String() string {
	if s < Preflop || s > Showdown {
		return "unknown"
	}
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// communityCards is how many board cards are dealt when the street opens
func (s Street) communityCards() int {
	switch s {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	if a < Fold || a > AllIn {
		return "unknown"
	}
	return [...]string{"fold", "check", "call", "raise", "allin"}[a]
}

// Decision is an agent's chosen action
type Decision struct {
	Action    Action
	Amount    int    // For raises, the increment on top of the call amount
	Reasoning string // Human-readable explanation
}

func (d Decision) String() string {
	if d.Action == Raise {
		return fmt.Sprintf("raise %d", d.Amount)
	}
	return d.Action.String()
}

// ValidAction represents an action that a player can legally take
type ValidAction struct {
	Action    Action
	MinAmount int // For raises: smallest increment
	MaxAmount int // For raises: largest increment (stack minus the call)
}

// LegalActions returns the actions available to a player owing callAmount
// with chips behind. Fold is always legal; check only when nothing is owed;
// call only when something is owed; raise only when chips remain after
// calling; all-in whenever the player has chips.
func LegalActions(callAmount, chips int) []ValidAction {
	actions := []ValidAction{{Action: Fold}}
	if callAmount == 0 {
		actions = append(actions, ValidAction{Action: Check})
	} else {
		actions = append(actions, ValidAction{Action: Call})
	}
	if chips > callAmount {
		actions = append(actions, ValidAction{Action: Raise, MinAmount: 1, MaxAmount: chips - callAmount})
	}
	if chips > 0 {
		actions = append(actions, ValidAction{Action: AllIn})
	}
	return actions
}

// IsLegal reports whether action appears in valid
func IsLegal(valid []ValidAction, action Action) bool {
	for _, v := range valid {
		if v.Action == action {
			return true
		}
	}
	return false
}

// Validate checks a decision against the call amount and stack. Every error
// wraps ErrInvalidAction.
func Validate(d Decision, callAmount, chips int) error {
	switch d.Action {
	case Fold:
		return nil
	case Check:
		if callAmount > 0 {
			return fmt.Errorf("%w: cannot check, must call %d", ErrInvalidAction, callAmount)
		}
	case Call:
		if callAmount == 0 {
			return fmt.Errorf("%w: nothing to call, check instead", ErrInvalidAction)
		}
	case Raise:
		if d.Amount <= 0 {
			return fmt.Errorf("%w: raise amount must be positive, got %d", ErrInvalidAction, d.Amount)
		}
		if chips <= callAmount {
			return fmt.Errorf("%w: no chips left to raise after calling %d", ErrInvalidAction, callAmount)
		}
		if d.Amount > chips-callAmount {
			return fmt.Errorf("%w: raise of %d exceeds maximum %d", ErrInvalidAction, d.Amount, chips-callAmount)
		}
	case AllIn:
		if chips == 0 {
			return fmt.Errorf("%w: no chips to go all-in with", ErrInvalidAction)
		}
	default:
		return fmt.Errorf("%w: unknown action %d", ErrInvalidAction, int(d.Action))
	}
	return nil
}
