package bot

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/game"
)

// Style names a bot personality selectable from configuration
type Style string

const (
	StyleHeuristic Style = "heuristic"
	StyleRandom    Style = "random"
	StyleCalling   Style = "calling"
	StyleManiac    Style = "maniac"
)

// Styles lists every known style
var Styles = []Style{StyleHeuristic, StyleRandom, StyleCalling, StyleManiac}

// NewAgent builds the agent for a style. An empty style is heuristic.
func NewAgent(style Style, name string, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	switch style {
	case "", StyleHeuristic:
		return New(name, rng, logger), nil
	case StyleRandom:
		return NewRandBot(rng), nil
	case StyleCalling:
		return CallBot{}, nil
	case StyleManiac:
		return NewManiacBot(rng), nil
	default:
		return nil, fmt.Errorf("unknown bot style %q", style)
	}
}

// RandBot makes uniform random legal actions
type RandBot struct {
	rng *rand.Rand
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand) *RandBot {
	return &RandBot{rng: rng}
}

func (r *RandBot) MakeDecision(_ context.Context, _ game.TableState, valid []game.ValidAction) (game.Decision, error) {
	choice := valid[r.rng.IntN(len(valid))]
	d := game.Decision{Action: choice.Action, Reasoning: "rand-bot random action"}
	if choice.Action == game.Raise {
		d.Amount = choice.MinAmount + r.rng.IntN(choice.MaxAmount-choice.MinAmount+1)
	}
	return d, nil
}

// CallBot never folds and never raises
type CallBot struct{}

func (CallBot) MakeDecision(_ context.Context, state game.TableState, _ []game.ValidAction) (game.Decision, error) {
	if state.CallAmount == 0 {
		return game.Decision{Action: game.Check, Reasoning: "call-bot check"}, nil
	}
	return game.Decision{Action: game.Call, Reasoning: "call-bot call"}, nil
}

// ManiacBot bets or raises at almost every opportunity
type ManiacBot struct {
	rng *rand.Rand
}

// NewManiacBot creates a new ManiacBot instance
func NewManiacBot(rng *rand.Rand) *ManiacBot {
	return &ManiacBot{rng: rng}
}

func (m *ManiacBot) MakeDecision(_ context.Context, state game.TableState, valid []game.ValidAction) (game.Decision, error) {
	var raise *game.ValidAction
	for i := range valid {
		if valid[i].Action == game.Raise {
			raise = &valid[i]
		}
	}

	switch roll := m.rng.Float64(); {
	case roll < 0.15 && game.IsLegal(valid, game.AllIn):
		return game.Decision{Action: game.AllIn, Reasoning: "maniac shove"}, nil
	case roll < 0.85 && raise != nil:
		// Between a third and the whole of the pot, at least the minimum
		size := max(raise.MinAmount, state.Pot/3+m.rng.IntN(state.Pot+1))
		return game.Decision{Action: game.Raise, Amount: min(size, raise.MaxAmount), Reasoning: "maniac raise"}, nil
	case state.CallAmount == 0:
		return game.Decision{Action: game.Check, Reasoning: "maniac check"}, nil
	default:
		return game.Decision{Action: game.Call, Reasoning: "maniac call"}, nil
	}
}
