// Package bot provides computer players that implement game.Agent.
package bot

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/game"
)

// Bot is the heuristic computer player. Each bot draws its own temperament
// when created: aggression scales its opening raises and bluff is the chance
// of playing a weak hand as if it were strong.
type Bot struct {
	name       string
	rng        *rand.Rand
	logger     *log.Logger
	aggression float64 // [0.3, 0.8)
	bluff      float64 // [0.1, 0.3)
}

// New creates a heuristic bot drawing its temperament and every later random
// choice from rng
func New(name string, rng *rand.Rand, logger *log.Logger) *Bot {
	if rng == nil {
		panic("bot: rng is required")
	}
	b := &Bot{
		name:   name,
		rng:    rng,
		logger: logger.WithPrefix("bot"),
	}
	b.aggression = uniform(rng, 0.3, 0.8)
	b.bluff = uniform(rng, 0.1, 0.3)
	return b
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Aggression returns the bot's aggression factor
func (b *Bot) Aggression() float64 { return b.aggression }

// Bluff returns the bot's bluff probability
func (b *Bot) Bluff() float64 { return b.bluff }

// MakeDecision implements game.Agent. The returned decision is always legal
// for the offered actions.
func (b *Bot) MakeDecision(_ context.Context, state game.TableState, valid []game.ValidAction) (game.Decision, error) {
	thinking := &ThinkingContext{}
	call := state.CallAmount
	chips := state.Player.Chips

	strength := Strength(state.Player.HoleCards, state.CommunityCards)
	thinking.AddThought(fmt.Sprintf("Hand strength %.2f on the %s", strength, state.Street))

	potOdds := 0.0
	if call > 0 {
		potOdds = float64(call) / float64(state.Pot+call)
		thinking.AddThought(fmt.Sprintf("Pot odds %.2f to call %d", potOdds, call))
	}

	adjusted := strength * uniform(b.rng, 0.8, 1.2)

	var d game.Decision
	switch {
	case adjusted < 0.2 && float64(call) > float64(chips)*0.1:
		thinking.AddThought("Too weak to pay this much")
		d = game.Decision{Action: game.Fold}
	case adjusted > 0.7 || b.rng.Float64() < b.bluff:
		if adjusted <= 0.7 {
			thinking.AddThought("Representing strength")
		}
		switch {
		case call == 0:
			thinking.AddThought("Opening the betting")
			d = game.Decision{Action: game.Raise, Amount: int(float64(state.Pot) * 0.5 * b.aggression)}
		case adjusted > 0.8:
			thinking.AddThought("Strong enough to raise")
			d = game.Decision{Action: game.Raise, Amount: 2 * call}
		default:
			d = game.Decision{Action: game.Call}
		}
	case adjusted > 0.4 || potOdds < 0.3:
		thinking.AddThought("Worth continuing")
		d = game.Decision{Action: game.Call}
	default:
		thinking.AddThought("Not worth the price")
		d = game.Decision{Action: game.Fold}
	}

	d = legalize(d, call, chips, valid)
	d.Reasoning = thinking.GetThoughts()

	b.logger.Debug("Bot decision made",
		"player", b.name,
		"street", state.Street,
		"cards", deck.FormatCards(state.Player.HoleCards),
		"strength", strength,
		"adjusted", adjusted,
		"decision", d)
	return d, nil
}

// legalize maps an intended decision onto the offered actions. A call with
// nothing owed is a check; a raise is clamped to the stack and becomes an
// all-in at the top, or a call/check when it rounds to nothing.
func legalize(d game.Decision, call, chips int, valid []game.ValidAction) game.Decision {
	passive := game.Decision{Action: game.Call}
	if call == 0 {
		passive = game.Decision{Action: game.Check}
	}

	switch d.Action {
	case game.Call:
		return passive
	case game.Fold:
		if call == 0 {
			return passive
		}
		return d
	case game.Raise:
		if d.Amount <= 0 || !game.IsLegal(valid, game.Raise) {
			return passive
		}
		if d.Amount >= chips-call {
			return game.Decision{Action: game.AllIn}
		}
		return d
	}
	return d
}

// ThinkingContext accumulates the reasons behind a decision
type ThinkingContext struct {
	thoughts []string
}

// AddThought adds a thought to the thinking process
func (tc *ThinkingContext) AddThought(thought string) {
	tc.thoughts = append(tc.thoughts, thought)
}

// GetThoughts returns the complete stream of thoughts
func (tc *ThinkingContext) GetThoughts() string {
	if len(tc.thoughts) == 0 {
		return "No clear reasoning available"
	}
	return strings.Join(tc.thoughts, ". ")
}
