package game

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/deck"
)

// scriptedAgent plays the given decisions in order, then checks or calls
type scriptedAgent struct {
	decisions []Decision
	seen      []TableState
}

func script(decisions ...Decision) *scriptedAgent {
	return &scriptedAgent{decisions: decisions}
}

func (a *scriptedAgent) MakeDecision(_ context.Context, state TableState, _ []ValidAction) (Decision, error) {
	a.seen = append(a.seen, state)
	if len(a.decisions) > 0 {
		d := a.decisions[0]
		a.decisions = a.decisions[1:]
		return d, nil
	}
	if state.CallAmount > 0 {
		return Decision{Action: Call}, nil
	}
	return Decision{Action: Check}, nil
}

// randomAgent picks a uniformly random legal action
type randomAgent struct {
	rng *rand.Rand
}

func (a randomAgent) MakeDecision(_ context.Context, _ TableState, valid []ValidAction) (Decision, error) {
	v := valid[a.rng.IntN(len(valid))]
	d := Decision{Action: v.Action}
	if v.Action == Raise {
		d.Amount = v.MinAmount + a.rng.IntN(v.MaxAmount-v.MinAmount+1)
	}
	return d, nil
}

// stackedDeck lays out a deck so that each player receives holes[i] and the
// board comes out as given, with burns in between
func stackedDeck(t *testing.T, board string, holes ...string) *deck.Deck {
	t.Helper()
	hands := make([][]deck.Card, len(holes))
	for i, h := range holes {
		hands[i] = deck.MustParseCards(h)
		require.Len(t, hands[i], 2)
	}
	b := deck.MustParseCards(board)
	require.Len(t, b, 5)

	var order []deck.Card
	for pass := range 2 {
		for _, h := range hands {
			order = append(order, h[pass])
		}
	}
	used := make(map[deck.Card]bool)
	for _, c := range append(append([]deck.Card{}, order...), b...) {
		used[c] = true
	}
	burns := make([]deck.Card, 0, 3)
	for _, s := range deck.Suits {
		for _, r := range deck.Ranks {
			c := deck.NewCard(s, r)
			if !used[c] && len(burns) < 3 {
				burns = append(burns, c)
			}
		}
	}
	order = append(order, burns[0], b[0], b[1], b[2], burns[1], b[3], burns[2], b[4])

	d, err := deck.NewStacked(order...)
	require.NoError(t, err)
	return d
}

func newPlayers(chips []int, agents ...Agent) []*Player {
	names := []string{"Alice", "Bob", "Charlie", "Dana", "Eve", "Frank"}
	players := make([]*Player, len(agents))
	for i, a := range agents {
		players[i] = NewPlayer(i, names[i], chips[i], a)
	}
	return players
}

type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(e GameEvent) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}

func totalChips(players []*Player) int {
	sum := 0
	for _, p := range players {
		sum += p.Chips
	}
	return sum
}
