package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandHistoryTranscript(t *testing.T) {
	t.Parallel()
	got := make(map[string]string)
	hh := NewHandHistory(func(id, text string) { got[id] = text })
	d := stackedDeck(t, "Ah 2d 3c 4s 5h", "Kc 9d", "Qs 8c")
	players := newPlayers([]int{1000, 1000}, script(Decision{Action: Raise, Amount: 10}), script())

	_, err := NewHand(d, players, WithHandID("h1"), WithSubscriber(hh)).Play(context.Background())
	require.NoError(t, err)

	text := got["h1"]
	require.NotEmpty(t, text)
	assert.Equal(t, hh.Text(), text)
	assert.Contains(t, text, "=== HAND h1 ===")
	assert.Contains(t, text, "Seat 1: Alice (1000 chips)")
	assert.Contains(t, text, "Alice: raises 10 (puts in 10)")
	assert.Contains(t, text, "Bob: calls 10")
	assert.Contains(t, text, "*** FLOP ***")
	assert.Contains(t, text, "*** SHOWDOWN ***")
	assert.Contains(t, text, "Straight, Five high")
	assert.Contains(t, text, "Alice wins 20 with Straight, Five high")
	assert.Contains(t, text, "Tied seats: [1 2]")
	assert.Contains(t, text, "=== END HAND ===")
}

func TestHandHistoryStartsOverEachHand(t *testing.T) {
	t.Parallel()
	hh := NewHandHistory(nil)
	fold := func() []*Player {
		return newPlayers([]int{100, 100}, script(Decision{Action: Fold}), script())
	}

	_, err := NewHand(stackedDeck(t, "2c 3c 4c 5c 7d", "As Ad", "Ks Kd"), fold(), WithHandID("first"), WithSubscriber(hh)).Play(context.Background())
	require.NoError(t, err)
	assert.Contains(t, hh.Text(), "Bob wins 0 uncontested")

	_, err = NewHand(stackedDeck(t, "2c 3c 4c 5c 7d", "As Ad", "Ks Kd"), fold(), WithHandID("second"), WithSubscriber(hh)).Play(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, hh.Text(), "first")
	assert.Contains(t, hh.Text(), "=== HAND second ===")
}

func TestFormatAction(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Bob: calls 40 and is all-in",
		FormatAction(PlayerActionEvent{Name: "Bob", Decision: Decision{Action: Call}, CallAmount: 100, Committed: 40}))
	assert.Equal(t, "Bob: goes all-in for 250",
		FormatAction(PlayerActionEvent{Name: "Bob", Decision: Decision{Action: AllIn}, Committed: 250}))
	assert.Equal(t, "Bob: checks", FormatAction(PlayerActionEvent{Name: "Bob", Decision: Decision{Action: Check}}))
}
