package session

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/config"
	"github.com/lox/holdem/internal/game"
)

func seeded(seed int64, players int) *config.Config {
	cfg := config.Default()
	cfg.Game.Seed = seed
	cfg.Game.TotalPlayers = players
	return cfg
}

func names(s *Session) []string {
	var out []string
	for _, p := range s.Players() {
		out = append(out, p.Name)
	}
	return out
}

func totalChips(s *Session) int {
	sum := 0
	for _, p := range s.Players() {
		sum += p.Chips
	}
	return sum
}

var checker = game.AgentFunc(func(_ context.Context, st game.TableState, _ []game.ValidAction) (game.Decision, error) {
	if st.CallAmount > 0 {
		return game.Decision{Action: game.Call}, nil
	}
	return game.Decision{Action: game.Check}, nil
})

func TestSeatingHumansThenBots(t *testing.T) {
	t.Parallel()
	s, err := New(seeded(1, 6), []Human{{Name: "You", Agent: checker}})
	require.NoError(t, err)
	assert.Equal(t, []string{"You", "Bot_Alpha", "Bot_Beta", "Bot_Gamma", "Bot_Delta", "Bot_Echo"}, names(s))
	for i, p := range s.Players() {
		assert.Equal(t, i, p.Seat)
		assert.Equal(t, 1000, p.Chips)
	}
}

func TestConfiguredBotsAreSeatedFirst(t *testing.T) {
	t.Parallel()
	cfg := seeded(1, 4)
	cfg.Bots = []config.BotConfig{{Name: "Bot_Beta", Style: "calling", Chips: 300}}
	s, err := New(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bot_Beta", "Bot_Alpha", "Bot_Gamma", "Bot_Delta"}, names(s))
	assert.Equal(t, 300, s.Players()[0].Chips)
}

func TestGeneratedNamesWrap(t *testing.T) {
	t.Parallel()
	s, err := New(seeded(1, 10), nil)
	require.NoError(t, err)
	got := names(s)
	assert.Equal(t, "Bot_Hotel", got[7])
	assert.Equal(t, "Bot_Alpha_1", got[8])
	assert.Equal(t, "Bot_Beta_1", got[9])
	assert.Equal(t, "Bot_Alpha_2", generatedName(16))
}

func TestNewRejectsBadInput(t *testing.T) {
	t.Parallel()
	_, err := New(seeded(1, 2), []Human{{Name: "A", Agent: checker}, {Name: "B", Agent: checker}, {Name: "C", Agent: checker}})
	assert.ErrorContains(t, err, "invalid configuration")

	_, err = New(seeded(1, 3), []Human{{Name: "A", Agent: checker}, {Name: "A", Agent: checker}})
	assert.ErrorContains(t, err, "already taken")
}

func TestRunConservesChipsAndStats(t *testing.T) {
	t.Parallel()
	s, err := New(seeded(99, 6), nil)
	require.NoError(t, err)

	err = s.Run(context.Background(), func(*game.Result) bool { return s.HandsPlayed() < 200 })
	require.NoError(t, err)

	assert.Equal(t, 6000, totalChips(s))
	assert.Equal(t, s.HandsPlayed(), s.Stats().Hands)
	require.NoError(t, s.Stats().Validate())
	if s.HandsPlayed() < 200 {
		assert.False(t, s.CanContinue(), "stopping early means the table broke")
	}

	standings := s.Standings()
	for i := 1; i < len(standings); i++ {
		assert.GreaterOrEqual(t, standings[i-1].Chips, standings[i].Chips)
	}
}

func TestSameSeedReplaysSession(t *testing.T) {
	t.Parallel()
	play := func() []Standing {
		s, err := New(seeded(12345, 5), nil)
		require.NoError(t, err)
		require.NoError(t, s.Run(context.Background(), func(*game.Result) bool { return s.HandsPlayed() < 40 }))
		return s.Standings()
	}
	assert.Equal(t, play(), play())
}

func TestBustedPlayersSitOut(t *testing.T) {
	t.Parallel()
	var seated []game.SeatInfo
	recorder := game.SubscriberFunc(func(e game.GameEvent) {
		if start, ok := e.(game.HandStartEvent); ok {
			seated = start.Seats
		}
	})
	s, err := New(seeded(3, 4), nil, WithSubscriber(recorder))
	require.NoError(t, err)
	s.Players()[1].Chips = 0

	result, err := s.PlayHand(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, 1, result.Winner)
	require.Len(t, seated, 3)
	for _, seat := range seated {
		assert.NotEqual(t, "Bot_Beta", seat.Name)
	}
	assert.Equal(t, 0, s.Players()[1].Chips)
}

func TestNotEnoughPlayers(t *testing.T) {
	t.Parallel()
	s, err := New(seeded(3, 3), nil)
	require.NoError(t, err)
	s.Players()[0].Chips = 0
	s.Players()[1].Chips = 0

	assert.False(t, s.CanContinue())
	_, err = s.PlayHand(context.Background())
	assert.ErrorIs(t, err, ErrNotEnoughPlayers)
	assert.NoError(t, s.Run(context.Background(), func(*game.Result) bool { return true }))
}

func TestHumanErrorEndsRun(t *testing.T) {
	t.Parallel()
	errQuit := errors.New("quit")
	human := game.AgentFunc(func(context.Context, game.TableState, []game.ValidAction) (game.Decision, error) {
		return game.Decision{}, errQuit
	})
	s, err := New(seeded(4, 3), []Human{{Name: "You", Agent: human}})
	require.NoError(t, err)

	err = s.Run(context.Background(), func(*game.Result) bool { return true })
	assert.ErrorIs(t, err, errQuit)
	assert.Equal(t, 0, s.HandsPlayed())
}

func TestDebugLoggingRecordsTranscripts(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s, err := New(seeded(5, 3), nil, WithLogger(logger))
	require.NoError(t, err)

	result, err := s.PlayHand(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Hand transcript")
	assert.Contains(t, buf.String(), result.HandID)
	assert.Contains(t, buf.String(), "=== END HAND ===")
}
