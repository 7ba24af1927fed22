package simulator

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/bot"
	"github.com/lox/holdem/internal/statistics"
)

func TestNewAppliesDefaults(t *testing.T) {
	sim := New(Config{Sessions: 1, Hands: 1, Seed: 12345})
	assert.Equal(t, 6, sim.config.Players)
	assert.Equal(t, 1000, sim.config.StartingChips)
	assert.Positive(t, sim.config.Workers)
	assert.NotNil(t, sim.config.Logger)
	assert.Equal(t, int64(12345), sim.Seed())
	assert.Equal(t, "6 players: heuristic", sim.Describe())

	assert.NotZero(t, New(Config{}).Seed(), "an unseeded simulator picks a seed")
}

func TestRunMergesSessions(t *testing.T) {
	var done atomic.Int32
	sim := New(Config{
		Sessions: 8,
		Hands:    25,
		Players:  4,
		Seed:     7,
		Workers:  3,
		Timeout:  30 * time.Second,
		OnSessionDone: func(int, *statistics.Statistics) {
			done.Add(1)
		},
	})

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(8), done.Load())
	assert.LessOrEqual(t, stats.Hands, 8*25)
	assert.Positive(t, stats.Hands)
	assert.NoError(t, stats.Validate())
	assert.Len(t, stats.Players, 4)
}

func TestRunIsDeterministic(t *testing.T) {
	run := func(workers int) *statistics.Statistics {
		stats, err := New(Config{Sessions: 6, Hands: 20, Players: 3, Seed: 42, Workers: workers}).Run(context.Background())
		require.NoError(t, err)
		return stats
	}
	a, b := run(1), run(4)
	assert.Equal(t, a.Hands, b.Hands)
	assert.Equal(t, a.Pots, b.Pots)
	assert.Equal(t, a.Players, b.Players)
	assert.Equal(t, a.Categories, b.Categories)
}

func TestRunWithStyles(t *testing.T) {
	sim := New(Config{
		Sessions: 2,
		Hands:    30,
		Players:  4,
		Seed:     3,
		Styles:   []bot.Style{bot.StyleCalling, bot.StyleManiac},
	})
	assert.Equal(t, "4 players: calling,maniac", sim.Describe())

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, stats.Players, "calling_1")
	assert.Contains(t, stats.Players, "maniac_4")
}

func TestRunRejectsEmptyWork(t *testing.T) {
	_, err := New(Config{Sessions: 0, Hands: 10, Seed: 1}).Run(context.Background())
	assert.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(Config{Sessions: 2, Hands: 10, Seed: 1}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSessionTimeoutKeepsFinishedHands(t *testing.T) {
	// Calling stations never bet, so a session of them only ends on its
	// timeout.
	var finished atomic.Int32
	sim := New(Config{
		Sessions: 2,
		Hands:    1_000_000,
		Players:  3,
		Seed:     11,
		Styles:   []bot.Style{bot.StyleCalling},
		Timeout:  time.Millisecond,
		OnSessionDone: func(int, *statistics.Statistics) {
			finished.Add(1)
		},
	})

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), finished.Load())
	assert.Less(t, stats.Hands, 2_000_000)
	assert.NoError(t, stats.Validate())
}

func TestSessionSeedsAreNeverZero(t *testing.T) {
	sim := New(Config{Sessions: 10, Hands: 1, Seed: -5})
	seen := make(map[int64]bool)
	for i := range 10 {
		seed := sim.SessionSeed(i)
		assert.NotZero(t, seed)
		assert.False(t, seen[seed])
		seen[seed] = true
	}
	assert.Equal(t, sim.SessionSeed(5), New(Config{Seed: -5}).SessionSeed(5))
}

func TestNegativeSeedIsDeterministic(t *testing.T) {
	run := func() *statistics.Statistics {
		stats, err := New(Config{Sessions: 8, Hands: 15, Players: 3, Seed: -5, Workers: 2}).Run(context.Background())
		require.NoError(t, err)
		return stats
	}
	a, b := run(), run()
	assert.Equal(t, a.Pots, b.Pots)
	assert.Equal(t, a.Players, b.Players)
}

func TestRunSimulation_Convenience(t *testing.T) {
	stats, err := RunSimulation(context.Background(), 2, 5, 12345, nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, stats.Hands, 10)
	assert.Positive(t, stats.Hands)
}
