// Package simulator plays many bot-only sessions in parallel and merges
// their statistics.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem/internal/bot"
	"github.com/lox/holdem/internal/config"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/internal/session"
	"github.com/lox/holdem/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Sessions      int
	Hands         int // Hands per session; a session also ends when one player has every chip
	Players       int
	StartingChips int
	Styles        []bot.Style   // Cycled across seats; empty means all heuristic
	Seed          int64         // Session seeds are derived from it; 0 picks a seed from the clock
	Workers       int           // 0 means NumCPU
	Timeout       time.Duration // Per session; a session that runs out keeps the hands it finished
	Logger        *log.Logger

	// OnSessionDone is called after each session. It may be called from
	// several goroutines at once.
	OnSessionDone func(index int, stats *statistics.Statistics)
}

// Simulator runs bot-only sessions
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(cfg Config) *Simulator {
	if cfg.Players == 0 {
		cfg.Players = config.DefaultTotalPlayers
	}
	if cfg.StartingChips == 0 {
		cfg.StartingChips = config.DefaultStartingChips
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	cfg.Seed = randutil.Seed(cfg.Seed)
	return &Simulator{config: cfg}
}

// Seed returns the base seed sessions are derived from
func (s *Simulator) Seed() int64 { return s.config.Seed }

// Describe summarises the table being simulated, e.g. "6 players: heuristic"
func (s *Simulator) Describe() string {
	styles := s.config.Styles
	if len(styles) == 0 {
		styles = []bot.Style{bot.StyleHeuristic}
	}
	parts := make([]string, len(styles))
	for i, st := range styles {
		parts[i] = string(st)
	}
	return fmt.Sprintf("%d players: %s", s.config.Players, strings.Join(parts, ","))
}

// Run plays every session and returns the merged statistics. Each session
// is single threaded; sessions run concurrently up to Workers at a time.
// Merging happens in session order, so a fixed seed gives identical totals.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Sessions < 1 || s.config.Hands < 1 {
		return nil, fmt.Errorf("sessions and hands must be positive, got %d and %d", s.config.Sessions, s.config.Hands)
	}

	results := make([]*statistics.Statistics, s.config.Sessions)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range s.config.Sessions {
		g.Go(func() error {
			stats, err := s.runSession(ctx, i)
			if err != nil {
				return fmt.Errorf("session %d (seed %d): %w", i, s.SessionSeed(i), err)
			}
			results[i] = stats
			if s.config.OnSessionDone != nil {
				s.config.OnSessionDone(i, stats)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, r := range results {
		total.Merge(r)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return total, nil
}

// SessionSeed returns the seed session index plays with
func (s *Simulator) SessionSeed(index int) int64 {
	return randutil.DeriveSeed(s.config.Seed, uint64(index))
}

func (s *Simulator) runSession(parent context.Context, index int) (*statistics.Statistics, error) {
	ctx := parent
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, s.config.Timeout)
		defer cancel()
	}

	logger := s.config.Logger.With("session", index)
	cfg := s.tableConfig(s.SessionSeed(index))
	sess, err := session.New(cfg, nil, session.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	err = sess.Run(ctx, func(*game.Result) bool {
		return sess.HandsPlayed() < s.config.Hands
	})
	if errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil {
		// The unfinished hand was abandoned with stacks restored, so the
		// statistics hold only complete hands.
		logger.Warn("Session timed out", "hands", sess.HandsPlayed(), "timeout", s.config.Timeout)
		return sess.Stats(), nil
	}
	if err != nil {
		return nil, err
	}
	return sess.Stats(), nil
}

func (s *Simulator) tableConfig(seed int64) *config.Config {
	cfg := config.Default()
	cfg.Game.Seed = seed
	cfg.Game.TotalPlayers = s.config.Players
	cfg.Game.StartingChips = s.config.StartingChips
	if len(s.config.Styles) > 0 {
		for seat := range s.config.Players {
			style := s.config.Styles[seat%len(s.config.Styles)]
			cfg.Bots = append(cfg.Bots, config.BotConfig{
				Name:  fmt.Sprintf("%s_%d", style, seat+1),
				Style: string(style),
				Chips: s.config.StartingChips,
			})
		}
	}
	return cfg
}

// RunSimulation is a convenience wrapper that runs a simulation with the
// given parameters
func RunSimulation(ctx context.Context, sessions, hands int, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	return New(Config{Sessions: sessions, Hands: hands, Seed: seed, Logger: logger}).Run(ctx)
}
