package evaluator

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/randutil"
)

// EquityResult summarises a Monte Carlo equity estimate
type EquityResult struct {
	Trials int
	Wins   int
	Ties   int
}

// Equity returns the share of the pot won on average, ties counting half
func (r EquityResult) Equity() float64 {
	if r.Trials == 0 {
		return 0
	}
	return (float64(r.Wins) + float64(r.Ties)/2) / float64(r.Trials)
}

// EquityConfig configures an equity estimate
type EquityConfig struct {
	Hole      []deck.Card
	Board     []deck.Card
	Opponents int
	Trials    int
	Seed      int64
	Workers   int // 0 means min(NumCPU, 8)
}

// workerResult holds the results from a Monte Carlo worker
type workerResult struct {
	wins, ties, trials int
}

// Equity estimates how often Hole wins against Opponents random hands by
// dealing out the rest of the board. Work is split across workers with their
// own derived random streams, so equal seeds give equal results.
func Equity(ctx context.Context, cfg EquityConfig) (EquityResult, error) {
	if len(cfg.Hole) != 2 {
		return EquityResult{}, fmt.Errorf("%w: equity needs 2 hole cards, got %d", ErrWrongCardCount, len(cfg.Hole))
	}
	if len(cfg.Board) > 5 {
		return EquityResult{}, fmt.Errorf("%w: board has %d cards", ErrWrongCardCount, len(cfg.Board))
	}
	if cfg.Opponents < 1 || 2+len(cfg.Board)+2*cfg.Opponents+(5-len(cfg.Board)) > deck.Size {
		return EquityResult{}, errors.New("opponent count out of range")
	}
	known := append(append([]deck.Card{}, cfg.Hole...), cfg.Board...)
	if err := checkDuplicates(known); err != nil {
		return EquityResult{}, err
	}

	used := make(map[deck.Card]bool, len(known))
	for _, c := range known {
		used[c] = true
	}
	var available []deck.Card
	for _, s := range deck.Suits {
		for _, r := range deck.Ranks {
			if c := deck.NewCard(s, r); !used[c] {
				available = append(available, c)
			}
		}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = min(runtime.NumCPU(), 8)
	}
	workers = max(1, min(workers, cfg.Trials))

	results := make([]workerResult, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		trials := cfg.Trials / workers
		if w < cfg.Trials%workers {
			trials++
		}
		g.Go(func() error {
			r, err := runEquityWorker(ctx, cfg, available, trials, uint64(w))
			results[w] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return EquityResult{}, err
	}

	var total EquityResult
	for _, r := range results {
		total.Wins += r.wins
		total.Ties += r.ties
		total.Trials += r.trials
	}
	return total, nil
}

func runEquityWorker(ctx context.Context, cfg EquityConfig, available []deck.Card, trials int, stream uint64) (workerResult, error) {
	rng := randutil.Derive(cfg.Seed, stream)
	pool := make([]deck.Card, len(available))
	boardNeeded := 5 - len(cfg.Board)
	draw := boardNeeded + 2*cfg.Opponents

	var res workerResult
	for t := range trials {
		if t%256 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		// Partial Fisher-Yates: the first `draw` cards of pool are the sample
		copy(pool, available)
		for i := range draw {
			j := i + rng.IntN(len(pool)-i)
			pool[i], pool[j] = pool[j], pool[i]
		}

		board := append(append(make([]deck.Card, 0, 5), cfg.Board...), pool[:boardNeeded]...)
		hero, err := BestOf(cfg.Hole, board)
		if err != nil {
			return res, err
		}

		outcome := 1
		for o := range cfg.Opponents {
			start := boardNeeded + 2*o
			opp, err := BestOf(pool[start:start+2], board)
			if err != nil {
				return res, err
			}
			if c := Compare(hero, opp); c < 0 {
				outcome = -1
				break
			} else if c == 0 {
				outcome = 0
			}
		}

		switch outcome {
		case 1:
			res.wins++
		case 0:
			res.ties++
		}
		res.trials++
	}
	return res, nil
}
