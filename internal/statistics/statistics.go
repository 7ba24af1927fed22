// Package statistics accumulates results across many hands.
package statistics

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lox/holdem/internal/evaluator"
	"github.com/lox/holdem/internal/game"
)

// HandResult represents the outcome of a single hand
type HandResult struct {
	HandID         string
	Winner         string
	Pot            int
	WentToShowdown bool
	Tied           bool
	Category       evaluator.Category // Winning category, zero when won by default
	StreetReached  string
	Net            map[string]int // Chips won or lost by each dealt-in player
}

// FromGame converts a played hand. players must be the hand's players, read
// after the pot has been awarded.
func FromGame(r *game.Result, players []*game.Player) HandResult {
	hr := HandResult{
		HandID:         r.HandID,
		Winner:         r.WinnerName,
		Pot:            r.Pot,
		WentToShowdown: !r.ByDefault,
		Tied:           r.IsTie(),
		StreetReached:  r.StreetReached.String(),
		Net:            make(map[string]int, len(players)),
	}
	if r.WinningHand != nil {
		hr.Category = r.WinningHand.Category
	}
	for _, p := range players {
		hr.Net[p.Name] = p.Chips - p.StartingChips
	}
	return hr
}

// PlayerStats tracks one player's results
type PlayerStats struct {
	Hands        int
	Wins         int
	ShowdownWins int
	Net          int     // Chips won minus chips lost
	SumNet2      float64 // Sum of squares for variance calculation
	BiggestWin   int
}

// Mean returns the average chips won per hand
func (ps *PlayerStats) Mean() float64 {
	if ps.Hands == 0 {
		return 0
	}
	return float64(ps.Net) / float64(ps.Hands)
}

// StdError returns the standard error of the mean
func (ps *PlayerStats) StdError() float64 {
	if ps.Hands < 2 {
		return 0
	}
	mean := ps.Mean()
	variance := (ps.SumNet2 - float64(ps.Hands)*mean*mean) / float64(ps.Hands-1)
	return math.Sqrt(max(variance, 0)) / math.Sqrt(float64(ps.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (ps *PlayerStats) ConfidenceInterval95() (float64, float64) {
	mean := ps.Mean()
	margin := 1.96 * ps.StdError()
	return mean - margin, mean + margin
}

// Statistics tracks results over many hands. The zero value is ready to use.
type Statistics struct {
	Hands       int
	Showdowns   int
	DefaultWins int
	Ties        int

	SumPot  float64
	SumPot2 float64   // Sum of squares for variance calculation
	Pots    []float64 // Every pot, for median/percentile calculation
	MaxPot  int

	TotalNet   int // Sum of every player's net, always zero when chips are conserved
	Players    map[string]*PlayerStats
	Categories map[evaluator.Category]int
	Streets    map[string]int
}

func (s *Statistics) init() {
	if s.Players == nil {
		s.Players = make(map[string]*PlayerStats)
	}
	if s.Categories == nil {
		s.Categories = make(map[evaluator.Category]int)
	}
	if s.Streets == nil {
		s.Streets = make(map[string]int)
	}
}

func (s *Statistics) player(name string) *PlayerStats {
	ps, ok := s.Players[name]
	if !ok {
		ps = &PlayerStats{}
		s.Players[name] = ps
	}
	return ps
}

// Add incorporates a new hand result into the statistics
func (s *Statistics) Add(result HandResult) {
	s.init()
	s.Hands++
	if result.WentToShowdown {
		s.Showdowns++
		s.Categories[result.Category]++
	} else {
		s.DefaultWins++
	}
	if result.Tied {
		s.Ties++
	}
	s.Streets[result.StreetReached]++

	pot := float64(result.Pot)
	s.SumPot += pot
	s.SumPot2 += pot * pot
	s.Pots = append(s.Pots, pot)
	s.MaxPot = max(s.MaxPot, result.Pot)

	for name, net := range result.Net {
		ps := s.player(name)
		ps.Hands++
		ps.Net += net
		ps.SumNet2 += float64(net) * float64(net)
		s.TotalNet += net
		if name == result.Winner {
			ps.Wins++
			if result.WentToShowdown {
				ps.ShowdownWins++
			}
			ps.BiggestWin = max(ps.BiggestWin, net)
		}
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.init()
	s.Hands += other.Hands
	s.Showdowns += other.Showdowns
	s.DefaultWins += other.DefaultWins
	s.Ties += other.Ties
	s.SumPot += other.SumPot
	s.SumPot2 += other.SumPot2
	s.Pots = append(s.Pots, other.Pots...)
	s.MaxPot = max(s.MaxPot, other.MaxPot)
	s.TotalNet += other.TotalNet

	for name, o := range other.Players {
		ps := s.player(name)
		ps.Hands += o.Hands
		ps.Wins += o.Wins
		ps.ShowdownWins += o.ShowdownWins
		ps.Net += o.Net
		ps.SumNet2 += o.SumNet2
		ps.BiggestWin = max(ps.BiggestWin, o.BiggestWin)
	}
	for c, n := range other.Categories {
		s.Categories[c] += n
	}
	for st, n := range other.Streets {
		s.Streets[st] += n
	}
}

// MeanPot returns the average pot size
func (s *Statistics) MeanPot() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumPot / float64(s.Hands)
}

// PotVariance returns the sample variance of pot sizes
func (s *Statistics) PotVariance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.MeanPot()
	return (s.SumPot2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// PotStdDev returns the sample standard deviation of pot sizes
func (s *Statistics) PotStdDev() float64 {
	return math.Sqrt(max(s.PotVariance(), 0))
}

// MedianPot returns the median pot size
func (s *Statistics) MedianPot() float64 {
	return s.PotPercentile(0.5)
}

// PotPercentile returns the pot size at the given percentile (0.0 to 1.0)
func (s *Statistics) PotPercentile(p float64) float64 {
	if len(s.Pots) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Pots)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks that the accounting is consistent
func (s *Statistics) Validate() error {
	if s.TotalNet != 0 {
		return fmt.Errorf("ledger mismatch: players net %d chips in total", s.TotalNet)
	}
	if s.Showdowns+s.DefaultWins != s.Hands {
		return fmt.Errorf("showdowns (%d) and default wins (%d) do not add up to %d hands",
			s.Showdowns, s.DefaultWins, s.Hands)
	}
	if len(s.Pots) != s.Hands {
		return fmt.Errorf("pots length (%d) does not match hands count (%d)", len(s.Pots), s.Hands)
	}
	wins := 0
	for _, ps := range s.Players {
		wins += ps.Wins
	}
	if wins != s.Hands {
		return fmt.Errorf("total wins (%d) does not match total hands (%d)", wins, s.Hands)
	}
	return nil
}

// PlayerNames returns players ordered by net result, best first
func (s *Statistics) PlayerNames() []string {
	names := make([]string, 0, len(s.Players))
	for name := range s.Players {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := s.Players[names[i]], s.Players[names[j]]
		if a.Net != b.Net {
			return a.Net > b.Net
		}
		return names[i] < names[j]
	})
	return names
}

// Summary renders a plain text report
func (s *Statistics) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hands played: %s\n", humanize.Comma(int64(s.Hands)))
	if s.Hands == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "Showdowns: %s (%.1f%%), won uncontested: %s, tied: %s\n",
		humanize.Comma(int64(s.Showdowns)), 100*float64(s.Showdowns)/float64(s.Hands),
		humanize.Comma(int64(s.DefaultWins)), humanize.Comma(int64(s.Ties)))
	fmt.Fprintf(&b, "Pot: mean %.1f, median %.1f, p90 %.1f, largest %s\n",
		s.MeanPot(), s.MedianPot(), s.PotPercentile(0.9), humanize.Comma(int64(s.MaxPot)))

	b.WriteString("\nPlayers:\n")
	for _, name := range s.PlayerNames() {
		ps := s.Players[name]
		lo, hi := ps.ConfidenceInterval95()
		fmt.Fprintf(&b, "  %-14s wins %6s  net %8s  per hand %8.2f [%.2f, %.2f]\n",
			name, humanize.Comma(int64(ps.Wins)), humanize.Comma(int64(ps.Net)), ps.Mean(), lo, hi)
	}

	if s.Showdowns > 0 {
		b.WriteString("\nWinning hands:\n")
		for c := evaluator.RoyalFlush; c >= evaluator.HighCard; c-- {
			if n := s.Categories[c]; n > 0 {
				fmt.Fprintf(&b, "  %-16s %6s  %5.1f%%\n", c, humanize.Comma(int64(n)), 100*float64(n)/float64(s.Showdowns))
			}
		}
	}
	return b.String()
}
