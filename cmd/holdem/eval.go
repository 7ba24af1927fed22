package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/evaluator"
	"github.com/lox/holdem/internal/randutil"
)

var (
	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

type EvalCmd struct {
	Hole      string `arg:"" help:"Hole cards, e.g. 'AsKd'"`
	Board     string `short:"b" help:"Community cards, e.g. 'Td7s8h'"`
	Opponents int    `short:"o" help:"Random opponents to estimate equity against, 0 to skip" default:"1"`
	Trials    int    `short:"i" help:"Monte Carlo trials" default:"100000"`
}

func (c *EvalCmd) Run(g *Globals) error {
	hole, err := deck.ParseCards(c.Hole)
	if err != nil {
		return err
	}
	board, err := deck.ParseCards(c.Board)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Hole:\t%s\n", handStyle.Render(deck.FormatCards(hole)))
	if len(board) > 0 {
		fmt.Fprintf(w, "Board:\t%s\n", deck.FormatCards(board))
	}

	if len(hole)+len(board) >= 5 {
		best, err := evaluator.Best(append(append([]deck.Card{}, hole...), board...))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Best hand:\t%s\n", best.Description())
		fmt.Fprintf(w, "Cards:\t%s\n", deck.FormatCards(best.Cards[:]))
	}

	if c.Opponents > 0 {
		ctx, cancel := signalContext(stderrLogger(g.Debug))
		defer cancel()

		seed := randutil.Seed(g.Seed)
		result, err := evaluator.Equity(ctx, evaluator.EquityConfig{
			Hole:      hole,
			Board:     board,
			Opponents: c.Opponents,
			Trials:    c.Trials,
			Seed:      seed,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Equity vs %d:\t%s\n", c.Opponents, winStyle.Render(fmt.Sprintf("%.2f%%", 100*result.Equity())))
		fmt.Fprintf(w, "Wins / ties:\t%s / %s of %s trials (seed %d)\n",
			humanize.Comma(int64(result.Wins)), humanize.Comma(int64(result.Ties)), humanize.Comma(int64(result.Trials)), seed)
	}
	return w.Flush()
}
