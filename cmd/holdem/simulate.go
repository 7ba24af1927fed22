package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/lox/holdem/internal/bot"
	"github.com/lox/holdem/internal/simulator"
	"github.com/lox/holdem/internal/statistics"
)

type SimulateCmd struct {
	Sessions   int           `short:"n" help:"Number of sessions to play" default:"100"`
	Hands      int           `help:"Hands per session" default:"200"`
	Players    int           `short:"p" help:"Players per table" default:"6"`
	Chips      int           `help:"Starting chips" default:"1000"`
	Styles     []string      `help:"Bot styles cycled across seats" enum:"heuristic,random,calling,maniac" default:"heuristic"`
	Workers    int           `short:"w" help:"Sessions played in parallel, 0 for one per CPU"`
	Timeout    time.Duration `help:"Time limit per session" default:"1m"`
	NoProgress bool          `help:"Hide the progress bar"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	logger := stderrLogger(g.Debug)

	styles := make([]bot.Style, len(c.Styles))
	for i, s := range c.Styles {
		styles[i] = bot.Style(s)
	}

	var bar *progressbar.ProgressBar
	if !c.NoProgress {
		bar = progressbar.Default(int64(c.Sessions), "sessions")
	}

	sim := simulator.New(simulator.Config{
		Sessions:      c.Sessions,
		Hands:         c.Hands,
		Players:       c.Players,
		StartingChips: c.Chips,
		Styles:        styles,
		Seed:          g.Seed,
		Workers:       c.Workers,
		Timeout:       c.Timeout,
		Logger:        logger,
		OnSessionDone: func(int, *statistics.Statistics) {
			if bar != nil {
				_ = bar.Add(1)
			}
		},
	})

	ctx, cancel := signalContext(logger)
	defer cancel()

	fmt.Println(titleStyle.Render(" Simulation "))
	fmt.Printf("%s, %d sessions of up to %d hands, seed %d\n\n", sim.Describe(), c.Sessions, c.Hands, sim.Seed())

	start := time.Now()
	stats, err := sim.Run(ctx)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return err
	}

	fmt.Println(stats.Summary())
	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
