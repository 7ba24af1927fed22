package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"

	"github.com/lox/holdem/internal/console"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/session"
)

type PlayCmd struct {
	Names   []string `arg:"" optional:"" help:"Names of the human players" default:"You"`
	Players int      `short:"p" help:"Total players at the table, overrides the config file"`
	Chips   int      `help:"Starting chips, overrides the config file"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if c.Players > 0 {
		cfg.Game.TotalPlayers = c.Players
	}
	if c.Chips > 0 {
		cfg.Game.StartingChips = c.Chips
	}

	logger, closer, err := fileLogger(cfg.Log, "holdem")
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}()

	var opts []console.Option
	if g.NoColor {
		opts = append(opts, console.WithColorProfile(termenv.Ascii))
	}
	con := console.New(os.Stdin, os.Stdout, opts...)

	humans := make([]session.Human, len(c.Names))
	for i, name := range c.Names {
		humans[i] = session.Human{Name: name, Agent: con.Agent(name)}
	}
	sess, err := session.New(cfg, humans,
		session.WithLogger(logger),
		session.WithSubscriber(con.Display(c.Names...)))
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	con.Println(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	con.Printf("Seed %d, %d players, %d chips each\n", sess.Seed(), len(sess.Players()), cfg.Game.StartingChips)
	logger.Info("Starting session", "seed", sess.Seed(), "players", len(sess.Players()), "config", g.Config)

	var quitErr error
	err = sess.Run(ctx, func(*game.Result) bool {
		con.Standings(sess.Standings())
		if !sess.CanContinue() {
			return false
		}
		again, err := con.Confirm("\nPlay another hand?")
		if err != nil {
			quitErr = err
			return false
		}
		return again
	})
	if err == nil {
		err = quitErr
	}
	switch {
	case errors.Is(err, console.ErrInputClosed), errors.Is(err, context.Canceled):
		logger.Info("Player left the table", "reason", err)
	case err != nil:
		logger.Error("Session failed", "error", err)
		return err
	}

	if !sess.CanContinue() {
		con.Println("\nGame Over!")
		if winner := sess.Standings()[0]; winner.Chips > 0 {
			con.Printf("%s wins the game!\n", winner.Name)
		}
	}
	con.Printf("Played %d hands in %s\n", sess.HandsPlayed(), sess.Elapsed().Round(time.Second))
	con.Println("Thanks for playing!")
	logger.Info("Session finished", "hands", sess.HandsPlayed())
	return nil
}
